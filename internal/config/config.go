package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (

	// Name of the project configuration file.
	FileName = "hyrun.yaml"

	// Server jar used when neither a flag nor the file names one.
	DefaultJarURL = "libs/HytaleServer.jar"
)

var ErrConfig = errors.New("invalid configuration")

// Contents of hyrun.yaml. Zero values mean "not set".
type File struct {
	JarURL     string   `yaml:"jarUrl"`
	Plugin     string   `yaml:"plugin"`
	Java       string   `yaml:"java"`
	JVMArgs    []string `yaml:"jvmArgs"`
	ServerArgs []string `yaml:"serverArgs"`
	DebugPort  int      `yaml:"debugPort"`
	CacheDir   string   `yaml:"cacheDir"`
}

// Loads the configuration file at path.
//
// A missing file is not an error unless required is set; it yields an empty
// [File]. Unknown keys are rejected so that typos do not pass silently.
// Relative plugin and cache paths are resolved against the file's directory.
func Load(path string, required bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &File{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	f.resolve(filepath.Dir(path))
	return f, nil
}

// Parses configuration file contents. An empty document yields an empty
// [File].
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	if err := CheckPort(f.DebugPort); err != nil {
		return fmt.Errorf("debugPort: %w", err)
	}
	return nil
}

// Rejects ports outside 0..65535. Zero means "use the default".
func CheckPort(port int) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("port %d out of range", port)
	}
	return nil
}

// Makes relative filesystem paths relative to dir. The jar specifier is left
// alone; it is resolved against the project root like a flag value.
func (f *File) resolve(dir string) {
	if f.Plugin != "" && !filepath.IsAbs(f.Plugin) {
		f.Plugin = filepath.Join(dir, f.Plugin)
	}
	if f.CacheDir != "" && !filepath.IsAbs(f.CacheDir) {
		f.CacheDir = filepath.Join(dir, f.CacheDir)
	}
}

// Returns the first non-empty value.
func Pick[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
