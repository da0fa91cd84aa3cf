package internal

import (
	"strconv"
	"sync/atomic"
)

var (
	quiet   atomic.Bool // Only warnings and errors are logged.
	debug   atomic.Bool // Debug records are logged.
	verbose atomic.Bool // Records carry source locations.
)

// Seeds the log modes from the linker flags. Values that do not parse as
// booleans leave the mode disabled.
func init() {
	seed := []struct {
		raw  string
		mode *atomic.Bool
	}{
		{rawQuiet, &quiet},
		{rawDebug, &debug},
		{rawVerbose, &verbose},
	}
	for _, s := range seed {
		if v, err := strconv.ParseBool(s.raw); err == nil {
			s.mode.Store(v)
		}
	}
}

// Enables or disables quiet mode.
func SetQuiet(enabled bool) { quiet.Store(enabled) }

// Whether quiet mode is enabled.
func IsQuiet() bool { return quiet.Load() }

// Enables or disables debug mode.
func SetDebug(enabled bool) { debug.Store(enabled) }

// Whether debug mode is enabled.
func IsDebug() bool { return debug.Load() }

// Enables or disables verbose mode.
func SetVerbose(enabled bool) { verbose.Store(enabled) }

// Whether verbose mode is enabled.
func IsVerbose() bool { return verbose.Load() }
