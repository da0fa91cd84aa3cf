package artifact

import "strings"

// Where a server jar comes from.
type Kind int

const (
	Local  Kind = iota // A path relative to the project root.
	Remote             // An http or https URL.
)

func (k Kind) String() string {
	switch k {
	case Local:
		return "local"
	case Remote:
		return "remote"
	default:
		return "unknown"
	}
}

// A parsed server jar specifier.
type Source struct {
	Kind     Kind   // Whether the jar is downloaded or read from disk.
	Location string // URL for remote sources, path for local ones.
}

// Classifies a specifier.
//
// Anything starting with "http://" or "https://" is remote, everything else
// is treated as a filesystem path.
func ParseSource(s string) Source {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return Source{Kind: Remote, Location: s}
	}
	return Source{Kind: Local, Location: s}
}

func (s Source) String() string {
	return s.Kind.String() + ":" + s.Location
}
