package config

import "fmt"

// Positional argument names reported by MissingArgumentError.
const (
	ArgQuery    = "query"
	ArgFilename = "filename"
)

// MissingArgumentError reports the first positional argument that was not supplied
type MissingArgumentError struct {
	Which string
}

func (e *MissingArgumentError) Error() string {
	switch e.Which {
	case ArgQuery:
		return "Query string not present"
	case ArgFilename:
		return "Filename not present"
	default:
		return fmt.Sprintf("%s not present", e.Which)
	}
}
