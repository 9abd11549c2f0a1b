package pom

import "fmt"

// FormatError is returned when a dependency token does not split into
// group, artifact and version.
type FormatError struct {
	Token string
	Parts int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dependency '%s': expected group:artifact:version, got %d component(s)", e.Token, e.Parts)
}

// ConsistencyError is returned when the license manifest breaks the
// artifact/name/url pairing protocol.
type ConsistencyError struct {
	Line   int
	Reason string
}

func (e *ConsistencyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("license manifest line %d: %s", e.Line, e.Reason)
	}
	return "license manifest: " + e.Reason
}
