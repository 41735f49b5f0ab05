package games

import "strings"

// JSON names of the required create fields.
const (
	FieldTitle       = "title"
	FieldGenre       = "genre"
	FieldReleaseYear = "releaseYear"
)

// ValidationError lists required fields missing from a create payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
