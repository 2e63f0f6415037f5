package pdbstruct

import "fmt"

// DecodeError reports a field of a PDB line that could not be decoded.
// Line numbers are 1-based. Raw holds the offending column content after
// trimming, which may be empty for a required field that was blank.
type DecodeError struct {
	Kind  Kind
	Line  int
	Field string
	Raw   string
}

func (e *DecodeError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("pdb: line %d: %s record: field %q is blank", e.Line, e.Kind, e.Field)
	}
	return fmt.Sprintf("pdb: line %d: %s record: field %q: cannot decode %q", e.Line, e.Kind, e.Field, e.Raw)
}

// fieldError builds a DecodeError for a single field.
func fieldError(kind Kind, line int, field, raw string) *DecodeError {
	return &DecodeError{Kind: kind, Line: line, Field: field, Raw: raw}
}
