package table

import "fmt"

// SchemaError reports a malformed or missing header.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("bad schema: %s", e.Reason)
}

// ParseError reports a bad data row, with its 1-based line
// number in the input.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

type ColumnNotFoundError struct {
	Name string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("no column named %q", e.Name)
}

type IndexError struct {
	Index   int
	NumRows int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("row %d out of range [0, %d)", e.Index, e.NumRows)
}
