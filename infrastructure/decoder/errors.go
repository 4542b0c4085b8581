package decoder

import "fmt"

// SyntaxError reports input that is not valid JSON at all.
type SyntaxError struct {
	Offset int64 // Byte offset of the failure within the input
	Line   int   // 1-based line the offset falls on
	Cause  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at line %d (offset %d): %v", e.Line, e.Offset, e.Cause)
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// SchemaError reports well-formed JSON that does not match the expected
// report shape. Path points at the offending value from the document root,
// e.g. $.Projects[2].TargetFrameworks[0].Dependencies[5].LatestVersion.
type SchemaError struct {
	Path     string
	Expected string
	Found    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Path, e.Expected, e.Found)
}
