package prostgen

import (
	"fmt"
)

// IOError reports a failure to read a schema or write a generated output. It
// is distinct from *parse.ParsingError, which reports a malformed schema.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
