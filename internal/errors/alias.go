package errors

import "github.com/cockroachdb/errors"

// Re-exports so callers holding this package for ExitError handling
// do not need a second errors import.
var (
	New   = errors.New
	Newf  = errors.Newf
	Wrap  = errors.Wrap
	Wrapf = errors.Wrapf
	Is    = errors.Is
	As    = errors.As
)
