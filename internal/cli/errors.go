package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// UsageError is a malformed invocation: unknown verb, wrong arity, or an
// operand that does not convert to its declared type. It maps to
// predicate.ExitUsage and is never folded into False.
type UsageError struct {
	Cmd *cobra.Command
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(cmd *cobra.Command, format string, args ...any) error {
	return &UsageError{Cmd: cmd, Err: fmt.Errorf(format, args...)}
}
