package aver

import (
	"fmt"
	"strings"
)

// Error is a string-backed error type that allows sentinel errors to be declared as constants.
type Error string

func (err Error) Error() string { return string(err) }

const (
	// ErrBlockClosed is wrapped by the panic raised when a Block is used after Close.
	ErrBlockClosed Error = "block is already closed"

	// ErrBodyAlreadyRan is wrapped by the panic raised when a Block's body result is
	// recorded more than once.
	ErrBodyAlreadyRan Error = "block body result was already recorded"
)

// BlockFailure is the aggregated failure raised when a block is tallied and its reporter
// decides that the block failed.
type BlockFailure struct {
	// Block is the display name of the block.
	Block string
	// Checks is the total number of checks that were evaluated in the block.
	Checks int
	// CheckErrors describes each check that failed, in evaluation order.
	CheckErrors []error
	// BodyErr is the error returned by the block's body, if any.
	BodyErr error
	// Rerun is a shell command that reruns the enclosing test, if it could be determined.
	Rerun string
}

func (f *BlockFailure) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Test cases in block %q failed", f.Block)
	if len(f.CheckErrors) > 0 {
		fmt.Fprintf(&b, ": %d of %d checks failed", len(f.CheckErrors), f.Checks)
	}
	for i, err := range f.CheckErrors {
		fmt.Fprintf(&b, "\n[%s #%d]: %s", f.Block, i+1, indentContinuation(err.Error()))
	}
	if f.BodyErr != nil {
		fmt.Fprintf(&b, "\n[%s]: block returned an error: %s", f.Block, indentContinuation(f.BodyErr.Error()))
	}
	if f.Rerun != "" {
		fmt.Fprintf(&b, "\nrerun with: %s", f.Rerun)
	}
	return b.String()
}

func (f *BlockFailure) Unwrap() error {
	return f.BodyErr
}

func indentContinuation(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
