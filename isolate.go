package aver

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

// TestingT is the subset of *testing.T that this package uses. It has the same method set
// as require.TestingT, so the assert and require packages accept any TestingT.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

// checkT is the TestingT handed to a check function. Failures reported through it are
// kept local to the check, and FailNow unwinds only as far as the enclosing Isolate call.
type checkT struct {
	failed bool
	errors []error
}

func (c *checkT) Errorf(format string, args ...interface{}) {
	c.failed = true
	msg := strings.TrimLeft(fmt.Sprintf(format, args...), "\n")
	c.errors = append(c.errors, errors.New(trimErrorTrace(msg)))
}

func (c *checkT) FailNow() {
	panic(c)
}

// Helper does nothing. testify does not use it to build Error Trace; frames in this package
// are removed from the message by Errorf instead.
func (c *checkT) Helper() {}

func (c *checkT) err() error {
	if len(c.errors) == 0 {
		return errors.New("check failed with no failure message")
	}
	if len(c.errors) == 1 {
		return c.errors[0]
	}
	lines := make([]string, 0, len(c.errors))
	for _, e := range c.errors {
		lines = append(lines, e.Error())
	}
	return errors.New(strings.Join(lines, "\n"))
}

// Isolate runs op and converts a panic raised inside it into a failed CheckOutcome, so the
// caller keeps running. If op returns normally the outcome is CheckPassed.
//
// runtime.Goexit, which (*testing.T).FailNow uses, cannot be stopped. If op calls it, the
// calling goroutine still exits and Isolate does not return.
func Isolate(op func()) CheckOutcome {
	var outcome CheckOutcome
	isolate(op, func(o CheckOutcome) { outcome = o })
	return outcome
}

// isolate calls record exactly once with the outcome of op, including when op exits the
// goroutine with runtime.Goexit.
func isolate(op func(), record func(CheckOutcome)) {
	completed := false
	defer func() {
		if completed {
			return
		}
		r := recover()
		if r == nil {
			record(CheckOutcome{
				Status: CheckFailed,
				Err:    errors.New("check exited without completing (runtime.Goexit or panic(nil))"),
			})
			return
		}
		record(failedOutcome(r))
	}()
	op()
	completed = true
	record(CheckOutcome{Status: CheckPassed})
}

func failedOutcome(r interface{}) CheckOutcome {
	if c, ok := r.(*checkT); ok {
		return CheckOutcome{Status: CheckFailed, Err: c.err()}
	}
	return CheckOutcome{
		Status: CheckFailed,
		Err:    fmt.Errorf("unexpected panic in check: %+v\n%s", r, string(debug.Stack())),
		Panic:  r,
	}
}

// checkFunc adapts a function that reports through a TestingT into a zero-argument check.
// Failures reported with Errorf alone fail the check once the function returns.
func checkFunc(fn func(t TestingT)) func() {
	return func() {
		c := &checkT{}
		fn(c)
		if c.failed {
			c.FailNow()
		}
	}
}

var packageDir = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}()

const errorTraceLabel = "\tError Trace:"

// trimErrorTrace removes the frames of this package's own source files from the Error Trace
// section of a testify failure message, leaving the frames in the caller's code. If every frame
// would be removed, the trace is left alone.
func trimErrorTrace(msg string) string {
	if !strings.Contains(msg, errorTraceLabel) {
		return msg
	}
	lines := strings.Split(msg, "\n")
	out := make([]string, 0, len(lines))
	var header, continuation string
	var frames []string
	flush := func() {
		if header == "" {
			return
		}
		kept := make([]string, 0, len(frames))
		for _, f := range frames {
			if !isOwnFrame(f) {
				kept = append(kept, f)
			}
		}
		if len(kept) == 0 {
			kept = frames
		}
		out = append(out, header+kept[0])
		for _, f := range kept[1:] {
			out = append(out, continuation+f)
		}
		header = ""
	}
	for _, line := range lines {
		i := strings.LastIndex(line, "\t")
		switch {
		case strings.HasPrefix(line, errorTraceLabel):
			header, continuation, frames = line[:i+1], "", []string{line[i+1:]}
		case header != "" && strings.HasPrefix(line, "\t "):
			continuation = line[:i+1]
			frames = append(frames, line[i+1:])
		default:
			flush()
			out = append(out, line)
		}
	}
	flush()
	return strings.Join(out, "\n")
}

func isOwnFrame(frame string) bool {
	file := frame
	if i := strings.LastIndex(frame, ":"); i >= 0 {
		file = frame[:i]
	}
	return filepath.Dir(file) == packageDir && !strings.HasSuffix(file, "_test.go")
}
