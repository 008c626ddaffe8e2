package aver

import (
	"errors"
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// CheckStatus says how an isolated check terminated.
type CheckStatus int

const (
	// CheckPassed means the check ran to completion without reporting a failure.
	CheckPassed CheckStatus = iota
	// CheckFailed means the check terminated abnormally.
	CheckFailed
)

func (s CheckStatus) String() string {
	switch s {
	case CheckPassed:
		return "passed"
	case CheckFailed:
		return "failed"
	default:
		return fmt.Sprintf("CheckStatus(%d)", int(s))
	}
}

// CheckOutcome is the result of evaluating one isolated check.
type CheckOutcome struct {
	Status CheckStatus
	// Err describes the failure. It is nil for a passed check.
	Err error
	// Panic is the value recovered from the check, if it panicked with something other
	// than a failure reported through its TestingT.
	Panic interface{}
}

// Failed returns true if the check terminated abnormally.
func (o CheckOutcome) Failed() bool {
	return o.Status == CheckFailed
}

// Failure returns Err, or a generic error if the check failed without one. It returns nil
// for a passed check.
func (o CheckOutcome) Failure() error {
	if !o.Failed() {
		return nil
	}
	if o.Err == nil {
		return errors.New("check failed")
	}
	return o.Err
}

func (o CheckOutcome) String() string {
	if err := o.Failure(); err != nil {
		return fmt.Sprintf("%s: %s", o.Status, err)
	}
	return o.Status.String()
}

// BodyKind identifies which variant of BodyResult is present.
type BodyKind int

const (
	// BodyVoid means the body produced no result.
	BodyVoid BodyKind = iota
	// BodyOK means the body produced a successful result.
	BodyOK
	// BodyErr means the body produced an error.
	BodyErr
)

// BodyResult is the terminal result of a block's body. The payload is opaque to reporters,
// which only need to be able to display it.
type BodyResult struct {
	Kind  BodyKind
	Value interface{}
	Err   error
}

// VoidResult is the result of a body that returns nothing.
func VoidResult() BodyResult {
	return BodyResult{Kind: BodyVoid}
}

// OKResult is the result of a body that succeeded with the given value.
func OKResult(value interface{}) BodyResult {
	return BodyResult{Kind: BodyOK, Value: value}
}

// ErrResult is the result of a body that failed. A nil err is treated as OKResult(nil).
func ErrResult(err error) BodyResult {
	if err == nil {
		return OKResult(nil)
	}
	return BodyResult{Kind: BodyErr, Err: err}
}

// Failed returns true if the body produced an error.
func (r BodyResult) Failed() bool {
	return r.Kind == BodyErr
}

// Failure returns Err, or a generic error if the body failed without one. It returns nil
// for a void or successful result.
func (r BodyResult) Failure() error {
	if !r.Failed() {
		return nil
	}
	if r.Err == nil {
		return errors.New("block body failed")
	}
	return r.Err
}

func (r BodyResult) String() string {
	switch r.Kind {
	case BodyVoid:
		return "void"
	case BodyOK:
		if r.Value == nil {
			return "ok"
		}
		return fmt.Sprintf("ok(%+v)", r.Value)
	default:
		return fmt.Sprintf("error(%s)", r.Failure())
	}
}

// Counts summarizes the signals a reporter has received.
type Counts struct {
	// Failed is the number of checks that terminated abnormally.
	Failed int
	// Succeeded is the number of checks that completed normally.
	Succeeded int
	// Errored is the number of bodies that produced an error.
	Errored int
	// Ran is the number of bodies that completed with a void or successful result.
	Ran int
}

// AddCheck updates the counts for one check outcome.
func (c *Counts) AddCheck(o CheckOutcome) {
	if o.Failed() {
		c.Failed++
	} else {
		c.Succeeded++
	}
}

// AddBody updates the counts for one body result.
func (c *Counts) AddBody(r BodyResult) {
	if r.Failed() {
		c.Errored++
	} else {
		c.Ran++
	}
}

// Checks returns the total number of checks counted.
func (c Counts) Checks() int {
	return c.Failed + c.Succeeded
}

// AsValue returns the counts as a JSON object value.
func (c Counts) AsValue() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("failed", ldvalue.Int(c.Failed)).
		Set("succeeded", ldvalue.Int(c.Succeeded)).
		Set("errored", ldvalue.Int(c.Errored)).
		Set("ran", ldvalue.Int(c.Ran)).
		Build()
}

func (c Counts) String() string {
	return fmt.Sprintf("failed=%d succeeded=%d errored=%d ran=%d", c.Failed, c.Succeeded, c.Errored, c.Ran)
}
