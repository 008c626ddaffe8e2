package aver

import (
	"fmt"
)

// Reporter collects the results of a block's checks and decides whether the block failed.
//
// Averred and Ran must never panic. Tally is the only method that is expected to raise a
// failure, except that a fail-fast implementation such as StrictReporter may also raise from
// Ran when the body produced an error.
type Reporter interface {
	// Averred is called once for each check evaluated through a Block.
	Averred(outcome CheckOutcome)

	// Ran is called at most once per block, with the terminal result of the block's body.
	Ran(result BodyResult)

	// Tally is called exactly once, when the block named blockName is closed. If any failure
	// was recorded, it should fail the test with a message that includes blockName.
	Tally(blockName string)
}

// BlockBinder is implemented by a Reporter that needs to know the name of a block before the
// block is tallied. NewBlock calls BindBlock before any other method.
type BlockBinder interface {
	BindBlock(blockName string)
}

// AggregatingReporter is the default Reporter. It delays all failures to the end of the block:
// Tally fails the test if any check failed or if the body produced an error.
//
// If T is set, the failure is reported with T.Errorf followed by T.FailNow, exactly as a
// failed require assertion would be. If T is nil, Tally panics with a *BlockFailure.
type AggregatingReporter struct {
	T TestingT

	counts      Counts
	checkErrors []error
	bodyErr     error
}

// NewReporter creates an AggregatingReporter that reports failures to t.
func NewReporter(t TestingT) *AggregatingReporter {
	return &AggregatingReporter{T: t}
}

// NewDefaultReporter creates an AggregatingReporter that is not bound to a test; a failed
// block makes Tally panic with a *BlockFailure.
func NewDefaultReporter() *AggregatingReporter {
	return &AggregatingReporter{}
}

func (r *AggregatingReporter) Averred(outcome CheckOutcome) {
	r.counts.AddCheck(outcome)
	if outcome.Failed() {
		r.checkErrors = append(r.checkErrors, outcome.Failure())
	}
}

func (r *AggregatingReporter) Ran(result BodyResult) {
	r.counts.AddBody(result)
	if result.Failed() {
		r.bodyErr = result.Failure()
	}
}

func (r *AggregatingReporter) Tally(blockName string) {
	if len(r.checkErrors) == 0 && r.bodyErr == nil {
		return
	}
	raise(r.T, r.failure(blockName))
}

// Counts returns the signals received so far.
func (r *AggregatingReporter) Counts() Counts {
	return r.counts
}

func (r *AggregatingReporter) failure(blockName string) *BlockFailure {
	return &BlockFailure{
		Block:       blockName,
		Checks:      r.counts.Checks(),
		CheckErrors: append([]error(nil), r.checkErrors...),
		BodyErr:     r.bodyErr,
		Rerun:       rerunCommand(r.T),
	}
}

// StrictReporter behaves like AggregatingReporter for checks, but fails the test immediately
// when the block's body produces an error, instead of waiting for Tally. The failure raised
// from Ran includes the checks that had already failed, and Tally does not raise again.
type StrictReporter struct {
	AggregatingReporter

	block  string
	raised bool
}

// NewStrictReporter creates a StrictReporter that reports failures to t. If t is nil,
// failures are raised as panics.
func NewStrictReporter(t TestingT) *StrictReporter {
	return &StrictReporter{AggregatingReporter: AggregatingReporter{T: t}}
}

// BindBlock sets the block name used by a failure raised from Ran.
func (r *StrictReporter) BindBlock(blockName string) {
	r.block = blockName
	r.raised = false
}

func (r *StrictReporter) Ran(result BodyResult) {
	r.AggregatingReporter.Ran(result)
	if !result.Failed() {
		return
	}
	r.bodyErr = fmt.Errorf("unexpected error result: %w", result.Failure())
	r.raised = true
	raise(r.T, r.failure(r.block))
}

// Tally fails the test if any check failed, unless Ran has already failed it.
func (r *StrictReporter) Tally(blockName string) {
	if r.raised || len(r.checkErrors) == 0 {
		return
	}
	raise(r.T, r.failure(blockName))
}

type helper interface {
	Helper()
}

// raise fails the test bound to t, or panics if there is none.
func raise(t TestingT, err error) {
	if t == nil {
		panic(err)
	}
	if h, ok := t.(helper); ok {
		h.Helper()
	}
	t.Errorf("%s", err)
	t.FailNow()
}
