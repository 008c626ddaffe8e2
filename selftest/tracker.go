// Package selftest contains a Reporter that never fails, for testing code that uses blocks,
// including this module itself.
package selftest

import (
	"github.com/launchdarkly/go-aver"
	"github.com/launchdarkly/go-aver/logging"
)

// Tracker is an aver.Reporter that counts the signals it receives. Its Tally method never
// fails; use Counts to find out what happened.
//
// The zero value is ready to use. If Logger is set, every signal is also logged to it.
type Tracker struct {
	Logger logging.Logger

	counts  aver.Counts
	tallied []string
}

func (t *Tracker) Averred(outcome aver.CheckOutcome) {
	logging.OrNull(t.Logger).Printf("aver result: %s", outcome)
	t.counts.AddCheck(outcome)
}

func (t *Tracker) Ran(result aver.BodyResult) {
	logging.OrNull(t.Logger).Printf("run result: %s", result)
	t.counts.AddBody(result)
}

// Tally only records that the block was closed.
func (t *Tracker) Tally(blockName string) {
	t.tallied = append(t.tallied, blockName)
}

// Counts returns the number of failed checks, succeeded checks, bodies that returned an error,
// and bodies that completed without one.
func (t *Tracker) Counts() aver.Counts {
	return t.counts
}

// Tallied returns the names of the blocks that have been closed, in order.
func (t *Tracker) Tallied() []string {
	return append([]string(nil), t.tallied...)
}
