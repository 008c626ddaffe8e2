package aver

import (
	"strings"

	"github.com/fatih/color"

	"github.com/launchdarkly/go-aver/logging"
)

var (
	passLabel = color.New(color.FgGreen).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

// LoggingReporter writes a line to Logger for every signal it receives, and then forwards the
// signal to Next. At Tally it also logs a summary of the block's counts as a JSON object, and
// starts counting again from zero for the next block.
//
// It is useful for seeing which checks in a table passed, since the default reporter only
// describes the ones that failed. If FailuresOnly is set, the lines for a block are held back
// and written, with the time each one was recorded, only if the block had a failed check or
// body error.
type LoggingReporter struct {
	Next         Reporter
	Logger       logging.Logger
	FailuresOnly bool

	counts  Counts
	pending logging.Recorder
}

// NewLoggingReporter creates a LoggingReporter.
func NewLoggingReporter(next Reporter, logger logging.Logger) *LoggingReporter {
	return &LoggingReporter{Next: next, Logger: logger}
}

// BindBlock passes the block name on to Next, if Next needs it.
func (r *LoggingReporter) BindBlock(blockName string) {
	if binder, ok := r.Next.(BlockBinder); ok {
		binder.BindBlock(blockName)
	}
}

func (r *LoggingReporter) Averred(outcome CheckOutcome) {
	r.counts.AddCheck(outcome)
	n := r.counts.Checks()
	if outcome.Failed() {
		lines := strings.Split(outcome.Failure().Error(), "\n")
		r.logger().Printf("check #%d %s: %s", n, failLabel("FAIL"), lines[0])
		for _, line := range lines[1:] {
			r.logger().Printf("  %s", line)
		}
	} else {
		r.logger().Printf("check #%d %s", n, passLabel("PASS"))
	}
	if r.Next != nil {
		r.Next.Averred(outcome)
	}
}

func (r *LoggingReporter) Ran(result BodyResult) {
	r.counts.AddBody(result)
	if result.Failed() {
		r.logger().Printf("body %s: %s", failLabel("ERROR"), result)
	} else {
		r.logger().Printf("body %s: %s", passLabel("DONE"), result)
	}
	if r.Next != nil {
		r.Next.Ran(result)
	}
}

func (r *LoggingReporter) Tally(blockName string) {
	r.logger().Printf("[%s] %s", blockName, r.counts.AsValue().JSONString())
	if r.FailuresOnly {
		held := r.pending.Take()
		if r.counts.Failed > 0 || r.counts.Errored > 0 {
			held.ReplayTo(logging.OrNull(r.Logger), "")
		}
	}
	r.counts = Counts{}
	if r.Next != nil {
		r.Next.Tally(blockName)
	}
}

func (r *LoggingReporter) logger() logging.Logger {
	if r.FailuresOnly {
		return &r.pending
	}
	return logging.OrNull(r.Logger)
}
