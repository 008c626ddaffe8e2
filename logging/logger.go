// Package logging provides the minimal logger abstraction used by the reporters, along with
// adapters for the standard library, zap, and Go test logs.
package logging

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the only logging capability the reporters need. *log.Logger implements it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// OrNull returns l, or NullLogger() if l is nil.
func OrNull(l Logger) Logger {
	if l == nil {
		return nullLogger{}
	}
	return l
}

// Entry is one message kept by a Recorder.
type Entry struct {
	Time    time.Time
	Message string
}

// Entries is the ordered content of a Recorder.
type Entries []Entry

// Messages returns just the text of each entry.
func (entries Entries) Messages() []string {
	ret := make([]string, 0, len(entries))
	for _, e := range entries {
		ret = append(ret, e.Message)
	}
	return ret
}

// ReplayTo writes each entry to dest, stamped with the time it was recorded.
func (entries Entries) ReplayTo(dest Logger, prefix string) {
	for _, e := range entries {
		dest.Printf("%s[%s] %s", prefix, e.Time.Format(timestampFormat), e.Message)
	}
}

// Recorder is a Logger that holds messages in memory until they are read or replayed. The
// zero value is ready to use.
type Recorder struct {
	entries Entries
	lock    sync.Mutex
}

func (r *Recorder) Printf(message string, args ...interface{}) {
	e := Entry{Time: time.Now(), Message: fmt.Sprintf(message, args...)}
	r.lock.Lock()
	r.entries = append(r.entries, e)
	r.lock.Unlock()
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() Entries {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append(Entries(nil), r.entries...)
}

// Take returns everything recorded so far and empties the Recorder.
func (r *Recorder) Take() Entries {
	r.lock.Lock()
	defer r.lock.Unlock()
	ret := r.entries
	r.entries = nil
	return ret
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (z zapLogger) Printf(message string, args ...interface{}) {
	z.sugar.Infof(message, args...)
}

// ZapLogger returns a Logger that writes each message at Info level to z.
func ZapLogger(z *zap.Logger) Logger {
	return zapLogger{sugar: z.Sugar()}
}

// TestingLog is the logging method of *testing.T.
type TestingLog interface {
	Logf(format string, args ...interface{})
}

type testLogger struct {
	t TestingLog
}

func (l testLogger) Printf(message string, args ...interface{}) {
	if h, ok := l.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	l.t.Logf(message, args...)
}

// TestLogger returns a Logger that writes to the log of a test, so the output is only shown
// when the test fails or when running with -v.
func TestLogger(t TestingLog) Logger {
	return testLogger{t: t}
}
