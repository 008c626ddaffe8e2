package aver_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/testbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/go-aver"
	"github.com/launchdarkly/go-aver/selftest"
)

func twoFailingBooleans(b *aver.Block) {
	b.That(false, "Executed")
	b.That(false, "Also executed")
}

func passFailPass(b *aver.Block) {
	b.That(true)
	b.Equal(2, 1+2)
	b.NotEqual(2, 1+2)
}

func TestTwoFailingChecks(t *testing.T) {
	t.Run("tracker", func(t *testing.T) {
		tracker := &selftest.Tracker{}
		aver.DoWith("B1", tracker, twoFailingBooleans)
		assert.Equal(t, aver.Counts{Failed: 2, Succeeded: 0, Ran: 1}, tracker.Counts())
		assert.Equal(t, []string{"B1"}, tracker.Tallied())
	})

	t.Run("default reporter", func(t *testing.T) {
		result := testbox.SandboxTest(func(t testbox.TestingT) {
			aver.Do(t, "B1", twoFailingBooleans)
		})
		assert.True(t, result.Failed)
		require.Len(t, result.Failures, 1)
		assert.Contains(t, result.Failures[0].Message, `"B1"`)
		assert.Contains(t, result.Failures[0].Message, "Executed")
		assert.Contains(t, result.Failures[0].Message, "Also executed")
	})
}

func TestPassFailPass(t *testing.T) {
	t.Run("tracker", func(t *testing.T) {
		tracker := &selftest.Tracker{}
		aver.DoWith("B2", tracker, passFailPass)
		assert.Equal(t, aver.Counts{Failed: 1, Succeeded: 2, Ran: 1}, tracker.Counts())
	})

	t.Run("default reporter", func(t *testing.T) {
		result := testbox.SandboxTest(func(t testbox.TestingT) {
			aver.Do(t, "B2", passFailPass)
		})
		assert.True(t, result.Failed)
		require.Len(t, result.Failures, 1)
		msg := result.Failures[0].Message
		assert.Contains(t, msg, `"B2" failed: 1 of 3 checks failed`)
		assert.Contains(t, msg, "Not equal")
		assert.Contains(t, msg, "[B2 #1]: \tError Trace:\t")
		assert.Contains(t, msg, "run_test.go:")
		assert.NotContains(t, msg, "assertions.go:")
		assert.NotContains(t, msg, "isolate.go:")
	})
}

func TestBodyReturnsError(t *testing.T) {
	body := func(b *aver.Block) error {
		return errors.New("nope!")
	}

	t.Run("tracker", func(t *testing.T) {
		tracker := &selftest.Tracker{}
		aver.RunWith("B3", tracker, body)
		assert.Equal(t, aver.Counts{Errored: 1}, tracker.Counts())
	})

	t.Run("default reporter", func(t *testing.T) {
		result := testbox.SandboxTest(func(t testbox.TestingT) {
			aver.Run(t, "B3", body)
		})
		assert.True(t, result.Failed)
		require.Len(t, result.Failures, 1)
		assert.Contains(t, result.Failures[0].Message, `"B3"`)
		assert.Contains(t, result.Failures[0].Message, "nope!")
	})

	t.Run("default reporter without test", func(t *testing.T) {
		f := recoverBlockFailure(func() { aver.RunWith("B3", aver.NewDefaultReporter(), body) })
		require.NotNil(t, f)
		assert.Equal(t, "B3", f.Block)
		assert.EqualError(t, f.BodyErr, "nope!")
	})
}

func TestBodySucceeds(t *testing.T) {
	body := func(b *aver.Block) error {
		return nil
	}

	t.Run("tracker", func(t *testing.T) {
		tracker := &selftest.Tracker{}
		aver.RunWith("B4", tracker, body)
		assert.Equal(t, aver.Counts{Ran: 1}, tracker.Counts())
	})

	t.Run("default reporter", func(t *testing.T) {
		result := testbox.SandboxTest(func(t testbox.TestingT) {
			aver.Run(t, "B4", body)
		})
		assert.False(t, result.Failed)
	})
}

func TestTableOfCases(t *testing.T) {
	cases := []struct{ a, b, sum int }{{1, 1, 2}, {3, 4, 5}, {5, 6, 11}}
	tracker := &selftest.Tracker{}
	aver.DoWith("table", tracker, func(b *aver.Block) {
		for _, c := range cases {
			b.Equal(c.sum, c.a+c.b, "%d+%d", c.a, c.b)
		}
	})
	assert.Equal(t, aver.Counts{Failed: 1, Succeeded: 2, Ran: 1}, tracker.Counts())
}

func TestEqualAndNotEqual(t *testing.T) {
	tracker := &selftest.Tracker{}
	aver.DoWith("eq", tracker, func(b *aver.Block) {
		b.Equal(false, false, "Equal")
		b.Equal(true, false, "Not equal")
		b.Equal(true, false, "Not equal, again")
		b.NotEqual(false, false, "Equal")
		b.NotEqual(true, false, "Not equal")
	})
	assert.Equal(t, aver.Counts{Failed: 3, Succeeded: 2, Ran: 1}, tracker.Counts())
}

func TestNoError(t *testing.T) {
	tracker := &selftest.Tracker{}
	aver.DoWith("errors", tracker, func(b *aver.Block) {
		b.NoError(nil)
		b.NoError(errors.New("oops"))
	})
	assert.Equal(t, aver.Counts{Failed: 1, Succeeded: 1, Ran: 1}, tracker.Counts())
}

func TestPanicInBodyIsRecordedAsError(t *testing.T) {
	t.Run("tracker", func(t *testing.T) {
		tracker := &selftest.Tracker{}
		assert.NotPanics(t, func() {
			aver.DoWith("panicky", tracker, func(b *aver.Block) {
				b.That(true)
				panic("hey hey")
			})
		})
		assert.Equal(t, aver.Counts{Succeeded: 1, Errored: 1}, tracker.Counts())
		assert.Equal(t, []string{"panicky"}, tracker.Tallied())
	})

	t.Run("default reporter", func(t *testing.T) {
		result := testbox.SandboxTest(func(t testbox.TestingT) {
			aver.Do(t, "panicky", func(b *aver.Block) {
				panic("hey hey")
			})
		})
		assert.True(t, result.Failed)
		require.Len(t, result.Failures, 1)
		assert.Contains(t, result.Failures[0].Message, "unexpected panic in block: hey hey")
	})
}

func TestStrictReporterThroughRun(t *testing.T) {
	result := testbox.SandboxTest(func(t testbox.TestingT) {
		aver.RunWith("strict", aver.NewStrictReporter(t), func(b *aver.Block) error {
			b.That(true)
			return errors.New("stop here")
		})
	})
	assert.True(t, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0].Message, "unexpected error result: stop here")
}

// recordingT fails by panicking with itself, and has a name like *testing.T.
type recordingT struct {
	name     string
	messages []string
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}
func (r *recordingT) FailNow()     { panic(r) }
func (r *recordingT) Name() string { return r.name }

func TestFailureIncludesRerunCommand(t *testing.T) {
	rt := &recordingT{name: "TestSomething/row_1"}
	assert.PanicsWithValue(t, rt, func() {
		aver.Do(rt, "rerun", twoFailingBooleans)
	})
	require.Len(t, rt.messages, 1)
	assert.Contains(t, rt.messages[0], `Test cases in block "rerun" failed`)
	assert.Contains(t, rt.messages[0], "rerun with: go test -run '^TestSomething$/^row_1$'")
}
