// Package aver lets a test make a group of independent checks, evaluate all of them even when
// some fail, and then fail once with a description of every failed check.
//
// It is mostly useful in table-driven tests, where stopping at the first bad row hides the
// state of all the others:
//
//	func TestSums(t *testing.T) {
//		aver.Do(t, "sums", func(b *aver.Block) {
//			for _, c := range cases {
//				b.Equal(c.want, c.a+c.b, "%d+%d", c.a, c.b)
//			}
//		})
//	}
//
// The general model is:
//
// 1. A Block is created with a name and a Reporter, and is closed when it goes out of scope.
// Run and Do take care of this; if NewBlock is used directly, Close must be deferred.
//
// 2. Each check is evaluated through the Block with Aver, Check, or one of the assertion
// methods such as Equal. A check that panics, or fails an assert or require assertion made
// against the TestingT it is given, is recorded as a failure and the test carries on.
//
// 3. When the Block is closed, its Reporter decides whether the block failed. The default
// AggregatingReporter fails the test, naming the block, if any check failed or if the body
// returned an error. StrictReporter fails as soon as the body returns an error. The
// selftest.Tracker reporter never fails and only counts what happened.
package aver

//go:generate mockgen -destination internal/mocks/mock_reporter.go -package mocks github.com/launchdarkly/go-aver Reporter
