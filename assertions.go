package aver

import (
	"github.com/stretchr/testify/require"
)

// That checks that condition is true. A false condition is recorded as a failed check, but
// does not stop the caller.
//
// msgAndArgs are passed to testify and describe the check in the failure message.
func (b *Block) That(condition bool, msgAndArgs ...interface{}) {
	b.Check(func(t TestingT) {
		require.True(t, condition, msgAndArgs...)
	})
}

// Equal checks that expected and actual are equal, using the same comparison as
// require.Equal. A mismatch is recorded as a failed check, with a diff in the message.
func (b *Block) Equal(expected, actual interface{}, msgAndArgs ...interface{}) {
	b.Check(func(t TestingT) {
		require.Equal(t, expected, actual, msgAndArgs...)
	})
}

// NotEqual checks that expected and actual are not equal.
func (b *Block) NotEqual(expected, actual interface{}, msgAndArgs ...interface{}) {
	b.Check(func(t TestingT) {
		require.NotEqual(t, expected, actual, msgAndArgs...)
	})
}

// NoError checks that err is nil.
func (b *Block) NoError(err error, msgAndArgs ...interface{}) {
	b.Check(func(t TestingT) {
		require.NoError(t, err, msgAndArgs...)
	})
}
