package aver

import (
	"fmt"
	"runtime/debug"
)

// Run creates a block named name that reports to an AggregatingReporter bound to t, runs body
// with it, and tallies the block when body returns. The block fails if any of its checks
// failed or if body returned an error.
//
//	aver.Run(t, "sums", func(b *aver.Block) error {
//		for _, c := range cases {
//			b.Equal(c.want, c.a+c.b, "%d+%d", c.a, c.b)
//		}
//		return nil
//	})
func Run(t TestingT, name string, body func(b *Block) error) {
	if h, ok := t.(helper); ok {
		h.Helper()
	}
	RunWith(name, NewReporter(t), body)
}

// RunWith is the same as Run, but reports to the specified Reporter.
//
// If body panics, the panic is recorded as an error result for the block rather than being
// allowed to end the test binary.
func RunWith(name string, reporter Reporter, body func(b *Block) error) {
	b := NewBlock(name, reporter)
	defer b.Close()
	b.Ran(runBody(func() BodyResult { return ErrResult(body(b)) }))
}

// Do is the same as Run for a body that does not return an error.
func Do(t TestingT, name string, body func(b *Block)) {
	if h, ok := t.(helper); ok {
		h.Helper()
	}
	DoWith(name, NewReporter(t), body)
}

// DoWith is the same as RunWith for a body that does not return an error.
func DoWith(name string, reporter Reporter, body func(b *Block)) {
	b := NewBlock(name, reporter)
	defer b.Close()
	b.Ran(runBody(func() BodyResult {
		body(b)
		return VoidResult()
	}))
}

func runBody(body func() BodyResult) (result BodyResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ErrResult(fmt.Errorf("unexpected panic in block: %+v\n%s", r, string(debug.Stack())))
		}
	}()
	return body()
}
