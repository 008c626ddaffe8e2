package aver

import (
	"fmt"
	"runtime/debug"
)

type blockState int

const (
	blockOpen blockState = iota
	blockRan
	blockClosed
)

// Block groups a number of checks so that they are all evaluated, and reported together,
// instead of the first failure ending the test.
//
// A Block is bound to one Reporter for its whole lifetime. Every check evaluated through the
// block is passed to the reporter's Averred method; the body result, if any, is passed to Ran;
// and Close calls the reporter's Tally method, which fails the test if the reporter decides
// that the block failed.
//
// Go has no destructors, so Close must be deferred immediately after NewBlock:
//
//	b := aver.NewBlock("parsing", aver.NewReporter(t))
//	defer b.Close()
//
// Run and Do do this for you, and are the preferred way to create a block.
//
// A Block, and the Reporter bound to it, must only be used from one goroutine.
type Block struct {
	name     string
	reporter Reporter
	state    blockState
}

// NewBlock creates a Block that reports to the specified Reporter. If the reporter implements
// BlockBinder, it is told the block's name first.
func NewBlock(name string, reporter Reporter) *Block {
	if binder, ok := reporter.(BlockBinder); ok {
		binder.BindBlock(name)
	}
	return &Block{name: name, reporter: reporter}
}

// Name returns the display name of the block.
func (b *Block) Name() string {
	return b.name
}

// Aver evaluates op as an isolated check. If op panics, the panic is recovered and recorded as
// a failed check, and the caller continues; otherwise a passed check is recorded. Exactly one
// outcome is passed to the reporter for each call.
//
// If op exits the goroutine with runtime.Goexit, for instance by calling FailNow on the real
// *testing.T, the failure is recorded but the goroutine still exits.
func (b *Block) Aver(op func()) {
	b.requireOpen("Aver")
	isolate(op, b.reporter.Averred)
}

// Check evaluates fn as an isolated check, passing it a TestingT that is local to the check.
// Any assertion from the assert or require packages can be made against that TestingT; a
// failure ends the check, not the test.
func (b *Block) Check(fn func(t TestingT)) {
	b.requireOpen("Check")
	isolate(checkFunc(fn), b.reporter.Averred)
}

// Ran records the terminal result of the block's body. It may be called at most once.
func (b *Block) Ran(result BodyResult) {
	b.requireOpen("Ran")
	if b.state == blockRan {
		panic(fmt.Errorf("%w: %q", ErrBodyAlreadyRan, b.name))
	}
	b.state = blockRan
	b.reporter.Ran(result)
}

// Close ends the block and calls the reporter's Tally method. Only the first call has any
// effect, so it is safe to both defer Close and call it explicitly.
//
// When Close is deferred and the scope is unwinding from a panic that happened outside any
// check, the panic is recorded as the body's error result before Tally, so a reporter that
// fails the test still describes it. If Tally returns, the panic then continues. A panic after
// the body result was already recorded is not passed to the reporter.
func (b *Block) Close() {
	if b.state == blockClosed {
		return
	}
	r := recover()
	if r != nil && b.state == blockOpen {
		b.state = blockRan
		b.reporter.Ran(ErrResult(fmt.Errorf("unexpected panic in block: %+v\n%s", r, string(debug.Stack()))))
	}
	b.state = blockClosed
	b.reporter.Tally(b.name)
	if r != nil {
		panic(r)
	}
}

func (b *Block) requireOpen(method string) {
	if b.state == blockClosed {
		panic(fmt.Errorf("%w: %s called on block %q", ErrBlockClosed, method, b.name))
	}
}
