package aver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type namedT struct {
	TestingT
	name string
}

func (n namedT) Name() string { return n.name }

func TestRunPattern(t *testing.T) {
	assert.Equal(t, "^TestParse$", runPattern("TestParse"))
	assert.Equal(t, "^TestParse$/^empty_input$", runPattern("TestParse/empty_input"))
	assert.Equal(t, `^TestParse$/^a\+b$`, runPattern("TestParse/a+b"))
}

func TestRerunCommandQuotesPattern(t *testing.T) {
	assert.Equal(t, "go test -run '^TestParse$/^a b$'", rerunCommand(namedT{name: "TestParse/a b"}))
}

func TestRerunCommandFromRealTest(t *testing.T) {
	assert.Equal(t, "go test -run '^TestRerunCommandFromRealTest$'", rerunCommand(t))
}

func TestRerunCommandWithoutName(t *testing.T) {
	assert.Equal(t, "", rerunCommand(nil))
	assert.Equal(t, "", rerunCommand(&checkT{}))
	assert.Equal(t, "", rerunCommand(namedT{}))
}
