package aver

import (
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
)

type namer interface {
	Name() string
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand returns a "go test" command line selecting only the test that t belongs to,
// or "" if t does not expose its name.
func rerunCommand(t TestingT) string {
	n, ok := t.(namer)
	if !ok || n.Name() == "" {
		return ""
	}
	var cmd commandBuilder
	cmd.add("go", "test", "-run", runPattern(n.Name()))
	return cmd.String()
}

// runPattern anchors each element of a test name such as "TestParse/empty_input" so that
// "-run" matches that test and no other.
func runPattern(testName string) string {
	parts := strings.Split(testName, "/")
	for i, p := range parts {
		parts[i] = "^" + regexp.QuoteMeta(p) + "$"
	}
	return strings.Join(parts, "/")
}
