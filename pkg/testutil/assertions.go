// Package testutil holds helpers shared by rendering tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// Plain strips ANSI escape sequences so assertions see only the text a user
// would read.
func Plain(s string) string {
	return ansi.Strip(s)
}

// PlainLines strips ANSI sequences and trailing spaces from every line.
func PlainLines(s string) []string {
	lines := strings.Split(Plain(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// AssertContainsAll fails the test for every want missing from the plain
// rendering of got.
func AssertContainsAll(t *testing.T, got string, wants ...string) {
	t.Helper()
	plain := Plain(got)
	for _, want := range wants {
		if !strings.Contains(plain, want) {
			t.Errorf("expected output to contain %q\n--- output ---\n%s", want, plain)
		}
	}
}

// AssertContainsNone fails the test for every unwanted string present in the
// plain rendering of got.
func AssertContainsNone(t *testing.T, got string, unwanted ...string) {
	t.Helper()
	plain := Plain(got)
	for _, u := range unwanted {
		if strings.Contains(plain, u) {
			t.Errorf("expected output not to contain %q\n--- output ---\n%s", u, plain)
		}
	}
}

// AssertMaxWidth fails if any plain line is wider than width cells.
func AssertMaxWidth(t *testing.T, got string, width int) {
	t.Helper()
	for i, line := range strings.Split(got, "\n") {
		if w := ansi.StringWidth(line); w > width {
			t.Errorf("line %d is %d cells wide, max %d: %q", i, w, width, Plain(line))
		}
	}
}
