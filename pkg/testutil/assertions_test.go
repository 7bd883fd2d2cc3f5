package testutil

import (
	"reflect"
	"testing"
)

func TestPlain(t *testing.T) {
	styled := "\x1b[1;36mOverview\x1b[0m │ \x1b[2mdone\x1b[0m"
	if got := Plain(styled); got != "Overview │ done" {
		t.Errorf("Plain = %q", got)
	}
}

func TestPlainLines(t *testing.T) {
	got := PlainLines("\x1b[1ma\x1b[0m   \n  b  \n")
	want := []string{"a", "  b", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PlainLines = %q, want %q", got, want)
	}
}

func TestAssertionsPass(t *testing.T) {
	out := "\x1b[1mhello\x1b[0m world\nЖурнал"
	AssertContainsAll(t, out, "hello world", "Журнал")
	AssertContainsNone(t, out, "goodbye")
	AssertMaxWidth(t, out, 11)
}
