package errors

import (
	"strings"
	"testing"

	"github.com/stellaris-save/parser/token"
)

func TestParseErrorMessage(t *testing.T) {
	f := token.NewFile("gamestate", 20)
	err := Newf("gamestate", f.Pos(4), "x=}", "unexpected %q", "}")
	if got, want := err.Document(), "gamestate"; got != want {
		t.Errorf("Document() = %q; want %q", got, want)
	}
	if !strings.Contains(err.Error(), "unexpected \"}\"") {
		t.Errorf("Error() = %q; want it to mention the message", err.Error())
	}
	if !strings.Contains(err.Error(), "gamestate:1:5") {
		t.Errorf("Error() = %q; want it to mention the position", err.Error())
	}
}

func TestIncompleteParseError(t *testing.T) {
	f := token.NewFile("meta", 3)
	err := NewIncomplete("meta", f.Pos(1), "}}")
	if err.Position().Offset() != 1 {
		t.Errorf("Position().Offset() = %d; want 1", err.Position().Offset())
	}
}

func TestContainerErrorUnwrap(t *testing.T) {
	cause := Newf("meta", token.NoPos, "", "boom")
	err := NewContainer("meta", cause)
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() did not return the wrapped cause")
	}
	var e Error
	if !As(err, &e) {
		t.Fatalf("As() did not match ContainerError against Error")
	}
	if e.Document() != "meta" {
		t.Errorf("Document() = %q; want %q", e.Document(), "meta")
	}
}

func TestToPortable(t *testing.T) {
	f := token.NewFile("gamestate", 10)
	err := Newf("gamestate", f.Pos(2), "abc", "bad token")
	p := ToPortable(err)
	if p.Document != "gamestate" || p.Line != 1 || p.Column != 3 {
		t.Errorf("ToPortable() = %+v; unexpected fields", p)
	}
}
