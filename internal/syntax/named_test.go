package syntax

import (
	"errors"
	"testing"
)

func TestUnnamedAndWithName(t *testing.T) {
	u := Unnamed[string](42)
	if u.IsNamed() {
		t.Error("Unnamed should carry no name")
	}
	if u.Value != 42 {
		t.Errorf("Value = %d", u.Value)
	}

	n := WithName("x", 42)
	if !n.IsNamed() {
		t.Error("WithName should carry a name")
	}
	if *n.Name != "x" {
		t.Errorf("Name = %q", *n.Name)
	}
}

func TestMapNamed(t *testing.T) {
	n := WithName("len", "abc")
	got := MapNamed(func(s string) int { return len(s) }, n)
	if got.Value != 3 {
		t.Errorf("Value = %d", got.Value)
	}
	if !got.IsNamed() || *got.Name != "len" {
		t.Error("MapNamed should keep the name")
	}
}

func TestTraverseNamed(t *testing.T) {
	n := WithName("n", 7)
	got, err := TraverseNamed(func(v int) (int, error) { return v * 2, nil }, n)
	if err != nil {
		t.Fatalf("TraverseNamed returned %v", err)
	}
	if got.Value != 14 || *got.Name != "n" {
		t.Errorf("got %d named %q", got.Value, *got.Name)
	}

	boom := errors.New("boom")
	_, err = TraverseNamed(func(v int) (int, error) { return 0, boom }, n)
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}

func TestNamedGetRange(t *testing.T) {
	at := srcSpan(1, 4)
	n := WithName(RangedAt(srcSpan(6, 7), "nm"), RangedAt(at, "payload"))
	if got := n.GetRange(); got.String() != at.String() {
		t.Errorf("GetRange = %v, want the payload range %v", got, at)
	}

	plain := Unnamed[RString](5)
	if !plain.GetRange().Empty() {
		t.Error("range of a plain payload should be empty")
	}
}

func TestNamedKillRange(t *testing.T) {
	name := RangedAt(srcSpan(0, 2), "nm")
	n := WithName(name, RangedAt(srcSpan(3, 8), "payload"))

	killed := n.KillRange()
	if !killed.Name.GetRange().Empty() {
		t.Errorf("name range survived: %v", killed.Name.GetRange())
	}
	if killed.Name.Value != "nm" {
		t.Error("erasure changed the name text")
	}
	if !killed.Value.GetRange().Empty() {
		t.Errorf("payload range survived: %v", killed.Value.GetRange())
	}
	if name.GetRange().Empty() {
		t.Error("erasure mutated the original name")
	}

	u := Unnamed[RString]("v").KillRange()
	if u.Name != nil {
		t.Error("erasure invented a name")
	}
}

func TestNamedArg(t *testing.T) {
	a := DefaultNamedArg(42)
	if a.Value.IsNamed() {
		t.Error("DefaultNamedArg should be unnamed")
	}
	if NamedArgValue(a) != 42 {
		t.Errorf("NamedArgValue = %d", NamedArgValue(a))
	}
	if a.Info.Hiding != NotHidden || a.Info.Relevance != Relevant {
		t.Error("DefaultNamedArg should carry the default info")
	}

	// The alias really is an Arg, so the whole Arg surface applies.
	hidden := Hide(a)
	if hidden.GetHiding() != Hidden {
		t.Errorf("Hide on a named arg gave %v", hidden.GetHiding())
	}

	named := DefaultArg(WithName(Unranged("x"), 7))
	if got := *named.Value.Name; got.Value != "x" {
		t.Errorf("name = %q", got.Value)
	}

	doubled := MapNamedArg(func(v int) int { return v * 2 }, named)
	if NamedArgValue(doubled) != 14 {
		t.Errorf("MapNamedArg value = %d", NamedArgValue(doubled))
	}
	if !doubled.Value.IsNamed() || doubled.Value.Name.Value != "x" {
		t.Error("MapNamedArg should keep the name")
	}
}
