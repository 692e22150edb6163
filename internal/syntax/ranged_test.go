package syntax

import (
	"errors"
	"testing"
)

func TestUnranged(t *testing.T) {
	r := Unranged("x")
	if !r.GetRange().Empty() {
		t.Errorf("Unranged carries range %v", r.GetRange())
	}
	if r.Value != "x" {
		t.Errorf("Value = %q", r.Value)
	}
}

func TestRangedAt(t *testing.T) {
	at := srcSpan(3, 8)
	r := RangedAt(at, "x")
	if got := r.GetRange(); got.String() != at.String() {
		t.Errorf("GetRange = %v, want %v", got, at)
	}
}

func TestRangedOwnRangeWins(t *testing.T) {
	inner := RangedAt(srcSpan(10, 12), "inner")
	outer := RangedAt(srcSpan(0, 20), inner)
	if got := outer.GetRange(); got.String() != srcSpan(0, 20).String() {
		t.Errorf("outer range = %v, want its own, not the payload's", got)
	}
}

func TestRangedSetRange(t *testing.T) {
	r := Unranged("x")
	moved := r.SetRange(srcSpan(1, 2))
	if moved.GetRange().Empty() {
		t.Error("SetRange did not take")
	}
	if !r.GetRange().Empty() {
		t.Error("SetRange mutated the original")
	}
}

func TestMapRanged(t *testing.T) {
	at := srcSpan(2, 5)
	r := RangedAt(at, "abc")
	got := MapRanged(func(s string) int { return len(s) }, r)
	if got.Value != 3 {
		t.Errorf("Value = %d", got.Value)
	}
	if got.GetRange().String() != at.String() {
		t.Error("MapRanged should keep the range")
	}
}

func TestTraverseRanged(t *testing.T) {
	at := srcSpan(2, 5)
	r := RangedAt(at, 3)
	got, err := TraverseRanged(func(v int) (int, error) { return v + 1, nil }, r)
	if err != nil {
		t.Fatalf("TraverseRanged returned %v", err)
	}
	if got.Value != 4 || got.GetRange().String() != at.String() {
		t.Errorf("got %d at %v", got.Value, got.GetRange())
	}

	boom := errors.New("boom")
	_, err = TraverseRanged(func(v int) (int, error) { return 0, boom }, r)
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}

func TestRangedKillRange(t *testing.T) {
	inner := RangedAt(srcSpan(10, 12), "v")
	outer := RangedAt(srcSpan(0, 20), inner)

	killed := outer.KillRange()
	if !killed.GetRange().Empty() {
		t.Errorf("own range survived: %v", killed.GetRange())
	}
	if !killed.Value.GetRange().Empty() {
		t.Errorf("nested range survived: %v", killed.Value.GetRange())
	}
	if killed.Value.Value != "v" {
		t.Error("erasure changed the nested value")
	}

	again := killed.KillRange()
	if again.Value.Value != killed.Value.Value || !again.GetRange().Empty() {
		t.Error("KillRange should be idempotent")
	}
}
