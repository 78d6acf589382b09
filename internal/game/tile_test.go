package game

import "testing"

func TestTileMerge(t *testing.T) {
	a := NewTile(2)
	b := NewTile(2)

	if !a.Merge(b) {
		t.Fatal("equal tiles should merge")
	}
	if a.Value() != 4 {
		t.Errorf("merged tile value = %d, want 4", a.Value())
	}
	if b.Value() != 2 {
		t.Errorf("losing tile must be left unchanged, got %d", b.Value())
	}
}

func TestTileMergeUnequal(t *testing.T) {
	a := NewTile(2)
	b := NewTile(4)

	if a.Merge(b) {
		t.Fatal("unequal tiles must not merge")
	}
	if a.Value() != 2 || b.Value() != 4 {
		t.Errorf("failed merge must have no side effects, got %d and %d", a.Value(), b.Value())
	}
}

func TestTileMergeNil(t *testing.T) {
	a := NewTile(2)
	if a.Merge(nil) {
		t.Error("merging with nil should fail")
	}
	if a.Value() != 2 {
		t.Errorf("value changed on nil merge: %d", a.Value())
	}
}
