package adt_test

import (
	"testing"

	"github.com/ryanlow/poketower/internal/adt"
)

func TestBitSetAddContains(t *testing.T) {
	b := adt.NewBitSet()
	for _, n := range []int{1, 7, 15, 70} {
		if err := b.Add(n); err != nil {
			t.Fatalf("Add(%d) failed: %v", n, err)
		}
	}
	if err := b.Add(0); err == nil {
		t.Error("Add(0) should fail, elements must be positive")
	}

	if b.Len() != 4 {
		t.Errorf("Len = %d, want 4", b.Len())
	}
	if !b.Contains(70) {
		t.Error("set should contain 70")
	}
	if b.Contains(2) {
		t.Error("set should not contain 2")
	}

	// Adding twice does not double-count.
	b.Add(7)
	if b.Len() != 4 {
		t.Errorf("Len after duplicate add = %d, want 4", b.Len())
	}

	b.Remove(7)
	if b.Contains(7) || b.Len() != 3 {
		t.Errorf("Remove(7) left Contains=%v Len=%d", b.Contains(7), b.Len())
	}
}

func TestBitSetOperations(t *testing.T) {
	a := adt.NewBitSet()
	b := adt.NewBitSet()
	for _, n := range []int{1, 2, 3} {
		a.Add(n)
	}
	for _, n := range []int{2, 3, 4} {
		b.Add(n)
	}

	union := a.Union(b)
	if union.Len() != 4 {
		t.Errorf("union Len = %d, want 4", union.Len())
	}
	inter := a.Intersection(b)
	if inter.Len() != 2 || !inter.Contains(2) || !inter.Contains(3) {
		t.Errorf("intersection wrong: Len=%d", inter.Len())
	}
	diff := a.Difference(b)
	if diff.Len() != 1 || !diff.Contains(1) {
		t.Errorf("difference wrong: Len=%d", diff.Len())
	}
}
