package adt_test

import (
	"testing"

	"github.com/ryanlow/poketower/internal/adt"
)

func TestSortedListOrder(t *testing.T) {
	l := adt.NewSortedList[string](6)
	l.Add(adt.ListItem[string]{Value: "mid", Key: 50})
	l.Add(adt.ListItem[string]{Value: "low", Key: 10})
	l.Add(adt.ListItem[string]{Value: "high", Key: 90})
	l.Add(adt.ListItem[string]{Value: "lowest", Key: 5})

	want := []string{"lowest", "low", "mid", "high"}
	for i, name := range want {
		item, err := l.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if item.Value != name {
			t.Errorf("position %d = %q, want %q", i, item.Value, name)
		}
	}
}

func TestSortedListTieBreak(t *testing.T) {
	l := adt.NewSortedList[string](4)
	l.Add(adt.ListItem[string]{Value: "first", Key: 30, SubKey: 0})
	l.Add(adt.ListItem[string]{Value: "second", Key: 30, SubKey: 1})
	l.Add(adt.ListItem[string]{Value: "third", Key: 30, SubKey: 2})

	for i, want := range []string{"first", "second", "third"} {
		item, _ := l.Get(i)
		if item.Value != want {
			t.Errorf("equal keys should keep sub-key order: position %d = %q, want %q", i, item.Value, want)
		}
	}
}

func TestSortedListDeleteAt(t *testing.T) {
	l := adt.NewSortedList[int](4)
	for _, k := range []float64{3, 1, 2} {
		l.Add(adt.ListItem[int]{Value: int(k), Key: k})
	}

	item, err := l.DeleteAt(0)
	if err != nil {
		t.Fatalf("DeleteAt(0) failed: %v", err)
	}
	if item.Value != 1 {
		t.Errorf("deleted %d, want 1", item.Value)
	}
	if l.Len() != 2 {
		t.Errorf("Len after delete = %d, want 2", l.Len())
	}
	front, _ := l.Get(0)
	if front.Value != 2 {
		t.Errorf("front after delete = %d, want 2", front.Value)
	}

	if _, err := l.DeleteAt(5); err == nil {
		t.Error("DeleteAt out of range should fail")
	}
}
