package adt_test

import (
	"testing"

	"github.com/ryanlow/poketower/internal/adt"
)

func TestStackPushPop(t *testing.T) {
	s := adt.NewStack[string](3)

	for _, name := range []string{"a", "b", "c"} {
		if err := s.Push(name); err != nil {
			t.Fatalf("Push(%q) failed: %v", name, err)
		}
	}
	if !s.IsFull() {
		t.Error("stack should be full after three pushes")
	}
	if err := s.Push("d"); err != adt.ErrStackFull {
		t.Errorf("expected ErrStackFull, got %v", err)
	}

	top, err := s.Peek()
	if err != nil || top != "c" {
		t.Fatalf("Peek = %q, %v; want c", top, err)
	}

	for _, want := range []string{"c", "b", "a"} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop failed: %v", err)
		}
		if got != want {
			t.Errorf("Pop = %q, want %q", got, want)
		}
	}
	if _, err := s.Pop(); err != adt.ErrStackEmpty {
		t.Errorf("expected ErrStackEmpty, got %v", err)
	}
}

func TestStackLen(t *testing.T) {
	s := adt.NewStack[int](6)
	if s.Len() != 0 || !s.IsEmpty() {
		t.Fatal("new stack should be empty")
	}
	s.Push(1)
	s.Push(2)
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
	s.Pop()
	if s.Len() != 1 {
		t.Errorf("Len after pop = %d, want 1", s.Len())
	}
}
