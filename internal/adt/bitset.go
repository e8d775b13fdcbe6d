package adt

import (
	"fmt"
	"math/bits"
)

// BitSet is a set of positive integers backed by a bit vector. The word
// slice grows on demand.
type BitSet struct {
	words []uint64
}

func NewBitSet() *BitSet {
	return &BitSet{}
}

func (b *BitSet) Add(n int) error {
	if n < 1 {
		return fmt.Errorf("bit set elements must be positive, got %d", n)
	}
	word, bit := (n-1)/64, uint(n-1)%64
	for word >= len(b.words) {
		b.words = append(b.words, 0)
	}
	b.words[word] |= 1 << bit
	return nil
}

func (b *BitSet) Remove(n int) {
	if n < 1 {
		return
	}
	word, bit := (n-1)/64, uint(n-1)%64
	if word < len(b.words) {
		b.words[word] &^= 1 << bit
	}
}

func (b *BitSet) Contains(n int) bool {
	if n < 1 {
		return false
	}
	word, bit := (n-1)/64, uint(n-1)%64
	return word < len(b.words) && b.words[word]&(1<<bit) != 0
}

func (b *BitSet) Len() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount64(w)
	}
	return total
}

func (b *BitSet) Union(other *BitSet) *BitSet {
	out := NewBitSet()
	longest := max(len(b.words), len(other.words))
	for i := 0; i < longest; i++ {
		out.words = append(out.words, b.word(i)|other.word(i))
	}
	return out
}

func (b *BitSet) Intersection(other *BitSet) *BitSet {
	out := NewBitSet()
	longest := max(len(b.words), len(other.words))
	for i := 0; i < longest; i++ {
		out.words = append(out.words, b.word(i)&other.word(i))
	}
	return out
}

func (b *BitSet) Difference(other *BitSet) *BitSet {
	out := NewBitSet()
	for i := range b.words {
		out.words = append(out.words, b.words[i]&^other.word(i))
	}
	return out
}

func (b *BitSet) word(i int) uint64 {
	if i < 0 || i >= len(b.words) {
		return 0
	}
	return b.words[i]
}
