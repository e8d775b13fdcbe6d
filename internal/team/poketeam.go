package team

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ryanlow/poketower/internal/adt"
	"github.com/ryanlow/poketower/internal/pokemon"
)

// TeamLimit is the most Pokemon a trainer can field.
const TeamLimit = 6

var errNotAssembled = fmt.Errorf("team has not been assembled for battle")

// PokeTeam holds a trainer's Pokemon. Before battle the roster sits in
// a plain array; Assemble moves it into the container the battle mode
// needs (stack, circular queue, or sorted list). The roster is kept so
// the team can be regenerated between tower battles.
type PokeTeam struct {
	roster *adt.ArrayR[*pokemon.Pokemon]
	count  int

	mode       BattleMode
	criterion  Criterion
	descending bool
	assembled  bool

	stack  *adt.Stack[*pokemon.Pokemon]
	queue  *adt.CircularQueue[*pokemon.Pokemon]
	sorted *adt.SortedList[*pokemon.Pokemon]
}

func New() *PokeTeam {
	return &PokeTeam{roster: adt.NewArrayR[*pokemon.Pokemon](TeamLimit)}
}

// ChooseRandomly fills the team with TeamLimit random species.
func (t *PokeTeam) ChooseRandomly(rng *rand.Rand) {
	t.reset()
	for i := 0; i < TeamLimit; i++ {
		t.roster.Set(i, pokemon.Pokedex.Random(rng).New())
		t.count++
	}
}

// ChooseFrom fills the team with the named species, in order.
func (t *PokeTeam) ChooseFrom(names ...string) error {
	if len(names) < 1 || len(names) > TeamLimit {
		return fmt.Errorf("team size must be between 1 and %d, got %d", TeamLimit, len(names))
	}
	picked := make([]*pokemon.Pokemon, len(names))
	for i, name := range names {
		s, err := pokemon.Pokedex.ByName(name)
		if err != nil {
			return err
		}
		picked[i] = s.New()
	}
	t.reset()
	for i, p := range picked {
		t.roster.Set(i, p)
		t.count++
	}
	return nil
}

func (t *PokeTeam) reset() {
	t.roster = adt.NewArrayR[*pokemon.Pokemon](TeamLimit)
	t.count = 0
	t.assembled = false
	t.descending = false
	t.stack, t.queue, t.sorted = nil, nil, nil
}

// Assemble moves the roster into the battle-mode container. Set uses a
// stack (the last pick fights first), Rotate a circular queue, Optimise
// a sorted list on the criterion.
func (t *PokeTeam) Assemble(mode BattleMode, criterion Criterion) error {
	if t.count == 0 {
		return fmt.Errorf("cannot assemble an empty team")
	}
	t.stack, t.queue, t.sorted = nil, nil, nil
	switch mode {
	case Set:
		t.stack = adt.NewStack[*pokemon.Pokemon](t.count)
		for i := 0; i < t.count; i++ {
			p, _ := t.roster.Get(i)
			t.stack.Push(p)
		}
	case Rotate:
		t.queue = adt.NewCircularQueue[*pokemon.Pokemon](t.count)
		for i := 0; i < t.count; i++ {
			p, _ := t.roster.Get(i)
			t.queue.Append(p)
		}
	case Optimise:
		if !criterion.valid() {
			return fmt.Errorf("invalid criterion %v", criterion)
		}
		t.sorted = adt.NewSortedList[*pokemon.Pokemon](t.count)
		for i := 0; i < t.count; i++ {
			p, _ := t.roster.Get(i)
			t.sorted.Add(adt.ListItem[*pokemon.Pokemon]{
				Value:  p,
				Key:    criterion.value(p),
				SubKey: float64(i),
			})
		}
	default:
		return fmt.Errorf("unknown battle mode %v", mode)
	}
	t.mode = mode
	t.criterion = criterion
	t.assembled = true
	return nil
}

// Assign re-sorts an Optimise team on the criterion, honouring the
// descending toggle set by Special. Stats change every round, so the
// battle calls this after each clash.
func (t *PokeTeam) Assign(criterion Criterion) error {
	if t.sorted == nil {
		return fmt.Errorf("team must be assembled as a sorted list before assigning")
	}
	if !criterion.valid() {
		return fmt.Errorf("invalid criterion %v", criterion)
	}
	order := 1.0
	if t.descending {
		order = -1
	}
	resorted := adt.NewSortedList[*pokemon.Pokemon](t.sorted.Len())
	for i := 0; i < t.sorted.Len(); i++ {
		item, _ := t.sorted.Get(i)
		resorted.Add(adt.ListItem[*pokemon.Pokemon]{
			Value:  item.Value,
			Key:    order * criterion.value(item.Value),
			SubKey: order * float64(i),
		})
	}
	t.sorted = resorted
	t.criterion = criterion
	return nil
}

// Special rearranges the team once per call. Set reverses the front
// half, Rotate reverses the back half, Optimise flips the sort
// direction until called again.
func (t *PokeTeam) Special() error {
	if !t.assembled {
		return errNotAssembled
	}
	switch t.mode {
	case Set:
		half := t.stack.Len() / 2
		first := adt.NewStack[*pokemon.Pokemon](half)
		second := adt.NewStack[*pokemon.Pokemon](half)
		for i := 0; i < half; i++ {
			p, _ := t.stack.Pop()
			first.Push(p)
		}
		for i := 0; i < half; i++ {
			p, _ := first.Pop()
			second.Push(p)
		}
		for i := 0; i < half; i++ {
			p, _ := second.Pop()
			t.stack.Push(p)
		}
	case Rotate:
		size := t.queue.Len()
		half := size / 2
		// Cycle the front half to the back, then pull the original back
		// half through a stack to reverse it.
		for i := 0; i < size-half; i++ {
			p, _ := t.queue.Serve()
			t.queue.Append(p)
		}
		temp := adt.NewStack[*pokemon.Pokemon](half)
		for i := 0; i < half; i++ {
			p, _ := t.queue.Serve()
			temp.Push(p)
		}
		for !temp.IsEmpty() {
			p, _ := temp.Pop()
			t.queue.Append(p)
		}
	case Optimise:
		t.descending = !t.descending
		return t.Assign(t.criterion)
	}
	return nil
}

// Regenerate restores every roster member's health to its base form's
// starting value and reassembles the team for the given mode.
func (t *PokeTeam) Regenerate(mode BattleMode, criterion Criterion) error {
	for i := 0; i < t.count; i++ {
		p, _ := t.roster.Get(i)
		base, err := pokemon.Pokedex.BaseHealth(p)
		if err != nil {
			return err
		}
		p.Health = base
	}
	return t.Assemble(mode, criterion)
}

// Front returns the next Pokemon to fight without removing it.
func (t *PokeTeam) Front() (*pokemon.Pokemon, error) {
	if !t.assembled {
		return nil, errNotAssembled
	}
	switch t.mode {
	case Set:
		return t.stack.Peek()
	case Rotate:
		return t.queue.Peek()
	default:
		item, err := t.sorted.Get(0)
		if err != nil {
			return nil, err
		}
		return item.Value, nil
	}
}

// RemoveFront discards the front Pokemon, called when it faints.
func (t *PokeTeam) RemoveFront() error {
	if !t.assembled {
		return errNotAssembled
	}
	var err error
	switch t.mode {
	case Set:
		_, err = t.stack.Pop()
	case Rotate:
		_, err = t.queue.Serve()
	default:
		_, err = t.sorted.DeleteAt(0)
	}
	return err
}

// RotateFront cycles the front Pokemon to the back of a Rotate team.
func (t *PokeTeam) RotateFront() error {
	if t.queue == nil {
		return fmt.Errorf("only rotate teams can rotate")
	}
	p, err := t.queue.Serve()
	if err != nil {
		return err
	}
	return t.queue.Append(p)
}

// Len is the number of Pokemon still standing in the assembled team, or
// the roster size before assembly.
func (t *PokeTeam) Len() int {
	if !t.assembled {
		return t.count
	}
	switch t.mode {
	case Set:
		return t.stack.Len()
	case Rotate:
		return t.queue.Len()
	default:
		return t.sorted.Len()
	}
}

// Get returns the Pokemon at the given position in send-out order. The
// stack and queue are drained and restored to reach the index.
func (t *PokeTeam) Get(index int) (*pokemon.Pokemon, error) {
	if index < 0 || index >= t.Len() {
		return nil, fmt.Errorf("team index %d out of range [0, %d)", index, t.Len())
	}
	if !t.assembled {
		return t.roster.Get(index)
	}
	switch t.mode {
	case Set:
		temp := adt.NewStack[*pokemon.Pokemon](t.stack.Len())
		var found *pokemon.Pokemon
		for i := 0; i <= index; i++ {
			p, _ := t.stack.Pop()
			temp.Push(p)
			found = p
		}
		for !temp.IsEmpty() {
			p, _ := temp.Pop()
			t.stack.Push(p)
		}
		return found, nil
	case Rotate:
		var found *pokemon.Pokemon
		size := t.queue.Len()
		for i := 0; i < size; i++ {
			p, _ := t.queue.Serve()
			if i == index {
				found = p
			}
			t.queue.Append(p)
		}
		return found, nil
	default:
		item, err := t.sorted.Get(index)
		if err != nil {
			return nil, err
		}
		return item.Value, nil
	}
}

func (t *PokeTeam) Mode() BattleMode {
	return t.mode
}

func (t *PokeTeam) Criterion() Criterion {
	return t.criterion
}

func (t *PokeTeam) String() string {
	var b strings.Builder
	for i := 0; i < t.Len(); i++ {
		p, err := t.Get(i)
		if err != nil {
			continue
		}
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	return b.String()
}
