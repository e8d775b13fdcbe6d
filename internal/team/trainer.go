package team

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/ryanlow/poketower/internal/adt"
	"github.com/ryanlow/poketower/internal/pokemon"
)

// Trainer owns a team and a pokedex of every type it has seen. Pokedex
// completion scales battle damage, so scouting opponents matters.
type Trainer struct {
	ID   uuid.UUID
	Name string

	team    *PokeTeam
	pokedex *adt.BitSet
}

func NewTrainer(name string) *Trainer {
	return &Trainer{
		ID:      uuid.New(),
		Name:    name,
		team:    New(),
		pokedex: adt.NewBitSet(),
	}
}

// PickRandomTeam fills the team with random species and registers each
// of them in the pokedex.
func (t *Trainer) PickRandomTeam(rng *rand.Rand) {
	t.team.ChooseRandomly(rng)
	t.registerTeam()
}

// PickTeam fills the team with the named species and registers each of
// them in the pokedex.
func (t *Trainer) PickTeam(names ...string) error {
	if err := t.team.ChooseFrom(names...); err != nil {
		return err
	}
	t.registerTeam()
	return nil
}

func (t *Trainer) registerTeam() {
	for i := 0; i < t.team.Len(); i++ {
		p, err := t.team.Get(i)
		if err != nil {
			continue
		}
		t.RegisterPokemon(p)
	}
}

func (t *Trainer) Team() *PokeTeam {
	return t.team
}

// RegisterPokemon records the Pokemon's type in the pokedex. The bit
// set only holds positive integers, so types are stored off by one.
func (t *Trainer) RegisterPokemon(p *pokemon.Pokemon) {
	t.pokedex.Add(int(p.Type) + 1)
}

// PokedexCompletion is the fraction of the fifteen types seen, rounded
// to two decimal places.
func (t *Trainer) PokedexCompletion() float64 {
	return math.Round(float64(t.pokedex.Len())/pokemon.NumTypes*100) / 100
}

func (t *Trainer) String() string {
	return fmt.Sprintf("Trainer %s Pokedex Completion: %.0f%%", t.Name, t.PokedexCompletion()*100)
}
