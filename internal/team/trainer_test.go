package team_test

import (
	"strings"
	"testing"

	"github.com/ryanlow/poketower/internal/pokemon"
	"github.com/ryanlow/poketower/internal/team"
)

func TestPickTeamRegistersTypes(t *testing.T) {
	tr := team.NewTrainer("Ash")
	if tr.PokedexCompletion() != 0 {
		t.Fatalf("fresh trainer completion = %v, want 0", tr.PokedexCompletion())
	}

	// Three distinct types: fire, water, grass.
	if err := tr.PickTeam("Charmander", "Squirtle", "Bulbasaur"); err != nil {
		t.Fatalf("PickTeam failed: %v", err)
	}
	if got := tr.PokedexCompletion(); got != 0.2 {
		t.Errorf("completion = %v, want 0.2", got)
	}
}

func TestDuplicateTypesCountOnce(t *testing.T) {
	tr := team.NewTrainer("Misty")
	tr.PickTeam("Squirtle", "Wartortle", "Blastoise")
	if got := tr.PokedexCompletion(); got != 0.07 {
		t.Errorf("completion = %v, want 0.07 (one type of fifteen)", got)
	}
}

func TestRegisterOpponentPokemon(t *testing.T) {
	tr := team.NewTrainer("Gary")
	tr.PickTeam("Charmander")

	s, err := pokemon.Pokedex.ByName("Pikachu")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	tr.RegisterPokemon(s.New())

	if got := tr.PokedexCompletion(); got != 0.13 {
		t.Errorf("completion = %v, want 0.13 (two types)", got)
	}
}

func TestTrainerString(t *testing.T) {
	tr := team.NewTrainer("Brock")
	tr.PickTeam("Geodude")
	s := tr.String()
	if !strings.Contains(s, "Brock") || !strings.Contains(s, "7%") {
		t.Errorf("String = %q", s)
	}
}

func TestTrainerIDsAreUnique(t *testing.T) {
	a := team.NewTrainer("A")
	b := team.NewTrainer("B")
	if a.ID == b.ID {
		t.Error("trainers should get distinct IDs")
	}
}
