package pokemon_test

import (
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ryanlow/poketower/internal/pokemon"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func mustSpecies(t *testing.T, name string) *pokemon.Pokemon {
	t.Helper()
	s, err := pokemon.Pokedex.ByName(name)
	if err != nil {
		t.Fatalf("ByName(%q) failed: %v", name, err)
	}
	return s.New()
}

func TestAttackDamageBrackets(t *testing.T) {
	charmander := mustSpecies(t, "Charmander") // power 16, fire

	// Defence below half the attacker's power: flat power minus defence.
	diglett := mustSpecies(t, "Diglett") // defence 5
	if got := charmander.Attack(diglett); got != 11 {
		t.Errorf("low defence damage = %v, want 11", got)
	}

	// Defence between half power and power: ceil(power*5/8 - defence/4),
	// then halved by the fire-water matchup.
	squirtle := mustSpecies(t, "Squirtle") // defence 10, water
	if got := charmander.Attack(squirtle); got != 4 {
		t.Errorf("mid defence damage = %v, want 4", got)
	}

	// Defence at or above power: ceil(power/4).
	snorlax := mustSpecies(t, "Snorlax") // defence 22, normal
	if got := charmander.Attack(snorlax); got != 4 {
		t.Errorf("high defence damage = %v, want 4", got)
	}
}

func TestAttackTypeImmunity(t *testing.T) {
	pikachu := mustSpecies(t, "Pikachu")
	diglett := mustSpecies(t, "Diglett")
	if got := pikachu.Attack(diglett); got != 0 {
		t.Errorf("electric vs ground damage = %v, want 0", got)
	}
}

func TestDefendHalvesWeakHits(t *testing.T) {
	squirtle := mustSpecies(t, "Squirtle") // health 24, defence 10

	squirtle.Defend(8) // weaker than defence, halved
	if squirtle.Health != 20 {
		t.Errorf("health after weak hit = %v, want 20", squirtle.Health)
	}

	squirtle.Defend(12) // at least defence, full damage
	if squirtle.Health != 8 {
		t.Errorf("health after strong hit = %v, want 8", squirtle.Health)
	}

	squirtle.Defend(20)
	if squirtle.IsAlive() {
		t.Error("squirtle should have fainted")
	}
}

func TestLevelUpEvolves(t *testing.T) {
	charmander := mustSpecies(t, "Charmander")
	charmander.LevelUp()

	if charmander.Name != "Charmeleon" {
		t.Fatalf("name after level up = %q, want Charmeleon", charmander.Name)
	}
	if charmander.Level != 6 {
		t.Errorf("level = %d, want 6", charmander.Level)
	}
	if charmander.Power != 24 || charmander.Health != 33 || charmander.Speed != 18 || charmander.Defence != 12 {
		t.Errorf("evolved stats = power %v health %v speed %v defence %v, want 1.5x of base",
			charmander.Power, charmander.Health, charmander.Speed, charmander.Defence)
	}
}

func TestLevelUpFinalFormStays(t *testing.T) {
	charizard := mustSpecies(t, "Charizard")
	power := charizard.Power
	charizard.LevelUp()

	if charizard.Name != "Charizard" {
		t.Errorf("final form should not evolve, got %q", charizard.Name)
	}
	if charizard.Level != 37 || charizard.Power != power {
		t.Errorf("final form level up changed stats: level %d power %v", charizard.Level, charizard.Power)
	}
}

func TestRegistryLookups(t *testing.T) {
	if _, err := pokemon.Pokedex.ByName("charIZArd"); err != nil {
		t.Errorf("ByName should be case-insensitive: %v", err)
	}
	if _, err := pokemon.Pokedex.ByName("MissingNo"); err == nil {
		t.Error("ByName should fail for unknown species")
	}

	rngA := rand.New(rand.NewPCG(7, 0))
	rngB := rand.New(rand.NewPCG(7, 0))
	for range 10 {
		a := pokemon.Pokedex.Random(rngA)
		b := pokemon.Pokedex.Random(rngB)
		if a.Name != b.Name {
			t.Fatalf("same seed picked %q and %q", a.Name, b.Name)
		}
	}
}

func TestRegistryBaseHealth(t *testing.T) {
	charizard := mustSpecies(t, "Charizard")
	base, err := pokemon.Pokedex.BaseHealth(charizard)
	if err != nil {
		t.Fatalf("BaseHealth failed: %v", err)
	}
	if base != 22 {
		t.Errorf("base form health = %v, want Charmander's 22", base)
	}
}

func TestPokemonString(t *testing.T) {
	weedle := mustSpecies(t, "Weedle")
	s := weedle.String()
	if !strings.Contains(s, "Weedle (Level 3)") || !strings.Contains(s, "health") {
		t.Errorf("String = %q", s)
	}
}
