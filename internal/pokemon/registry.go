package pokemon

import (
	"fmt"
	"math/rand/v2"
	"strings"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed data/pokedex.yaml
var pokedexYAML []byte

// Species is one roster entry from the pokedex table.
type Species struct {
	Name       string   `yaml:"name"`
	Type       PokeType `yaml:"type"`
	Health     float64  `yaml:"health"`
	Power      float64  `yaml:"power"`
	Defence    float64  `yaml:"defence"`
	Speed      float64  `yaml:"speed"`
	Level      int      `yaml:"level"`
	Experience int      `yaml:"experience"`
	Evolution  []string `yaml:"evolution"`
}

// New builds a fresh battle-ready instance of the species.
func (s Species) New() *Pokemon {
	evolution := make([]string, len(s.Evolution))
	copy(evolution, s.Evolution)
	return &Pokemon{
		Name:       s.Name,
		Type:       s.Type,
		Health:     s.Health,
		Power:      s.Power,
		Defence:    s.Defence,
		Speed:      s.Speed,
		Level:      s.Level,
		Experience: s.Experience,
		Evolution:  evolution,
	}
}

type Registry []Species

// Pokedex is the full roster, loaded from the embedded table at startup.
var Pokedex Registry

func init() {
	reg, err := loadRegistry(pokedexYAML)
	if err != nil {
		panic(fmt.Sprintf("pokemon: bad embedded pokedex: %v", err))
	}
	Pokedex = reg
}

func loadRegistry(data []byte) (Registry, error) {
	var doc struct {
		Species []Species `yaml:"species"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Species) == 0 {
		return nil, fmt.Errorf("pokedex table is empty")
	}
	for _, s := range doc.Species {
		if s.Health <= 0 || s.Power <= 0 || s.Speed <= 0 {
			return nil, fmt.Errorf("species %q has non-positive stats", s.Name)
		}
		// The end-of-round chip hit assumes every defence beats 2 damage.
		if s.Defence <= 2 {
			return nil, fmt.Errorf("species %q has defence %.1f, must exceed 2", s.Name, s.Defence)
		}
	}
	return Registry(doc.Species), nil
}

func (r Registry) ByName(name string) (Species, error) {
	for _, s := range r {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Species{}, fmt.Errorf("unknown pokemon %q", name)
}

func (r Registry) Random(rng *rand.Rand) Species {
	return r[rng.IntN(len(r))]
}

// BaseHealth returns the starting health of the line's base form, used
// when a team is regenerated between tower battles.
func (r Registry) BaseHealth(p *Pokemon) (float64, error) {
	s, err := r.ByName(p.BaseForm())
	if err != nil {
		return 0, err
	}
	return s.Health, nil
}

func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, s := range r {
		names[i] = s.Name
	}
	return names
}
