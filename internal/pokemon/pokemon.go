package pokemon

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// Pokemon is a single battling creature. Stats are float64 because
// halved damage and the 1.5x evolution boost produce fractions.
type Pokemon struct {
	Name       string
	Type       PokeType
	Health     float64
	Power      float64
	Defence    float64
	Speed      float64
	Level      int
	Experience int
	Evolution  []string
}

// Attack returns the damage this Pokemon inflicts on the defender,
// after type effectiveness. The defender's health is untouched; apply
// the result through Defend.
func (p *Pokemon) Attack(defender *Pokemon) float64 {
	var damage float64
	switch {
	case defender.Defence < p.Power/2:
		damage = p.Power - defender.Defence
	case defender.Defence < p.Power:
		damage = math.Ceil(p.Power*5/8 - defender.Defence/4)
	default:
		damage = math.Ceil(p.Power / 4)
	}
	return damage * Effectiveness(p.Type, defender.Type)
}

// Defend reduces health by the given damage, halved when the hit is
// weaker than this Pokemon's defence.
func (p *Pokemon) Defend(damage float64) {
	effective := damage
	if damage < p.Defence {
		effective = damage / 2
	}
	p.Health -= effective
}

// LevelUp raises the level by one and evolves the Pokemon if it has not
// reached the end of its evolution line.
func (p *Pokemon) LevelUp() {
	p.Level++
	pos := p.evolutionIndex()
	if pos >= 0 && pos < len(p.Evolution)-1 {
		p.evolve(p.Evolution[pos+1])
	}
}

func (p *Pokemon) evolve(name string) {
	log.Info().Str("from", p.Name).Str("to", name).Msg("pokemon evolved")
	p.Name = name
	p.Power *= 1.5
	p.Health *= 1.5
	p.Speed *= 1.5
	p.Defence *= 1.5
}

func (p *Pokemon) evolutionIndex() int {
	for i, name := range p.Evolution {
		if name == p.Name {
			return i
		}
	}
	return -1
}

// BaseForm returns the first name in the evolution line, or the
// Pokemon's own name when it has no line.
func (p *Pokemon) BaseForm() string {
	if len(p.Evolution) == 0 {
		return p.Name
	}
	return p.Evolution[0]
}

func (p *Pokemon) IsAlive() bool {
	return p.Health > 0
}

func (p *Pokemon) String() string {
	return fmt.Sprintf("%s (Level %d) with %.1f health and %d experience",
		p.Name, p.Level, p.Health, p.Experience)
}
