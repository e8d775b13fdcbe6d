package team

import (
	"fmt"

	"github.com/ryanlow/poketower/internal/pokemon"
)

// BattleMode determines the container a team is assembled into and so
// the order Pokemon are sent out.
type BattleMode int

const (
	// Set keeps each Pokemon out until it faints (stack order).
	Set BattleMode = iota
	// Rotate cycles the active Pokemon to the back after every round.
	Rotate
	// Optimise keeps the team sorted on a chosen criterion.
	Optimise
)

var modeNames = map[BattleMode]string{
	Set:      "set",
	Rotate:   "rotate",
	Optimise: "optimise",
}

func (m BattleMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("BattleMode(%d)", int(m))
}

func ParseMode(name string) (BattleMode, error) {
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown battle mode %q", name)
}

// Criterion is the stat an Optimise-mode team is ordered by.
type Criterion int

const (
	ByHealth Criterion = iota
	ByDefence
	ByPower
	BySpeed
	ByLevel
)

var criterionNames = map[Criterion]string{
	ByHealth:  "health",
	ByDefence: "defence",
	ByPower:   "power",
	BySpeed:   "speed",
	ByLevel:   "level",
}

func (c Criterion) String() string {
	if name, ok := criterionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Criterion(%d)", int(c))
}

func ParseCriterion(name string) (Criterion, error) {
	for crit, n := range criterionNames {
		if n == name {
			return crit, nil
		}
	}
	return 0, fmt.Errorf("unknown criterion %q", name)
}

func (c Criterion) valid() bool {
	_, ok := criterionNames[c]
	return ok
}

func (c Criterion) value(p *pokemon.Pokemon) float64 {
	switch c {
	case ByHealth:
		return p.Health
	case ByDefence:
		return p.Defence
	case ByPower:
		return p.Power
	case BySpeed:
		return p.Speed
	case ByLevel:
		return float64(p.Level)
	}
	return 0
}
