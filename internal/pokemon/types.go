package pokemon

import "fmt"

// PokeType is one of the fifteen elemental types. The numeric order
// matches the rows and columns of the effectiveness chart.
type PokeType int

const (
	Fire PokeType = iota
	Water
	Grass
	Bug
	Dragon
	Electric
	Fighting
	Flying
	Ghost
	Ground
	Ice
	Normal
	Poison
	Psychic
	Rock
)

const NumTypes = 15

var typeNames = [NumTypes]string{
	"fire", "water", "grass", "bug", "dragon", "electric", "fighting",
	"flying", "ghost", "ground", "ice", "normal", "poison", "psychic", "rock",
}

func (t PokeType) String() string {
	if t < 0 || int(t) >= NumTypes {
		return fmt.Sprintf("PokeType(%d)", int(t))
	}
	return typeNames[t]
}

func ParseType(name string) (PokeType, error) {
	for i, n := range typeNames {
		if n == name {
			return PokeType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown poke type %q", name)
}

func (t *PokeType) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
