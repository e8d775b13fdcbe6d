package battle

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ryanlow/poketower/internal/pokemon"
	"github.com/ryanlow/poketower/internal/team"
)

// Battle resolves a fight between two trainers' assembled teams. Given
// the same teams in the same order the outcome is fully deterministic.
type Battle struct {
	ID        uuid.UUID
	trainer1  *team.Trainer
	trainer2  *team.Trainer
	mode      team.BattleMode
	criterion team.Criterion
}

func New(t1, t2 *team.Trainer, mode team.BattleMode, criterion team.Criterion) *Battle {
	return &Battle{
		ID:        uuid.New(),
		trainer1:  t1,
		trainer2:  t2,
		mode:      mode,
		criterion: criterion,
	}
}

// Commence runs the battle to completion and returns the winning
// trainer, or nil when both teams are wiped out together.
func (b *Battle) Commence() (*team.Trainer, error) {
	if b.trainer1.Team().Len() == 0 || b.trainer2.Team().Len() == 0 {
		return nil, fmt.Errorf("both trainers must have teams to commence battle")
	}

	log.Info().
		Stringer("battle", b.ID).
		Str("trainer1", b.trainer1.Name).
		Str("trainer2", b.trainer2.Name).
		Stringer("mode", b.mode).
		Msg("battle commencing")

	var err error
	switch b.mode {
	case team.Set:
		err = b.setBattle()
	case team.Rotate:
		err = b.rotateBattle()
	case team.Optimise:
		err = b.optimiseBattle()
	default:
		err = fmt.Errorf("unknown battle mode %v", b.mode)
	}
	if err != nil {
		return nil, err
	}

	winner := b.result()
	if winner == nil {
		log.Info().Stringer("battle", b.ID).Msg("battle drawn, both teams wiped out")
	} else {
		log.Info().
			Stringer("battle", b.ID).
			Str("winner", winner.Name).
			Int("remaining", winner.Team().Len()).
			Msg("battle won")
	}
	return winner, nil
}

// setBattle keeps each front Pokemon out until it faints.
func (b *Battle) setBattle() error {
	round := 0
	for b.trainer1.Team().Len() > 0 && b.trainer2.Team().Len() > 0 {
		round++
		if _, _, err := b.fightFront(round); err != nil {
			return err
		}
	}
	return nil
}

// rotateBattle cycles survivors to the back of their team after every
// round.
func (b *Battle) rotateBattle() error {
	round := 0
	for b.trainer1.Team().Len() > 0 && b.trainer2.Team().Len() > 0 {
		round++
		p1, p2, err := b.fightFront(round)
		if err != nil {
			return err
		}
		if p1.IsAlive() {
			if err := b.trainer1.Team().RotateFront(); err != nil {
				return err
			}
		}
		if p2.IsAlive() {
			if err := b.trainer2.Team().RotateFront(); err != nil {
				return err
			}
		}
	}
	return nil
}

// optimiseBattle re-sorts both teams on the criterion after every
// round, since the clash changes the stats being sorted on.
func (b *Battle) optimiseBattle() error {
	round := 0
	for b.trainer1.Team().Len() > 0 && b.trainer2.Team().Len() > 0 {
		round++
		if _, _, err := b.fightFront(round); err != nil {
			return err
		}
		if err := b.trainer1.Team().Assign(b.criterion); err != nil {
			return err
		}
		if err := b.trainer2.Team().Assign(b.criterion); err != nil {
			return err
		}
	}
	return nil
}

// fightFront sends the two front Pokemon into a clash.
func (b *Battle) fightFront(round int) (*pokemon.Pokemon, *pokemon.Pokemon, error) {
	p1, err := b.trainer1.Team().Front()
	if err != nil {
		return nil, nil, err
	}
	p2, err := b.trainer2.Team().Front()
	if err != nil {
		return nil, nil, err
	}
	log.Debug().
		Int("round", round).
		Str("pokemon1", p1.String()).
		Str("pokemon2", p2.String()).
		Msg("round start")
	b.clash(p1, p2)
	return p1, p2, nil
}

// clash resolves one round. Each side scouts the other's Pokemon, the
// faster one attacks first (a speed tie means both attacks land
// simultaneously), and if both are still standing each takes a chip
// hit of one health.
func (b *Battle) clash(p1, p2 *pokemon.Pokemon) {
	b.trainer1.RegisterPokemon(p2)
	b.trainer2.RegisterPokemon(p1)

	if p1.Speed != p2.Speed {
		first, second := p1, p2
		firstTrainer, secondTrainer := b.trainer1, b.trainer2
		if p2.Speed > p1.Speed {
			first, second = p2, p1
			firstTrainer, secondTrainer = b.trainer2, b.trainer1
		}
		b.attackAndDefend(first, second, firstTrainer, secondTrainer)
		if second.IsAlive() {
			b.attackAndDefend(second, first, secondTrainer, firstTrainer)
		}
	} else {
		// Simultaneous: the counterattack lands even if the attacker
		// just fainted.
		b.attackAndDefend(p1, p2, b.trainer1, b.trainer2)
		b.attackAndDefend(p2, p1, b.trainer2, b.trainer1)
	}

	if p1.IsAlive() && p2.IsAlive() {
		b.chipBoth(p1, p2)
	}
}

// attackAndDefend applies one attack, scaled by the ratio of the two
// trainers' pokedex completion.
func (b *Battle) attackAndDefend(attacker, defender *pokemon.Pokemon, attacking, defending *team.Trainer) {
	damage := attacker.Attack(defender)
	damage *= attacking.PokedexCompletion() / defending.PokedexCompletion()
	defender.Defend(math.Ceil(damage))
	log.Debug().
		Str("attacker", attacker.Name).
		Str("defender", defender.Name).
		Float64("damage", math.Ceil(damage)).
		Float64("health", defender.Health).
		Msg("attack landed")
	if !defender.IsAlive() {
		b.killed(attacker, defender, defending, false)
	}
}

// chipBoth deducts one health from both survivors of a full clash.
// Every species' defence exceeds 2, so Defend halves the hit to 1.
func (b *Battle) chipBoth(p1, p2 *pokemon.Pokemon) {
	p1.Defend(2)
	p2.Defend(2)

	switch {
	case !p1.IsAlive() && !p2.IsAlive():
		b.killed(p1, p2, b.trainer2, true)
		b.killed(p2, p1, b.trainer1, true)
	case !p1.IsAlive():
		b.killed(p2, p1, b.trainer1, false)
	case !p2.IsAlive():
		b.killed(p1, p2, b.trainer2, false)
	}
}

// killed removes the fainted Pokemon from its team and levels up the
// victor, unless both fainted together.
func (b *Battle) killed(victor, fainted *pokemon.Pokemon, faintedTrainer *team.Trainer, together bool) {
	log.Info().Str("pokemon", fainted.Name).Str("trainer", faintedTrainer.Name).Msg("pokemon fainted")
	faintedTrainer.Team().RemoveFront()
	if !together {
		victor.LevelUp()
	}
}

func (b *Battle) result() *team.Trainer {
	switch {
	case b.trainer1.Team().Len() == 0 && b.trainer2.Team().Len() == 0:
		return nil
	case b.trainer1.Team().Len() == 0:
		return b.trainer2
	default:
		return b.trainer1
	}
}
