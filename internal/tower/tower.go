package tower

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"github.com/ryanlow/poketower/internal/adt"
	"github.com/ryanlow/poketower/internal/battle"
	"github.com/ryanlow/poketower/internal/team"
)

const (
	MinLives = 1
	MaxLives = 3
)

type challenger struct {
	trainer *team.Trainer
	lives   int
}

// Tower runs a gauntlet of Rotate-mode battles between one player and a
// rotating queue of enemy trainers. Every battle costs the loser a
// life; the gauntlet ends when the player or every enemy is out.
type Tower struct {
	player      *team.Trainer
	playerLives int

	enemies    *adt.CircularQueue[*challenger]
	enemyLives int
	defeated   int

	rng *rand.Rand
}

// Outcome reports one tower battle. Result is 1 when the player won
// and -1 otherwise.
type Outcome struct {
	Result      int
	Player      *team.Trainer
	Enemy       *team.Trainer
	PlayerLives int
	EnemyLives  int
}

func New(rng *rand.Rand) *Tower {
	return &Tower{rng: rng}
}

// SetPlayer registers the player's trainer and rolls their lives.
func (tw *Tower) SetPlayer(trainer *team.Trainer) {
	tw.player = trainer
	tw.playerLives = tw.rollLives()
	log.Info().Str("player", trainer.Name).Int("lives", tw.playerLives).Msg("player entered the tower")
}

// GenerateEnemies builds n enemy trainers with random teams assembled
// for Rotate battles.
func (tw *Tower) GenerateEnemies(n int) error {
	if n < 1 {
		return fmt.Errorf("tower needs at least one enemy, got %d", n)
	}
	tw.enemies = adt.NewCircularQueue[*challenger](n)
	tw.enemyLives = 0
	for i := 0; i < n; i++ {
		enemy := team.NewTrainer(fmt.Sprintf("Enemy %d", i+1))
		enemy.PickRandomTeam(tw.rng)
		if err := enemy.Team().Assemble(team.Rotate, team.ByHealth); err != nil {
			return err
		}
		lives := tw.rollLives()
		tw.enemies.Append(&challenger{trainer: enemy, lives: lives})
		tw.enemyLives += lives
	}
	log.Info().Int("enemies", n).Int("total_lives", tw.enemyLives).Msg("enemy trainers generated")
	return nil
}

// BattlesRemaining reports whether both sides still have lives.
func (tw *Tower) BattlesRemaining() bool {
	return tw.playerLives > 0 && tw.enemyLives > 0
}

// NextBattle plays the player against the next enemy in the queue. The
// loser drops a life, both teams regenerate, and the enemy rejoins the
// back of the queue while it has lives left.
func (tw *Tower) NextBattle() (Outcome, error) {
	if tw.player == nil {
		return Outcome{}, fmt.Errorf("no player trainer set")
	}
	if tw.enemies == nil || tw.enemies.IsEmpty() {
		return Outcome{}, fmt.Errorf("no enemy trainers remaining")
	}

	next, err := tw.enemies.Serve()
	if err != nil {
		return Outcome{}, err
	}
	log.Info().
		Str("player", tw.player.Name).Int("player_lives", tw.playerLives).
		Str("enemy", next.trainer.Name).Int("enemy_lives", next.lives).
		Msg("tower battle starting")

	winner, err := battle.New(tw.player, next.trainer, team.Rotate, team.ByHealth).Commence()
	if err != nil {
		return Outcome{}, err
	}

	result := -1
	if winner == tw.player {
		result = 1
		next.lives--
		tw.enemyLives--
		tw.defeated++
	} else {
		// Draws count against the player, same as a loss.
		tw.playerLives--
	}

	if err := tw.player.Team().Regenerate(team.Rotate, team.ByHealth); err != nil {
		return Outcome{}, err
	}
	if next.lives > 0 {
		if err := next.trainer.Team().Regenerate(team.Rotate, team.ByHealth); err != nil {
			return Outcome{}, err
		}
		tw.enemies.Append(next)
	}

	return Outcome{
		Result:      result,
		Player:      tw.player,
		Enemy:       next.trainer,
		PlayerLives: tw.playerLives,
		EnemyLives:  tw.enemyLives,
	}, nil
}

// EnemiesDefeated is the number of battles the player has won.
func (tw *Tower) EnemiesDefeated() int {
	return tw.defeated
}

func (tw *Tower) PlayerLives() int {
	return tw.playerLives
}

func (tw *Tower) EnemyLives() int {
	return tw.enemyLives
}

func (tw *Tower) rollLives() int {
	return MinLives + tw.rng.IntN(MaxLives-MinLives+1)
}
