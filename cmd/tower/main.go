package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ryanlow/poketower/internal/config"
	"github.com/ryanlow/poketower/internal/team"
	"github.com/ryanlow/poketower/internal/tower"
)

func main() {
	name := flag.String("name", "Ash", "Player trainer name")
	enemies := flag.Int("enemies", 0, "Number of enemy trainers (default from environment)")
	seed := flag.Uint64("seed", 0, "Random seed (0 uses the environment or a fresh seed)")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	if *enemies > 0 {
		cfg.Enemies = *enemies
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(cfg.ZerologLevel())

	rng := cfg.RNG()

	player := team.NewTrainer(*name)
	player.PickRandomTeam(rng)
	if err := player.Team().Assemble(team.Rotate, team.ByHealth); err != nil {
		log.Fatal().Err(err).Msg("could not assemble player team")
	}
	fmt.Printf("%s enters the tower with:\n%s\n", player.Name, player.Team())

	tw := tower.New(rng)
	tw.SetPlayer(player)
	if err := tw.GenerateEnemies(cfg.Enemies); err != nil {
		log.Fatal().Err(err).Msg("could not generate enemy trainers")
	}

	for tw.BattlesRemaining() {
		outcome, err := tw.NextBattle()
		if err != nil {
			log.Fatal().Err(err).Msg("tower battle failed")
		}
		if outcome.Result == 1 {
			fmt.Printf("%s defeated %s (lives: you %d, enemies %d)\n",
				outcome.Player.Name, outcome.Enemy.Name, outcome.PlayerLives, outcome.EnemyLives)
		} else {
			fmt.Printf("%s lost to %s (lives: you %d, enemies %d)\n",
				outcome.Player.Name, outcome.Enemy.Name, outcome.PlayerLives, outcome.EnemyLives)
		}
	}

	fmt.Printf("\nTower over. %s defeated %d enemy trainers.\n", player.Name, tw.EnemiesDefeated())
	if tw.PlayerLives() > 0 {
		fmt.Println("The tower is cleared!")
	} else {
		fmt.Println("Out of lives, better luck next time.")
	}
}
