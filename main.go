package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ryanlow/poketower/internal/battle"
	"github.com/ryanlow/poketower/internal/config"
	"github.com/ryanlow/poketower/internal/pokemon"
	"github.com/ryanlow/poketower/internal/team"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Bad configuration:", err)
		os.Exit(1)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(cfg.ZerologLevel())

	rng := cfg.RNG()
	stdin := bufio.NewScanner(os.Stdin)

	trainer1 := setupTrainer(stdin, rng, "first")
	trainer2 := setupTrainer(stdin, rng, "second")

	mode, criterion := pickMode(stdin)

	if err := trainer1.Team().Assemble(mode, criterion); err != nil {
		fmt.Println("Could not assemble team:", err)
		os.Exit(1)
	}
	if err := trainer2.Team().Assemble(mode, criterion); err != nil {
		fmt.Println("Could not assemble team:", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s sends out:\n%s\n", trainer1.Name, trainer1.Team())
	fmt.Printf("%s sends out:\n%s\n", trainer2.Name, trainer2.Team())

	winner, err := battle.New(trainer1, trainer2, mode, criterion).Commence()
	if err != nil {
		fmt.Println("Battle failed:", err)
		os.Exit(1)
	}

	if winner == nil {
		fmt.Println("\nBoth teams are wiped out. It's a draw!")
		return
	}
	fmt.Printf("\n%s wins with %d pokemon left!\n%s", winner.Name, winner.Team().Len(), winner.Team())
}

func setupTrainer(stdin *bufio.Scanner, rng *rand.Rand, position string) *team.Trainer {
	fmt.Printf("Enter the %s trainer's name: ", position)
	name := readLine(stdin)
	if name == "" {
		name = strings.ToUpper(position[:1]) + position[1:]
	}
	trainer := team.NewTrainer(name)

	for {
		fmt.Print("Pick team randomly or manually? (r/m): ")
		switch readLine(stdin) {
		case "r", "R":
			trainer.PickRandomTeam(rng)
			fmt.Printf("%s's team:\n%s", name, trainer.Team())
			return trainer
		case "m", "M":
			if pickManually(stdin, trainer) {
				return trainer
			}
		default:
			fmt.Println("Please answer r or m.")
		}
	}
}

func pickManually(stdin *bufio.Scanner, trainer *team.Trainer) bool {
	fmt.Println("Available pokemon:", strings.Join(pokemon.Pokedex.Names(), ", "))
	fmt.Printf("Enter up to %d names separated by commas: ", team.TeamLimit)
	names := strings.Split(readLine(stdin), ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	if err := trainer.PickTeam(names...); err != nil {
		fmt.Println("Invalid team:", err)
		return false
	}
	fmt.Printf("%s's team:\n%s", trainer.Name, trainer.Team())
	return true
}

func pickMode(stdin *bufio.Scanner) (team.BattleMode, team.Criterion) {
	for {
		fmt.Print("Battle mode (set/rotate/optimise): ")
		mode, err := team.ParseMode(readLine(stdin))
		if err != nil {
			fmt.Println(err)
			continue
		}
		if mode != team.Optimise {
			return mode, team.ByHealth
		}
		for {
			fmt.Print("Sort criterion (health/defence/power/speed/level): ")
			criterion, err := team.ParseCriterion(readLine(stdin))
			if err != nil {
				fmt.Println(err)
				continue
			}
			return mode, criterion
		}
	}
}

func readLine(stdin *bufio.Scanner) string {
	if !stdin.Scan() {
		fmt.Println("\nNo more input, quitting.")
		os.Exit(1)
	}
	return strings.TrimSpace(stdin.Text())
}
