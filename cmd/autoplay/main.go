// Headless AI-vs-AI simulator. Both fleets are auto-placed and a
// strategy plays the human side, which is useful for eyeballing AI
// behaviour and for reproducing games from a seed.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridwars/battleship/internal/game"
	"github.com/gridwars/battleship/internal/game/ai"
	"github.com/gridwars/battleship/internal/game/events"
	"github.com/gridwars/battleship/internal/game/events/subscribers"
	"github.com/gridwars/battleship/internal/game/states"
)

func main() {
	seed := flag.Int64("seed", 0, "RNG seed, 0 means time-based")
	difficultyFlag := flag.String("difficulty", "hard", "computer difficulty: easy, medium or hard")
	playerFlag := flag.String("player", "hard", "difficulty of the strategy playing the human side")
	verbose := flag.Bool("verbose", false, "log every event")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	difficulty, err := ai.ParseDifficulty(*difficultyFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Bad difficulty")
	}
	playerDifficulty, err := ai.ParseDifficulty(*playerFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("Bad player difficulty")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	logger.Info().
		Int64("seed", *seed).
		Str("difficulty", difficulty.String()).
		Str("player", playerDifficulty.String()).
		Msg("Starting simulation")

	bus := events.NewEventBus()
	if *verbose {
		bus.Subscribe(subscribers.NewLoggerSubscriber("sim-logger", logger, zerolog.InfoLevel))
	}

	engine := game.NewEngine(game.Config{
		Difficulty: difficulty,
		Rng:        rng,
		Logger:     logger,
		Bus:        bus,
	})
	engine.AutoPlacePlayer()

	// The human side is driven by a strategy of its own, aimed at the
	// computer's board.
	player := ai.New(playerDifficulty, engine.ComputerBoard(), rng)

	turns := 0
	for engine.Phase() == states.PhaseAttacking {
		turns++
		for _, result := range engine.Attack(player.SelectMove()) {
			logger.Info().Int("turn", turns).Msg(result.String())
		}
	}

	fmt.Printf("\nComputer's board:\n%s\n", game.RenderBoard(engine.ComputerBoard(), true))
	fmt.Printf("Player's board:\n%s\n", game.RenderBoard(engine.PlayerBoard(), true))

	if winner, ok := engine.Winner(); ok {
		logger.Info().Int("turns", turns).Str("winner", winner.String()).Msg("Game over")
	}
}
