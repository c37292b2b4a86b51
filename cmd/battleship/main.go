package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/gridwars/battleship/internal/config"
	"github.com/gridwars/battleship/internal/game"
	"github.com/gridwars/battleship/internal/game/ai"
	"github.com/gridwars/battleship/internal/game/core"
	"github.com/gridwars/battleship/internal/game/events"
	"github.com/gridwars/battleship/internal/game/events/subscribers"
	"github.com/gridwars/battleship/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	difficultyFlag := flag.String("difficulty", "", "AI difficulty: easy, medium or hard (overrides config)")
	seed := flag.Int64("seed", 0, "RNG seed, 0 means time-based")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	difficultyName := cfg.UI.Defaults.Difficulty
	if *difficultyFlag != "" {
		difficultyName = *difficultyFlag
	}
	difficulty, err := ai.ParseDifficulty(difficultyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	logger.Info().Int64("seed", *seed).Str("difficulty", difficulty.String()).Msg("Starting battleship")

	bus := events.NewEventBus()
	if cfg.Development.VerboseLogging {
		bus.Subscribe(subscribers.NewLoggerSubscriber("game-logger", logger, zerolog.DebugLevel))
	}

	engine := game.NewEngine(game.Config{
		Difficulty: difficulty,
		Rng:        rng,
		Logger:     logger,
		Bus:        bus,
	})

	uiGame := ui.New(engine, logger)

	scale := cfg.UI.Window.Scale
	ebiten.SetWindowSize(
		core.GridWidth*cfg.UI.Game.CellSize*scale,
		(core.GridHeight*cfg.UI.Game.CellSize*2+cfg.UI.Game.StatusHeight)*scale,
	)
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil && err != ebiten.Termination {
		logger.Fatal().Err(err).Msg("UI loop failed")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
