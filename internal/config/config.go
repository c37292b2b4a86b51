package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/gridwars/battleship/internal/game/ai"
)

// Config holds all configuration for the application. Board size and
// fleet composition are compile-time constants, deliberately not
// configurable here.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	UI          UIConfig          `mapstructure:"ui"`
	Colors      ColorsConfig      `mapstructure:"colors"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window   WindowConfig     `mapstructure:"window"`
	Game     UIGameConfig     `mapstructure:"game"`
	Defaults UIDefaultsConfig `mapstructure:"defaults"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Title string `mapstructure:"title"`
	Scale int    `mapstructure:"scale"`
}

// UIGameConfig holds UI game settings
type UIGameConfig struct {
	CellSize     int `mapstructure:"cell_size"`
	StatusHeight int `mapstructure:"status_height"`
	GridSpacing  int `mapstructure:"grid_spacing"`
}

// UIDefaultsConfig holds default game settings for the UI
type UIDefaultsConfig struct {
	Difficulty string `mapstructure:"difficulty"`
}

// ColorsConfig holds all color configurations
type ColorsConfig struct {
	Background       [3]int `mapstructure:"background"`
	GridLines        [3]int `mapstructure:"grid_lines"`
	Ship             [3]int `mapstructure:"ship"`
	ShipDestroyed    [3]int `mapstructure:"ship_destroyed"`
	HitMarker        [4]int `mapstructure:"hit_marker"`
	MissMarker       [4]int `mapstructure:"miss_marker"`
	PlacementValid   [3]int `mapstructure:"placement_valid"`
	PlacementInvalid [3]int `mapstructure:"placement_invalid"`
	StatusBackground [3]int `mapstructure:"status_background"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	RevealShips    bool `mapstructure:"reveal_ships"`
	VerboseLogging bool `mapstructure:"verbose_logging"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("ui.window.title", "Battleship")
	v.SetDefault("ui.window.scale", 1)
	v.SetDefault("ui.game.cell_size", 30)
	v.SetDefault("ui.game.status_height", 50)
	v.SetDefault("ui.game.grid_spacing", 50)
	v.SetDefault("ui.defaults.difficulty", "easy")

	v.SetDefault("colors.background", []int{42, 136, 163})
	v.SetDefault("colors.grid_lines", []int{0, 0, 0})
	v.SetDefault("colors.ship", []int{64, 64, 64})
	v.SetDefault("colors.ship_destroyed", []int{219, 23, 23})
	v.SetDefault("colors.hit_marker", []int{219, 23, 23, 180})
	v.SetDefault("colors.miss_marker", []int{26, 26, 97, 180})
	v.SetDefault("colors.placement_valid", []int{0, 180, 0})
	v.SetDefault("colors.placement_invalid", []int{200, 0, 0})
	v.SetDefault("colors.status_background", []int{211, 211, 211})

	v.SetDefault("development.reveal_ships", false)
	v.SetDefault("development.verbose_logging", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BATTLESHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
		// Config file not found; use defaults
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	v.Unmarshal(cfg)
}

// WatchConfig enables hot-reloading of the config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.UI.Game.CellSize <= 0 {
		return fmt.Errorf("ui.game.cell_size must be positive")
	}
	if c.UI.Game.StatusHeight <= 0 {
		return fmt.Errorf("ui.game.status_height must be positive")
	}
	if c.UI.Game.GridSpacing < 0 {
		return fmt.Errorf("ui.game.grid_spacing must be non-negative")
	}
	if c.UI.Window.Scale <= 0 {
		return fmt.Errorf("ui.window.scale must be positive")
	}
	if _, err := ai.ParseDifficulty(c.UI.Defaults.Difficulty); err != nil {
		return fmt.Errorf("ui.defaults.difficulty: %w", err)
	}

	validateRGB := func(rgb []int, name string) error {
		for i, value := range rgb {
			if value < 0 || value > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}

	if err := validateRGB(c.Colors.Background[:], "colors.background"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.GridLines[:], "colors.grid_lines"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.Ship[:], "colors.ship"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.ShipDestroyed[:], "colors.ship_destroyed"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.HitMarker[:], "colors.hit_marker"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.MissMarker[:], "colors.miss_marker"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.PlacementValid[:], "colors.placement_valid"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.PlacementInvalid[:], "colors.placement_invalid"); err != nil {
		return err
	}
	return validateRGB(c.Colors.StatusBackground[:], "colors.status_background")
}
