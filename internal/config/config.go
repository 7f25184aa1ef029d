package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the tunable scheduling policy. The numeric defaults are a
// starting policy, not a contract; everything here may be overridden from the
// config file or environment.
type Config struct {
	Mixer     MixerConfig     `mapstructure:"mixer"`
	Mastery   MasteryConfig   `mapstructure:"mastery"`
	Placement PlacementConfig `mapstructure:"placement"`
	XP        XPConfig        `mapstructure:"xp"`
}

// MixerConfig holds the session mixer time-split between buckets.
// Ratios are fractions of the session budget and must sum to 1.
type MixerConfig struct {
	CurrentRatio float64 `mapstructure:"current_ratio" validate:"gte=0,lte=1"`
	ReviewRatio  float64 `mapstructure:"review_ratio" validate:"gte=0,lte=1"`
	OlderRatio   float64 `mapstructure:"older_ratio" validate:"gte=0,lte=1"`
}

// MasteryConfig holds the spaced repetition parameters.
type MasteryConfig struct {
	StrengthCap int `mapstructure:"strength_cap" validate:"gte=1"`
	// IntervalsDays maps strength bucket -> review interval in days.
	// Must be monotonically non-decreasing.
	IntervalsDays []int `mapstructure:"intervals_days" validate:"min=1,intervals"`
}

// PlacementConfig holds the placement level bands and session length policy.
type PlacementConfig struct {
	// Level bands as fractions of the maximum attainable experience score.
	// A score at or below BeginnerBand places beginner; at or below
	// IntermediateBand places intermediate; above places advanced.
	BeginnerBand     float64 `mapstructure:"beginner_band" validate:"gt=0,lte=1"`
	IntermediateBand float64 `mapstructure:"intermediate_band" validate:"gt=0,lte=1,gtefield=BeginnerBand"`

	DefaultSessionMinutes int `mapstructure:"default_session_minutes" validate:"gte=1"`
}

// XPConfig holds the session XP award table.
type XPConfig struct {
	CorrectBase    int     `mapstructure:"correct_base" validate:"gte=0"`
	PerfectBonus   int     `mapstructure:"perfect_bonus" validate:"gte=0"`
	GreatBonus     int     `mapstructure:"great_bonus" validate:"gte=0"`
	GreatThreshold float64 `mapstructure:"great_threshold" validate:"gt=0,lte=1"`
}

// Default returns the built-in policy without reading any config file.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults always validate; a failure here is a programming error.
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return cfg
}

// Load reads configuration from the given file (or the default search path
// when empty), applies defaults, and validates the result.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/pourly")
	}

	v.SetDefault("mixer.current_ratio", 0.6)
	v.SetDefault("mixer.review_ratio", 0.3)
	v.SetDefault("mixer.older_ratio", 0.1)
	v.SetDefault("mastery.strength_cap", 5)
	v.SetDefault("mastery.intervals_days", []int{0, 1, 3, 7, 16, 35})
	v.SetDefault("placement.beginner_band", 0.34)
	v.SetDefault("placement.intermediate_band", 0.67)
	v.SetDefault("placement.default_session_minutes", 5)
	v.SetDefault("xp.correct_base", 10)
	v.SetDefault("xp.perfect_bonus", 25)
	v.SetDefault("xp.great_bonus", 10)
	v.SetDefault("xp.great_threshold", 0.8)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit file that can't be read is an error; the default
			// search path is allowed to come up empty.
			if configFile != "" {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
