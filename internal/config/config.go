package config

import (
	"fmt"
	"math"

	"github.com/spf13/viper"

	"github.com/MRuhan17/premier-league-simulator/internal/types"
)

type Config struct {
	// Environment
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Input / output
	TeamStatsPath string `mapstructure:"TEAM_STATS_PATH"`
	OutputDir     string `mapstructure:"OUTPUT_DIR"`
	WriteBatch    bool   `mapstructure:"WRITE_BATCH"`

	// Simulation
	NSims             int     `mapstructure:"N_SIMS"`
	HomeAdvantage     float64 `mapstructure:"HOME_ADVANTAGE"`
	SimulationWorkers int     `mapstructure:"SIMULATION_WORKERS"`

	// Reproducibility. 0 means seed from the clock.
	RandomSeed int64 `mapstructure:"RANDOM_SEED"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("TEAM_STATS_PATH", "data/team_stats.csv")
	viper.SetDefault("OUTPUT_DIR", "output")
	viper.SetDefault("WRITE_BATCH", true)
	viper.SetDefault("N_SIMS", 10000)
	viper.SetDefault("HOME_ADVANTAGE", 1.15)
	viper.SetDefault("SIMULATION_WORKERS", 0) // 0 = one worker per CPU
	viper.SetDefault("RANDOM_SEED", 0)

	viper.AutomaticEnv()

	// Read config file (optional - defaults and env vars carry the run otherwise)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

// Validate checks every simulation parameter before any season is run.
func (c *Config) Validate() error {
	if c.NSims <= 0 {
		return &types.InvalidConfigurationError{
			Param:  "N_SIMS",
			Reason: fmt.Sprintf("must be a positive integer, got %d", c.NSims),
		}
	}
	if math.IsNaN(c.HomeAdvantage) || math.IsInf(c.HomeAdvantage, 0) || c.HomeAdvantage <= 0 {
		return &types.InvalidConfigurationError{
			Param:  "HOME_ADVANTAGE",
			Reason: fmt.Sprintf("must be finite and > 0, got %v", c.HomeAdvantage),
		}
	}
	if c.SimulationWorkers < 0 {
		return &types.InvalidConfigurationError{
			Param:  "SIMULATION_WORKERS",
			Reason: fmt.Sprintf("must be >= 0, got %d", c.SimulationWorkers),
		}
	}
	if c.TeamStatsPath == "" {
		return &types.InvalidConfigurationError{
			Param:  "TEAM_STATS_PATH",
			Reason: "must not be empty",
		}
	}
	if c.OutputDir == "" {
		return &types.InvalidConfigurationError{
			Param:  "OUTPUT_DIR",
			Reason: "must not be empty",
		}
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
