// Package config loads the gridpath command's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Search modes accepted in GRIDPATH_MODE.
const (
	ModeReference = "reference"
	ModeCanonical = "canonical"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid environment value")

// Config holds the command's configuration values.
type Config struct {
	Rows    int     // Grid rows
	Columns int     // Grid columns
	Density float64 // Probability that a cell is an obstacle
	Seed    int64   // RNG seed; 0 picks a time-based seed
	Mode    string  // ModeReference or ModeCanonical
	TUI     bool    // Draw with tcell instead of printing text
}

// Load reads an optional .env file from the given paths (default ".env")
// and then the GRIDPATH_* environment variables. Unset variables keep their
// defaults; malformed ones return ErrInvalidValue.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[config] [INFO] .env file not found or could not be loaded: %v", err)
	}

	var (
		cfg Config
		err error
	)
	if cfg.Rows, err = getEnvAsInt("GRIDPATH_ROWS", 20); err != nil {
		return Config{}, err
	}
	if cfg.Columns, err = getEnvAsInt("GRIDPATH_COLUMNS", 40); err != nil {
		return Config{}, err
	}
	if cfg.Density, err = getEnvAsFloat("GRIDPATH_DENSITY", 0.3); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsInt64("GRIDPATH_SEED", 0); err != nil {
		return Config{}, err
	}
	if cfg.TUI, err = getEnvAsBool("GRIDPATH_TUI", false); err != nil {
		return Config{}, err
	}
	cfg.Mode = getEnvWithDefault("GRIDPATH_MODE", ModeReference)

	return cfg, cfg.Validate()
}

// Validate checks ranges and the mode name.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: grid must be at least 1×1, got %d×%d", ErrInvalidValue, c.Rows, c.Columns)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %g outside [0,1]", ErrInvalidValue, c.Density)
	}
	if c.Mode != ModeReference && c.Mode != ModeCanonical {
		return fmt.Errorf("%w: mode %q, want %q or %q", ErrInvalidValue, c.Mode, ModeReference, ModeCanonical)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidValue, key, err)
	}
	return f, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidValue, key, err)
	}
	return b, nil
}
