package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/catacombs/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed     = "CATACOMBS_SEED"
	EnvWidth    = "CATACOMBS_WIDTH"
	EnvHeight   = "CATACOMBS_HEIGHT"
	EnvMaxRooms = "CATACOMBS_MAX_ROOMS"
	EnvMinRoom  = "CATACOMBS_MIN_ROOM"
	EnvMaxRoom  = "CATACOMBS_MAX_ROOM"
	EnvFOVRange = "CATACOMBS_FOV_RANGE"
	EnvLogLevel = "CATACOMBS_LOG_LEVEL"
	EnvLogFile  = "CATACOMBS_LOG_FILE"
)

// ErrInvalidConfig is returned when an environment value cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Gen controls the level layout.
	Gen world.GenConfig

	// FOVRange limits how far the player sees, in tiles. 0 means unlimited.
	FOVRange int

	LogLevel string
	LogFile  string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{Gen: world.DefaultGenConfig()}
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv builds a Config from lookup, starting from DefaultConfig.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if err := parseInt(lookup, EnvSeed, &cfg.Seed); err != nil {
		return cfg, err
	}
	if err := parseUint32(lookup, EnvWidth, &cfg.Gen.Width); err != nil {
		return cfg, err
	}
	if err := parseUint32(lookup, EnvHeight, &cfg.Gen.Height); err != nil {
		return cfg, err
	}
	if err := parseUint32(lookup, EnvMinRoom, &cfg.Gen.MinRoomSize); err != nil {
		return cfg, err
	}
	if err := parseUint32(lookup, EnvMaxRoom, &cfg.Gen.MaxRoomSize); err != nil {
		return cfg, err
	}

	maxRooms := int64(cfg.Gen.MaxRooms)
	if err := parseInt(lookup, EnvMaxRooms, &maxRooms); err != nil {
		return cfg, err
	}
	cfg.Gen.MaxRooms = int(maxRooms)

	var fovRange int64
	if err := parseInt(lookup, EnvFOVRange, &fovRange); err != nil {
		return cfg, err
	}
	if fovRange < 0 {
		return cfg, fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, EnvFOVRange)
	}
	cfg.FOVRange = int(fovRange)

	cfg.LogLevel, _ = lookup(EnvLogLevel)
	cfg.LogFile, _ = lookup(EnvLogFile)

	if err := cfg.Gen.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseInt(lookup func(string) (string, bool), key string, dst *int64) error {
	raw, ok := lookup(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, raw, err)
	}
	*dst = v
	return nil
}

func parseUint32(lookup func(string) (string, bool), key string, dst *uint32) error {
	raw, ok := lookup(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, raw, err)
	}
	*dst = uint32(v)
	return nil
}
