// Package config loads node configuration from the environment,
// optionally seeded from a .env file, generalizing the teacher's
// wallet_server/main.go -port/-gateway flag pair into environment-first
// configuration with CLI overrides, in the style
// DanDo385-go-edu/minis/50-mini-service-all-features/internal/config
// uses for its service.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything cmd/node needs to start a node and its HTTP façade.
type Config struct {
	Port         uint16
	Difficulty   int
	MinerAddress string
}

const (
	defaultPort       = 5000
	defaultDifficulty = 3
)

// Load reads PORT, DIFFICULTY and MINER_ADDRESS from the environment.
// If a .env file is present in the working directory it is loaded
// first (missing files are not an error — godotenv.Load's error is
// ignored exactly as the cache-miss path of a cold boot).
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:       defaultPort,
		Difficulty: defaultDifficulty,
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.ParseUint(v, 10, 16); err == nil {
			cfg.Port = uint16(p)
		}
	}
	if v := os.Getenv("DIFFICULTY"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			cfg.Difficulty = d
		}
	}
	cfg.MinerAddress = os.Getenv("MINER_ADDRESS")

	return cfg
}
