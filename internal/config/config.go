package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	PollInterval time.Duration
	PixelCount   int
	PanelRate    time.Duration
	RandSeed     int64 // 0 means seed from the clock
}

// FromEnv loads a .env file when present and reads the configuration,
// falling back to defaults suitable for the simulator.
func FromEnv() Config {
	_ = godotenv.Load()

	c := Config{}
	c.Port = getenv("PORT", "8080")
	c.PollInterval = getdur("POLL_INTERVAL", 5*time.Millisecond)
	c.PixelCount = getint("PIXEL_COUNT", 30)
	c.PanelRate = getdur("PANEL_RATE", 50*time.Millisecond)
	c.RandSeed = int64(getint("RAND_SEED", 0))
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
