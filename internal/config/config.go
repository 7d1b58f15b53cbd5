package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	LogLevel string

	// Premium members get free shipping.
	Premium bool
	// ProductFile points at a product YAML file; empty uses the bundled socks.
	ProductFile string
	// AccumulateReviewErrors keeps validation messages across submit attempts.
	AccumulateReviewErrors bool
}

// Load reads .env files (when present) into the environment and then builds
// the config from it. Variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	return Config{
		HTTPAddr:               env("HTTP_ADDR", ":8080"),
		LogLevel:               env("LOG_LEVEL", "info"),
		Premium:                envBool("PREMIUM_MEMBER", true),
		ProductFile:            env("PRODUCT_FILE", ""),
		AccumulateReviewErrors: envBool("REVIEW_ERRORS_ACCUMULATE", false),
	}, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	switch strings.ToLower(v) {
	case "yes":
		return true
	case "no":
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
