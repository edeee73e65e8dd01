package config

import (
	"fmt"
	"os"
	"strconv"

	"tippy/internal/tip"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Addr        string
	Locale      string
	LogsEnabled bool
	Policy      tip.Policy
}

// Load reads configuration from the environment, applying defaults for
// anything unset. Malformed values are errors, not silent fallbacks.
func Load() (Config, error) {
	cfg := Config{
		Addr:   getEnv("ADDR", ":8080"),
		Locale: getEnv("TIPPY_LOCALE", "en-US"),
		Policy: tip.DefaultPolicy(),
	}

	var err error

	if cfg.LogsEnabled, err = boolEnv("OTEL_LOGS_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.Policy.DefaultTipPercent, err = floatEnv("TIPPY_DEFAULT_TIP_PERCENT", cfg.Policy.DefaultTipPercent); err != nil {
		return Config{}, err
	}
	if cfg.Policy.MinPeopleCount, err = intEnv("TIPPY_MIN_PEOPLE_COUNT", cfg.Policy.MinPeopleCount); err != nil {
		return Config{}, err
	}
	if cfg.Policy.MaxAmountChars, err = intEnv("TIPPY_MAX_AMOUNT_CHARS", cfg.Policy.MaxAmountChars); err != nil {
		return Config{}, err
	}
	if cfg.Policy.MaxPercentChars, err = intEnv("TIPPY_MAX_PERCENT_CHARS", cfg.Policy.MaxPercentChars); err != nil {
		return Config{}, err
	}

	slider, err := boolEnv("TIPPY_TIP_SLIDER", false)
	if err != nil {
		return Config{}, err
	}
	if slider {
		s := tip.DefaultSlider()
		cfg.Policy.Slider = &s
	}

	if cfg.Policy.DefaultTipPercent < 0 {
		return Config{}, fmt.Errorf("TIPPY_DEFAULT_TIP_PERCENT must not be negative, got %g", cfg.Policy.DefaultTipPercent)
	}
	if cfg.Policy.MinPeopleCount < 1 {
		return Config{}, fmt.Errorf("TIPPY_MIN_PEOPLE_COUNT must be at least 1, got %d", cfg.Policy.MinPeopleCount)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}
