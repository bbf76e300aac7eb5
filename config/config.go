// Package config parses command line flags and the optional tuning file.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultRetries          = 5
	defaultRetryCooldown    = 60 * time.Second
	defaultThrottleEvery    = 5
	defaultThrottleCooldown = 60 * time.Second
)

// SupportedCurrencies is the closed set of fiat currencies a wallet can
// be valued in.
var SupportedCurrencies = []string{"usd", "aud"}

// Config holds everything one analyzer run needs.
type Config struct {
	// File path to the wallet transactions JSON file.
	File string
	// Currency fiat currency code, one of SupportedCurrencies.
	Currency string
	// Out output directory root.
	Out string
	// ProviderURL overrides the market data API base URL (tests).
	ProviderURL string

	// Retries max attempts for one historical price lookup.
	Retries int
	// RetryCooldown pause between attempts after a rate limit hit.
	RetryCooldown time.Duration
	// ThrottleEvery proactive pause after this many transactions.
	ThrottleEvery int
	// ThrottleCooldown duration of the proactive pause.
	ThrottleCooldown time.Duration
}

type tuningTmp struct {
	Retries             int    `yaml:"retries,omitempty"`
	RetryCooldownStr    string `yaml:"retry_cooldown,omitempty"`
	ThrottleEvery       int    `yaml:"throttle_every,omitempty"`
	ThrottleCooldownStr string `yaml:"throttle_cooldown,omitempty"`
}

// Get parses flags and the optional YAML tuning file. File and Currency
// may come back empty; the caller decides whether to prompt for them.
func Get() (Config, error) {
	fileFlag := flag.String("file", "", "path to the wallet transactions JSON file")
	currencyFlag := flag.String("currency", "", "fiat currency to value the wallet in, one of: "+strings.Join(SupportedCurrencies, ", "))
	outFlag := flag.String("out", ".", "output directory root")
	tuningFlag := flag.String("config", "", "path to yaml file with retry/throttle tuning")
	flag.Parse()

	cfg := Config{
		File:             *fileFlag,
		Currency:         strings.ToLower(*currencyFlag),
		Out:              *outFlag,
		Retries:          defaultRetries,
		RetryCooldown:    defaultRetryCooldown,
		ThrottleEvery:    defaultThrottleEvery,
		ThrottleCooldown: defaultThrottleCooldown,
	}

	if *tuningFlag != "" {
		if err := applyTuning(&cfg, *tuningFlag); err != nil {
			return Config{}, err
		}
	}

	if cfg.Currency != "" && !CurrencySupported(cfg.Currency) {
		return Config{}, fmt.Errorf("unsupported --currency=%s, expected one of: %s",
			cfg.Currency, strings.Join(SupportedCurrencies, ", "))
	}

	return cfg, nil
}

// CurrencySupported reports whether code is in the supported set.
func CurrencySupported(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

func applyTuning(cfg *Config, path string) error {
	f, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning config %s: %w", path, err)
	}

	var tmp tuningTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return fmt.Errorf("failed to parse tuning config %s: %w", path, err)
	}

	if tmp.Retries != 0 {
		if tmp.Retries < 1 {
			return fmt.Errorf("incorrect 'retries' param in yaml config: %d", tmp.Retries)
		}
		cfg.Retries = tmp.Retries
	}
	if tmp.RetryCooldownStr != "" {
		d, err := time.ParseDuration(tmp.RetryCooldownStr)
		if err != nil {
			return fmt.Errorf("incorrect 'retry_cooldown' param in yaml config: %w", err)
		}
		cfg.RetryCooldown = d
	}
	if tmp.ThrottleEvery != 0 {
		cfg.ThrottleEvery = tmp.ThrottleEvery
	}
	if tmp.ThrottleCooldownStr != "" {
		d, err := time.ParseDuration(tmp.ThrottleCooldownStr)
		if err != nil {
			return fmt.Errorf("incorrect 'throttle_cooldown' param in yaml config: %w", err)
		}
		cfg.ThrottleCooldown = d
	}

	return nil
}
