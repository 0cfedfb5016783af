package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
)

// Config holds the application settings.
type Config struct {
	// Logging
	LogLevel string

	// Display
	CurrencySymbol string
	NumberFormat   string

	// Metrics
	DumpMetrics bool
}

// LoadEnvFile loads a .env file for local use. A missing file is not an
// error.
func LoadEnvFile(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "€"),
		NumberFormat:   getEnv("NUMBER_FORMAT", "#.###,##"),
		DumpMetrics:    getEnvBool("METRICS_DUMP", false),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if strings.TrimSpace(c.CurrencySymbol) == "" {
		errors = append(errors, "currency symbol cannot be empty")
	}

	if c.NumberFormat != "" {
		// humanize panics on formats it does not understand
		if err := checkNumberFormat(c.NumberFormat); err != nil {
			errors = append(errors, fmt.Sprintf("invalid number format '%s': %v", c.NumberFormat, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func checkNumberFormat(format string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	humanize.FormatFloat(format, 1234.5)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
