package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

type Config struct {
	AppEnv   string
	Port     int
	LogLevel string

	Locale   language.Tag
	Currency currency.Unit

	// empty keeps placed orders in memory
	DatabaseURL string
}

// Load reads an optional .env file from the working directory and then the
// process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	return FromEnv()
}

func FromEnv() (Config, error) {
	port, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return Config{}, err
	}

	locale, err := language.Parse(getEnv("CART_LOCALE", "fr"))
	if err != nil {
		return Config{}, fmt.Errorf("CART_LOCALE is not valid: %w", err)
	}

	unit, err := currency.ParseISO(getEnv("CART_CURRENCY", "EUR"))
	if err != nil {
		return Config{}, fmt.Errorf("CART_CURRENCY is not valid: %w", err)
	}

	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		Port:        port,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Locale:      locale,
		Currency:    unit,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s[%s] is not a number: %w", key, v, err)
	}
	return n, nil
}
