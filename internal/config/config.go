package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr  string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"secret"`
	PricingAddr string `env:"PRICING_API_ADDRESS" envDefault:"https://api.coingecko.com"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// PricingConfig модель настроек работы с сервисом рыночных котировок
type PricingConfig struct {
	PricingAddr    string
	RequestTimeout time.Duration
	PollInterval   time.Duration
	// Максимальный возраст котировки: более старая считается протухшей,
	// вывод средств по ней отклоняется
	PriceTTL time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Pricing PricingConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		pricing  = pflag.StringP("pricing", "p", args.PricingAddr, "Pricing API base address.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Pricing: PricingConfig{
			PricingAddr:    *pricing,
			RequestTimeout: 5 * time.Second,
			PollInterval:   30 * time.Second,
			PriceTTL:       time.Minute,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Pricing: PricingConfig{
			PricingAddr:    "https://api.coingecko.com",
			RequestTimeout: 5 * time.Second,
			PollInterval:   30 * time.Second,
			PriceTTL:       time.Minute,
		},
	}
}
