package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	BakeryAddress    string
	GeocoderAddress  string
	GeocoderAPIKey   string
	ShippingAddress  string
	RequestTimeout   time.Duration
	PaymentCountdown time.Duration
	PaymentPoll      time.Duration
	PaymentBatch     int
	WorkerPoolSize   int
	ShutdownTimeout  time.Duration
}

const (
	defaultRunAddress       = ":8080"
	defaultRequestTimeout   = 10 * time.Second
	defaultPaymentCountdown = 15 * time.Minute
	defaultPaymentPoll      = 30 * time.Second
	defaultPaymentBatch     = 32
	defaultWorkerPoolSize   = 4
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from a .env file (when present), environment
// variables, and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		BakeryAddress:    getString(lookup, "BAKERY_API_ADDRESS", ""),
		GeocoderAddress:  getString(lookup, "GEOCODER_ADDRESS", ""),
		GeocoderAPIKey:   getString(lookup, "GEOCODER_API_KEY", ""),
		ShippingAddress:  getString(lookup, "SHIPPING_API_ADDRESS", ""),
		RequestTimeout:   getDuration(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout),
		PaymentCountdown: getDuration(lookup, "PAYMENT_COUNTDOWN", defaultPaymentCountdown),
		PaymentPoll:      getDuration(lookup, "PAYMENT_POLL_INTERVAL", defaultPaymentPoll),
		PaymentBatch:     getInt(lookup, "PAYMENT_BATCH_SIZE", defaultPaymentBatch),
		WorkerPoolSize:   getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("cakeshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		requestTimeoutStr  = cfg.RequestTimeout.String()
		countdownStr       = cfg.PaymentCountdown.String()
		pollIntervalStr    = cfg.PaymentPoll.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.BakeryAddress, "b", cfg.BakeryAddress, "Bakery platform base URL")
	fs.StringVar(&cfg.GeocoderAddress, "g", cfg.GeocoderAddress, "Geocoding service base URL")
	fs.StringVar(&cfg.GeocoderAPIKey, "geocoder-key", cfg.GeocoderAPIKey, "Geocoding service API key")
	fs.StringVar(&cfg.ShippingAddress, "s", cfg.ShippingAddress, "Shipping service base URL")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Outbound request timeout")
	fs.StringVar(&countdownStr, "payment-countdown", countdownStr, "QR payment countdown before cancellation")
	fs.StringVar(&pollIntervalStr, "payment-poll", pollIntervalStr, "Interval between pending payment sweeps")
	fs.IntVar(&cfg.PaymentBatch, "payment-batch", cfg.PaymentBatch, "Maximum pending payments per sweep")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent payment workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.PaymentCountdown, err = time.ParseDuration(countdownStr); err != nil {
		return nil, fmt.Errorf("invalid payment countdown: %w", err)
	}

	if cfg.PaymentPoll, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid payment poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.PaymentCountdown <= 0 {
		cfg.PaymentCountdown = defaultPaymentCountdown
	}

	if cfg.PaymentPoll <= 0 {
		cfg.PaymentPoll = defaultPaymentPoll
	}

	if cfg.PaymentBatch <= 0 {
		cfg.PaymentBatch = defaultPaymentBatch
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.BakeryAddress == "" {
		return nil, fmt.Errorf("bakery platform address must be provided")
	}

	if cfg.GeocoderAddress == "" {
		return nil, fmt.Errorf("geocoder address must be provided")
	}

	if cfg.ShippingAddress == "" {
		return nil, fmt.Errorf("shipping service address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
