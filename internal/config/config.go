// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Application environments recognised by [App.Env].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Notifier transports recognised by [Notifier.Transport].
const (
	TransportLog  = "log"
	TransportSMTP = "smtp"
	TransportHTTP = "http"
	TransportAMQP = "amqp"
)

// InsecureDefaultSignKey is used to sign session tokens when no key is
// configured outside production. A warning is logged at startup.
const InsecureDefaultSignKey = "insecure-default-signing-key"

// StructuredConfig is the top-level configuration container for the
// go-note-keeper server. It aggregates all sub-configurations and is
// populated by merging defaults with values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the environment,
	// token parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Notifier holds the outbound mail transport settings.
	Notifier Notifier `envPrefix:"NOTIFIER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control the
// runtime environment, credentials lifecycle, and versioning.
type App struct {
	// Env is the runtime environment, "development" or "production".
	// Env: APP_ENV
	Env string `env:"ENV"`

	// LogLevel is the minimal zerolog level (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Required in production.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "168h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// OTPDuration specifies how long a one-time code stays redeemable.
	// Env: APP_OTP_DURATION
	OTPDuration time.Duration `env:"OTP_DURATION"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsProduction reports whether the application runs in production.
func (a App) IsProduction() bool {
	return a.Env == EnvProduction
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadHeaderTimeout bounds the time spent reading request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// AllowedOrigins lists the CORS origins, comma separated in env.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL Data Source Name (connection string).
	// An empty DSN selects the in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// ConnectTimeout bounds the initial ping of the database.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// IdleTimeout is the maximum time a pooled connection may stay idle.
	// Env: STORAGE_DB_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// MaxOpenConns caps the pool size.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Notifier selects and configures the outbound mail transport.
type Notifier struct {
	// Transport is one of "log", "smtp", "http", "amqp".
	// Env: NOTIFIER_TRANSPORT
	Transport string `env:"TRANSPORT"`

	// From is the sender address placed on every message.
	// Env: NOTIFIER_FROM
	From string `env:"FROM"`

	SMTP SMTP     `envPrefix:"SMTP_"`
	HTTP HTTPMail `envPrefix:"HTTP_"`
	AMQP AMQPMail `envPrefix:"AMQP_"`
}

// SMTP holds the settings of the SMTP mail transport.
type SMTP struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// HTTPMail holds the settings of a JSON mail delivery API.
type HTTPMail struct {
	// URL is the endpoint messages are POSTed to.
	URL string `env:"URL"`
	// APIKey is sent as a bearer token when non-empty.
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT"`
}

// AMQPMail holds the settings of the broker-backed mail transport.
type AMQPMail struct {
	URL   string `env:"URL"`
	Queue string `env:"QUEUE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// OTPSweepInterval is the period of the expired one-time code purge.
	// Env: WORKERS_OTP_SWEEP_INTERVAL
	OTPSweepInterval time.Duration `env:"OTP_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
