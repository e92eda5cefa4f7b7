package config

import "time"

// defaultConfig returns the built-in configuration every other source is
// merged on top of.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:              EnvDevelopment,
			LogLevel:         "debug",
			TokenIssuer:      "go-note-keeper",
			TokenDuration:    7 * 24 * time.Hour,
			OTPDuration:      10 * time.Minute,
			PasswordHashCost: 10,
			Version:          "dev",
		},
		Storage: Storage{
			DB: DB{
				ConnectTimeout: 5 * time.Second,
				IdleTimeout:    5 * time.Minute,
				MaxOpenConns:   10,
			},
		},
		Server: Server{
			HTTPAddress:       "localhost:5000",
			RequestTimeout:    30 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			AllowedOrigins:    []string{"*"},
		},
		Notifier: Notifier{
			Transport: TransportLog,
			From:      "no-reply@note-keeper.local",
			SMTP:      SMTP{Port: 587},
			HTTP:      HTTPMail{Timeout: 10 * time.Second},
			AMQP:      AMQPMail{Queue: "mail"},
		},
		Workers: Workers{
			OTPSweepInterval: 5 * time.Minute,
		},
	}
}
