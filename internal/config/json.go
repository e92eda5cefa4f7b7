package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Env              string   `json:"env"`
		LogLevel         string   `json:"log_level"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		OTPDuration      Duration `json:"otp_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string   `json:"dsn"`
			ConnectTimeout Duration `json:"connect_timeout"`
			IdleTimeout    Duration `json:"idle_timeout"`
			MaxOpenConns   int      `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
		AllowedOrigins    []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Notifier struct {
		Transport string `json:"transport"`
		From      string `json:"from"`
		SMTP      struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"smtp,omitempty"`
		HTTP struct {
			URL     string   `json:"url"`
			APIKey  string   `json:"api_key"`
			Timeout Duration `json:"timeout"`
		} `json:"http,omitempty"`
		AMQP struct {
			URL   string `json:"url"`
			Queue string `json:"queue"`
		} `json:"amqp,omitempty"`
	} `json:"notifier,omitempty"`

	Workers struct {
		OTPSweepInterval Duration `json:"otp_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:              jsonCfg.App.Env,
			LogLevel:         jsonCfg.App.LogLevel,
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			OTPDuration:      time.Duration(jsonCfg.App.OTPDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:            jsonCfg.Storage.DB.DSN,
				ConnectTimeout: time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
				IdleTimeout:    time.Duration(jsonCfg.Storage.DB.IdleTimeout),
				MaxOpenConns:   jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
			AllowedOrigins:    jsonCfg.Server.AllowedOrigins,
		},
		Notifier: Notifier{
			Transport: jsonCfg.Notifier.Transport,
			From:      jsonCfg.Notifier.From,
			SMTP: SMTP{
				Host:     jsonCfg.Notifier.SMTP.Host,
				Port:     jsonCfg.Notifier.SMTP.Port,
				Username: jsonCfg.Notifier.SMTP.Username,
				Password: jsonCfg.Notifier.SMTP.Password,
			},
			HTTP: HTTPMail{
				URL:     jsonCfg.Notifier.HTTP.URL,
				APIKey:  jsonCfg.Notifier.HTTP.APIKey,
				Timeout: time.Duration(jsonCfg.Notifier.HTTP.Timeout),
			},
			AMQP: AMQPMail{
				URL:   jsonCfg.Notifier.AMQP.URL,
				Queue: jsonCfg.Notifier.AMQP.Queue,
			},
		},
		Workers: Workers{
			OTPSweepInterval: time.Duration(jsonCfg.Workers.OTPSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
