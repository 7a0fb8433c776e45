package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Crypto struct {
		EnvelopeVersion          int  `json:"envelope_version"`
		MaxConcurrentDerivations int  `json:"max_concurrent_derivations"`
		EnforcePasswordPolicy    bool `json:"enforce_password_policy"`
	} `json:"crypto,omitempty"`

	Storage struct {
		Backend string `json:"backend"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Bolt struct {
			Path string `json:"path"`
		} `json:"bolt,omitempty"`

		EncryptAtRest    bool   `json:"encrypt_at_rest"`
		AtRestPassphrase string `json:"at_rest_passphrase"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			LogLevel: jsonCfg.App.LogLevel,
		},
		Crypto: Crypto{
			EnvelopeVersion:          jsonCfg.Crypto.EnvelopeVersion,
			MaxConcurrentDerivations: jsonCfg.Crypto.MaxConcurrentDerivations,
			EnforcePasswordPolicy:    jsonCfg.Crypto.EnforcePasswordPolicy,
		},
		Storage: Storage{
			Backend:          jsonCfg.Storage.Backend,
			DB:               DB{DSN: jsonCfg.Storage.DB.DSN},
			Bolt:             Bolt{Path: jsonCfg.Storage.Bolt.Path},
			EncryptAtRest:    jsonCfg.Storage.EncryptAtRest,
			AtRestPassphrase: jsonCfg.Storage.AtRestPassphrase,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
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
