package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Server struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		ProbeTimeout   Duration `json:"probe_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		ClientIDFile string `json:"client_id_file"`
	} `json:"storage,omitempty"`

	Sync struct {
		RetryAttempts  int      `json:"retry_attempts"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
		TimeoutStep    Duration `json:"timeout_step"`
		ProbeTTL       Duration `json:"probe_ttl"`
		RefreshLimit   int      `json:"refresh_limit"`
	} `json:"sync,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
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
		Server: Server{
			BaseURL:        jsonCfg.Server.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			ProbeTimeout:   time.Duration(jsonCfg.Server.ProbeTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			ClientIDFile: jsonCfg.Storage.ClientIDFile,
		},
		Sync: Sync{
			RetryAttempts:  jsonCfg.Sync.RetryAttempts,
			RetryBaseDelay: time.Duration(jsonCfg.Sync.RetryBaseDelay),
			TimeoutStep:    time.Duration(jsonCfg.Sync.TimeoutStep),
			ProbeTTL:       time.Duration(jsonCfg.Sync.ProbeTTL),
			RefreshLimit:   jsonCfg.Sync.RefreshLimit,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		JSONFilePath: "",
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
