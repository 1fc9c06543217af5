// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		ArgonTime         uint32  `json:"argon_time"`
		ArgonMemory       uint32  `json:"argon_memory"`
		ArgonThreads      uint8   `json:"argon_threads"`
		ArgonKeyLen       uint32  `json:"argon_key_len"`
		SelectorWarnRatio float64 `json:"selector_warn_ratio"`
	} `json:"app,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		SQLitePath      string   `json:"sqlite_path"`
		BackupRetention Duration `json:"backup_retention"`
	} `json:"storage,omitempty"`

	Client struct {
		ServerURL string   `json:"server_url"`
		Timeout   Duration `json:"timeout"`
	} `json:"client,omitempty"`
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
			ArgonTime:         jsonCfg.App.ArgonTime,
			ArgonMemory:       jsonCfg.App.ArgonMemory,
			ArgonThreads:      jsonCfg.App.ArgonThreads,
			ArgonKeyLen:       jsonCfg.App.ArgonKeyLen,
			SelectorWarnRatio: jsonCfg.App.SelectorWarnRatio,
		},
		Server: Server{
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			SQLitePath:      jsonCfg.Storage.SQLitePath,
			BackupRetention: time.Duration(jsonCfg.Storage.BackupRetention),
		},
		Client: Client{
			ServerURL: jsonCfg.Client.ServerURL,
			Timeout:   time.Duration(jsonCfg.Client.Timeout),
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
