package config

import (
	"encoding/json"
	"os"

	"github.com/mobiledv/hrdesk/internal/flagx"
	"github.com/mobiledv/hrdesk/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so the timeout can be given either as a string like
// "30s" or as integer nanoseconds.
type jsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SettingsDBPath string         `json:"settings_db_path"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. When no config flag is given, nothing happens. Only
// fields present in the file override the current values.
//
// Intended usage is defaults -> parseJSON -> parseFlags, where later
// stages override earlier ones.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SettingsDBPath != "" {
		cfg.SettingsDBPath = jc.SettingsDBPath
	}
}
