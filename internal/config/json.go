package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonConfig is a DTO used only for unmarshalling the config file.
// The timeout is a duration string ("10s", "1m30s").
type jsonConfig struct {
	DataServerAddr string `json:"data_server_addr"`
	SessionDBPath  string `json:"session_db_path"`
	RequestTimeout string `json:"request_timeout"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent file path means no JSON layer. Fields missing
// from the file keep their current values. Read or parse errors panic;
// a broken config file should stop startup.
func parseJSON(cfg *Config) {
	path := configFilePath()
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

	if jc.DataServerAddr != "" {
		cfg.DataServerAddr = jc.DataServerAddr
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
