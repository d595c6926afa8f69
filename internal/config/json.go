package config

import (
	"encoding/json"
	"os"

	"github.com/adcreativex/adcreativex/internal/flagx"
	"github.com/adcreativex/adcreativex/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be given as strings like "500ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN       *string         `json:"database_dsn"`
	SimulatedLatency  *timex.Duration `json:"simulated_latency"`
	LinkTokenSecret   *string         `json:"link_token_secret"`
	LinkTokenValidity *timex.Duration `json:"link_token_validity"`
	LogLevel          *string         `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. Absent flags mean no JSON is loaded; fields missing from
// the file keep their current values. Read or unmarshal errors panic, as a
// broken config file should stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.SimulatedLatency != nil {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
	if jc.LinkTokenSecret != nil {
		cfg.LinkTokenSecret = *jc.LinkTokenSecret
	}
	if jc.LinkTokenValidity != nil {
		cfg.LinkTokenValidity = jc.LinkTokenValidity.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
