package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avolkau/fittrack/internal/flagx"
)

// JsonConfig is the intermediate shape for reading JSON configuration files.
// The token lifetime is expressed in minutes, matching the flag form, and is
// converted to a time.Duration when copied into Config.
type JsonConfig struct {
	Addr                 string `json:"addr"`
	DatabaseDSN          string `json:"database_dsn"`
	JWTSecret            string `json:"jwt_secret"`
	JWTIssuer            string `json:"jwt_issuer"`
	JWTAudience          string `json:"jwt_audience"`
	TokenLifetimeMinutes int    `json:"token_lifetime_minutes"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flags. When neither flag is given, nothing is loaded. Unreadable
// or invalid files panic: a broken explicit config is a startup failure.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.JWTSecret != "" {
		config.JWTSecret = c.JWTSecret
	}
	if c.JWTIssuer != "" {
		config.JWTIssuer = c.JWTIssuer
	}
	if c.JWTAudience != "" {
		config.JWTAudience = c.JWTAudience
	}
	if c.TokenLifetimeMinutes > 0 {
		config.TokenLifetime = time.Duration(c.TokenLifetimeMinutes) * time.Minute
	}
}
