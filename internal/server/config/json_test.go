package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValuesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
		"addr": ":9000",
		"database_dsn": "postgres://example/db",
		"jwt_secret": "file-secret",
		"token_lifetime_minutes": 15
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":9000", c.Addr)
	assert.Equal(t, "postgres://example/db", c.DatabaseDSN)
	assert.Equal(t, "file-secret", c.JWTSecret)
	assert.Equal(t, 15*time.Minute, c.TokenLifetime)
	assert.Equal(t, "fittrack", c.JWTIssuer, "fields absent from the file keep their defaults")
}

func TestParseJson_NoFlagLoadsNothing(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":8080", c.Addr)
}
