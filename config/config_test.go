package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `env:
  env: test
  serviceName: shareit-server
  debug: true
  log:
    pretty: true
    level: debug
http:
  port: 9090
  timeouts:
    readTimeout: 5s
    writeTimeout: 10s
postgres:
  host: localhost
  port: 5432
  user: shareit
  password: secret
  dbname: shareit
  maxOpenConns: 25
  maxIdleConns: 5
gateway:
  serverUrl: http://localhost:9090
`

func writeTestConfig(t *testing.T, name string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeTestConfig(t, "config")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "shareit-server", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	require.NotNil(t, cfg.Gateway)
	assert.Equal(t, "http://localhost:9090", cfg.Gateway.ServerURL)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t, "config")
	t.Setenv("HTTP_PORT", "7777")
	t.Setenv("POSTGRES_HOST", "db.internal")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml not found")
}

func TestPostgres_DSN(t *testing.T) {
	p := &Postgres{Host: "localhost", Port: 5432, User: "shareit", Password: "secret", DBName: "shareit"}

	assert.Equal(t, "host=localhost user=shareit password=secret dbname=shareit port=5432 sslmode=disable", p.DSN())

	p.SSLMode = "require"
	assert.Contains(t, p.DSN(), "sslmode=require")
}
