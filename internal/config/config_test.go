package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "config.yaml")
	envPath := filepath.Join(dir, "app.env")

	if err := os.WriteFile(cfgPath, []byte("env: \"local\"\nbackend:\n  base_url: ${BACKEND_URL}\n  timeout: 10s\nlogos:\n  base_url: \"https://logo.clearbit.com\"\nbank_callback:\n  host: \"localhost\"\n  port: 8085\n  timeout: 4s\nstate:\n  dir: \"/tmp/subtrack-test\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := os.WriteFile(envPath, []byte("BACKEND_URL=https://api.subtrack.dk\n"), 0o600); err != nil {
		t.Fatalf("failed to write env: %v", err)
	}

	t.Setenv("CONFIG_PATH", cfgPath)
	t.Setenv("ENV_FILE", envPath)

	cfg := LoadConfig()

	assert.Equal(t, Config{
		Env: "local",
		Backend: BackendConfig{
			BaseURL: "https://api.subtrack.dk",
			Timeout: 10 * time.Second,
		},
		Logos: LogoConfig{
			BaseURL: "https://logo.clearbit.com",
		},
		Callback: CallbackConfig{
			Host:    "localhost",
			Port:    8085,
			Timeout: 4 * time.Second,
		},
		State: StateConfig{
			Dir: "/tmp/subtrack-test",
		},
	}, *cfg)
}

func TestStateConfigPaths(t *testing.T) {
	s := StateConfig{Dir: "/home/u/.subtrack"}
	assert.Equal(t, "/home/u/.subtrack/subscriptions.json", s.ListPath())
	assert.Equal(t, "/home/u/.subtrack/token", s.TokenPath())
}
