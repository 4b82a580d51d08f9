package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env      string         `yaml:"env" env-default:"development"`
	Backend  BackendConfig  `yaml:"backend"`
	Logos    LogoConfig     `yaml:"logos"`
	Callback CallbackConfig `yaml:"bank_callback"`
	State    StateConfig    `yaml:"state"`
}

type BackendConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type LogoConfig struct {
	BaseURL string `yaml:"base_url"`
}

// CallbackConfig - the local server that catches the bank-link redirect
type CallbackConfig struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	Timeout     time.Duration `yaml:"timeout"`
	CORSOrigins []string      `yaml:"cors_origins"`
}

// StateConfig - where the list cache and session token live on disk
type StateConfig struct {
	Dir string `yaml:"dir"`
}

// ListPath is the JSON file holding the cached subscription list.
func (s StateConfig) ListPath() string {
	return filepath.Join(s.Dir, "subscriptions.json")
}

// TokenPath is the file holding the session token.
func (s StateConfig) TokenPath() string {
	return filepath.Join(s.Dir, "token")
}

func resolvePath(cwd, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return p
	}
	if up, ok := findUp(cwd, p, 8); ok {
		return up
	}
	return filepath.Join(cwd, p)
}

// findUp walks from start towards the filesystem root looking for rel.
func findUp(start, rel string, max int) (string, bool) {
	dir := start
	for i := 0; i <= max; i++ {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

func LoadConfig() *Config {
	var cfg Config
	cwd, _ := os.Getwd()

	// 1) .env
	envPath := os.Getenv("ENV_FILE")
	if envPath == "" {
		if up, ok := findUp(cwd, ".env/local.env", 8); ok {
			envPath = up
		}
	} else {
		envPath = resolvePath(cwd, envPath)
	}
	if envPath != "" {
		_ = godotenv.Overload(envPath)
	}

	// 2) YAML
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if up, ok := findUp(cwd, "configs/local.yaml", 8); ok {
			path = up
		} else if up, ok := findUp(cwd, ".env/local.yaml", 8); ok {
			path = up
		} else {
			log.Fatal("CONFIG_PATH not set and local.yaml not found")
		}
	} else {
		path = resolvePath(cwd, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read config: %v", err)
	}

	expanded := os.ExpandEnv(string(raw))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:8000"
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = 15 * time.Second
	}
	if c.Callback.Host == "" {
		c.Callback.Host = "localhost"
	}
	if c.Callback.Port == 0 {
		c.Callback.Port = 8085
	}
	if c.Callback.Timeout <= 0 {
		c.Callback.Timeout = 5 * time.Second
	}
	if c.State.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.State.Dir = filepath.Join(home, ".subtrack")
	}
}
