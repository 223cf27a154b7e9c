package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Port              string
	MediaDir          string
	Backends          map[string]string
	DefaultBackend    string
	LLMTimeoutSeconds int
}

// backendsFile is the YAML shape of an optional on-disk backend table.
type backendsFile struct {
	Default  string            `yaml:"default"`
	Backends map[string]string `yaml:"backends"`
}

// Load reads environment variables, optionally from a .env file if present.
// The backend table comes from LLM_BACKENDS ("name=url,name=url"), or from a
// YAML file named by LLM_BACKENDS_FILE which wins when both are set. With
// neither set a placeholder model_a/model_b table is used so the service
// starts in development.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		MediaDir:          getEnv("MEDIA_DIR", "media"),
		DefaultBackend:    getEnv("LLM_DEFAULT", "model_a"),
		LLMTimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 30),
	}

	cfg.Backends = parseBackendPairs(os.Getenv("LLM_BACKENDS"))

	if path := os.Getenv("LLM_BACKENDS_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read backends file: %w", err)
		}
		var bf backendsFile
		if err := yaml.Unmarshal(data, &bf); err != nil {
			return Config{}, fmt.Errorf("parse backends file: %w", err)
		}
		if len(bf.Backends) > 0 {
			cfg.Backends = bf.Backends
		}
		if bf.Default != "" {
			cfg.DefaultBackend = bf.Default
		}
	}

	if len(cfg.Backends) == 0 {
		cfg.Backends = map[string]string{
			"model_a": "https://api.example.com/llm/model_a",
			"model_b": "https://api.example.com/llm/model_b",
		}
	}
	return cfg, nil
}

func parseBackendPairs(raw string) map[string]string {
	backends := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, url, ok := strings.Cut(pair, "=")
		name, url = strings.TrimSpace(name), strings.TrimSpace(url)
		if !ok || name == "" || url == "" {
			continue
		}
		backends[name] = url
	}
	return backends
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
