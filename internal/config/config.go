package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Backend names where the cookbook is kept.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// Config holds foodie's runtime settings.
type Config struct {
	Backend  string
	DataPath string
	APIBind  string
	LogDir   string
}

const (
	defaultConfigPath = "~/.config/foodie/config.toml"
	defaultDataPath   = "~/.local/share/foodie/cookbook.db"
	defaultLogDir     = "~/.local/share/foodie/logs"
	defaultAPIBind    = "127.0.0.1:7488"
	logFileName       = "foodie.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Backend:  BackendLocal,
		DataPath: mustExpand(defaultDataPath),
		APIBind:  defaultAPIBind,
		LogDir:   mustExpand(defaultLogDir),
	}
}

// Load locates and parses the foodie config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Backend  string `toml:"backend"`
		DataPath string `toml:"data_path"`
		APIBind  string `toml:"api_bind"`
		LogDir   string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		Backend:  orDefault(strings.ToLower(raw.Backend), BackendLocal),
		DataPath: mustExpand(orDefault(raw.DataPath, defaultDataPath)),
		APIBind:  orDefault(raw.APIBind, defaultAPIBind),
		LogDir:   mustExpand(orDefault(raw.LogDir, defaultLogDir)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings foodie cannot run with.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendLocal, BackendRemote:
		return nil
	default:
		return fmt.Errorf("backend %q: want %q or %q", c.Backend, BackendLocal, BackendRemote)
	}
}

// LogPath returns the path of foodie's own log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
