package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Settings holds application settings read from config.toml and the environment.
type Settings struct {
	DBPath       string      `toml:"db" env:"NEBULA_DB"`
	TickRate     int         `toml:"fps" env:"NEBULA_FPS"`
	Difficulty   string      `toml:"difficulty" env:"NEBULA_DIFFICULTY"`
	ProfilesPath string      `toml:"profiles" env:"NEBULA_PROFILES"`
	LogLevel     string      `toml:"log_level" env:"NEBULA_LOG_LEVEL"`
	SSH          SSHSettings `toml:"ssh"`
}

// SSHSettings configures the remote play server.
type SSHSettings struct {
	Address     string `toml:"address" env:"NEBULA_SSH_ADDR"`
	HostKeyPath string `toml:"host_key" env:"NEBULA_SSH_HOST_KEY"`
	IdleMinutes int    `toml:"idle_minutes" env:"NEBULA_SSH_IDLE_MINUTES"`
}

// DefaultSettings returns settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		DBPath:     DefaultDBPath(),
		TickRate:   60,
		Difficulty: string(DifficultyNormal),
		LogLevel:   "info",
		SSH: SSHSettings{
			Address:     ":23234",
			IdleMinutes: 30,
		},
	}
}

// LoadSettings reads settings from a TOML file and then applies environment
// overrides. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Settings{}, fmt.Errorf("failed to decode config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	if _, err := ParsePreset(cfg.Difficulty); err != nil {
		return Settings{}, err
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML settings path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "nebula", "config.toml")
}

// DefaultHostKeyPath returns the default SSH host key path.
func DefaultHostKeyPath() string {
	return filepath.Join(XDGDataHome(), "nebula", "host_key")
}

// DefaultDBPath returns the default path for the progress database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), "nebula", "progress.db")
}
