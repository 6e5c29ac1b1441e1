package config

import "time"

// Config is the root configuration for Taskboard.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Notify   NotifyConfig   `yaml:"notify"`
	Tunnel   TunnelConfig   `yaml:"tunnel"`
}

type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	PublicURL string `yaml:"public_url"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`
}

type DatabaseConfig struct {
	Path          string `yaml:"path"`
	RetentionDays int    `yaml:"retention_days"`
}

type NotifyConfig struct {
	// Delay is the simulated delivery latency of the background
	// notification job.
	Delay time.Duration `yaml:"delay"`
	// BufferSize is the per-subscriber delivery channel depth; events
	// beyond it are dropped for that subscriber rather than blocking
	// a broadcast.
	BufferSize int `yaml:"buffer_size"`
}

type TunnelConfig struct {
	Enabled   bool   `yaml:"enabled"`
	AuthToken string `yaml:"authtoken"`
	Domain    string `yaml:"domain"`
}

// Defaults returns a Config with sensible default values.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "127.0.0.1",
			Port:     8430,
			LogLevel: "info",
		},
		Database: DatabaseConfig{
			Path:          "~/.config/taskboard/taskboard.db",
			RetentionDays: 90,
		},
		Notify: NotifyConfig{
			Delay:      2 * time.Second,
			BufferSize: 16,
		},
	}
}
