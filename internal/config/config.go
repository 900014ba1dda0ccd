package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings file location and environment overrides.
const (
	DefaultSettingsPath = "/etc/djdeploy/config.yaml"
	EnvSettingsPath     = "DJDEPLOY_CONFIG"
	EnvVerbose          = "DJDEPLOY_VERBOSE"
)

// Built-in prompt defaults.
const (
	DefaultServiceAccount = "www-data"
	DefaultWWWRoot        = "/var/www"
)

// Settings tunes the defaults offered by the prompt collector.
type Settings struct {
	DefaultUser  string `yaml:"default_user"`
	DefaultGroup string `yaml:"default_group"`
	WWWRoot      string `yaml:"www_root"`
	Verbose      bool   `yaml:"verbose"`
}

// NewSettings creates Settings with built-in defaults
func NewSettings() *Settings {
	return &Settings{
		DefaultUser:  DefaultServiceAccount,
		DefaultGroup: DefaultServiceAccount,
		WWWRoot:      DefaultWWWRoot,
	}
}

// SettingsPath returns the settings file path, honoring DJDEPLOY_CONFIG.
func SettingsPath() string {
	if p := os.Getenv(EnvSettingsPath); p != "" {
		return p
	}
	return DefaultSettingsPath
}

// Load reads settings from SettingsPath and applies DJDEPLOY_VERBOSE.
func Load() (*Settings, error) {
	s, err := LoadFile(SettingsPath())
	if err != nil {
		return nil, err
	}
	if v := os.Getenv(EnvVerbose); v != "" && v != "0" && v != "false" {
		s.Verbose = true
	}
	return s, nil
}

// LoadFile reads settings from path
func LoadFile(path string) (*Settings, error) {
	// Missing file means defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	s := NewSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	// Empty values in the file fall back to built-ins
	if s.DefaultUser == "" {
		s.DefaultUser = DefaultServiceAccount
	}
	if s.DefaultGroup == "" {
		s.DefaultGroup = s.DefaultUser
	}
	if s.WWWRoot == "" {
		s.WWWRoot = DefaultWWWRoot
	}

	return s, nil
}
