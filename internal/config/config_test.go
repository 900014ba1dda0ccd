package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettings(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("NewSettings", func(t *testing.T) {
		s := NewSettings()
		if s.DefaultUser != "www-data" {
			t.Errorf("expected www-data user, got %s", s.DefaultUser)
		}
		if s.DefaultGroup != "www-data" {
			t.Errorf("expected www-data group, got %s", s.DefaultGroup)
		}
		if s.WWWRoot != "/var/www" {
			t.Errorf("expected /var/www, got %s", s.WWWRoot)
		}
		if s.Verbose {
			t.Error("verbose should default to false")
		}
	})

	t.Run("LoadFileNonexistent", func(t *testing.T) {
		s, err := LoadFile(filepath.Join(tempDir, "missing.yaml"))
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if s.DefaultUser != "www-data" {
			t.Errorf("expected defaults, got user %s", s.DefaultUser)
		}
	})

	t.Run("LoadFileOverrides", func(t *testing.T) {
		path := filepath.Join(tempDir, "config.yaml")
		content := "default_user: deploy\nwww_root: /srv/www\nverbose: true\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write settings: %v", err)
		}

		s, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if s.DefaultUser != "deploy" {
			t.Errorf("expected deploy user, got %s", s.DefaultUser)
		}
		if s.DefaultGroup != "www-data" {
			t.Errorf("expected built-in group to be kept, got %s", s.DefaultGroup)
		}
		if s.WWWRoot != "/srv/www" {
			t.Errorf("expected /srv/www, got %s", s.WWWRoot)
		}
		if !s.Verbose {
			t.Error("expected verbose true")
		}
	})

	t.Run("LoadFileEmptyValues", func(t *testing.T) {
		path := filepath.Join(tempDir, "empty.yaml")
		if err := os.WriteFile(path, []byte("default_user: \"\"\nwww_root: \"\"\n"), 0644); err != nil {
			t.Fatalf("failed to write settings: %v", err)
		}

		s, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if s.DefaultUser != "www-data" || s.WWWRoot != "/var/www" {
			t.Errorf("expected built-ins, got user=%s root=%s", s.DefaultUser, s.WWWRoot)
		}
	})

	t.Run("LoadFileInvalid", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("default_user: [unterminated\n"), 0644); err != nil {
			t.Fatalf("failed to write settings: %v", err)
		}

		if _, err := LoadFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestLoadEnvironment(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "djdeploy.yaml")
	if err := os.WriteFile(path, []byte("www_root: /opt/apps\n"), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	t.Setenv(EnvSettingsPath, path)
	t.Setenv(EnvVerbose, "1")

	if got := SettingsPath(); got != path {
		t.Errorf("SettingsPath() = %s, want %s", got, path)
	}

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.WWWRoot != "/opt/apps" {
		t.Errorf("expected /opt/apps, got %s", s.WWWRoot)
	}
	if !s.Verbose {
		t.Error("expected DJDEPLOY_VERBOSE to enable verbose")
	}
}

func TestSettingsPathDefault(t *testing.T) {
	t.Setenv(EnvSettingsPath, "")
	if got := SettingsPath(); got != DefaultSettingsPath {
		t.Errorf("SettingsPath() = %s, want %s", got, DefaultSettingsPath)
	}
}
