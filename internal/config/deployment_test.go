package config

import "testing"

func TestDeploymentConfigDerived(t *testing.T) {
	cfg := &DeploymentConfig{
		ProjectName: "infohub",
		VenvPath:    "/var/www/infohub/venv",
	}

	if got := cfg.GunicornBin(); got != "/var/www/infohub/venv/bin/gunicorn" {
		t.Errorf("GunicornBin() = %s", got)
	}
	if got := cfg.VenvBin(); got != "/var/www/infohub/venv/bin" {
		t.Errorf("VenvBin() = %s", got)
	}
	if got := cfg.SocketPath(); got != "/run/gunicorn-infohub.sock" {
		t.Errorf("SocketPath() = %s", got)
	}

	// Derived values follow the prompted fields
	cfg.VenvPath = "/opt/venvs/infohub"
	if got := cfg.GunicornBin(); got != "/opt/venvs/infohub/bin/gunicorn" {
		t.Errorf("GunicornBin() after change = %s", got)
	}
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"project root", DefaultProjectRoot("/var/www", "infohub"), "/var/www/infohub"},
		{"venv", DefaultVenvPath("/var/www/infohub"), "/var/www/infohub/venv"},
		{"wsgi", DefaultWSGIModule("infohub"), "infohub.wsgi:application"},
		{"static", DefaultStaticRoot("/var/www/infohub"), "/var/www/infohub/static/"},
		{"media", DefaultMediaRoot("/var/www/infohub"), "/var/www/infohub/media/"},
		{"static with trailing slash root", DefaultStaticRoot("/srv/app/"), "/srv/app/static/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"80", 80, true},
		{"8080", 8080, true},
		{"65535", 65535, true},
		{"abc", 80, false},
		{"", 80, false},
		{"80a", 80, false},
		{"-1", 80, false},
		{"+80", 80, false},
		{"0", 80, false},
		{"70000", 80, false},
		{"8 0", 80, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParsePort(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParsePort(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDirectoriesAndWildcard(t *testing.T) {
	cfg := &DeploymentConfig{
		Domain:      WildcardDomain,
		ProjectRoot: "/var/www/app",
		StaticRoot:  "/var/www/app/static/",
		MediaRoot:   "/var/www/app/media/",
	}

	dirs := cfg.Directories()
	if len(dirs) != 3 || dirs[0] != cfg.ProjectRoot || dirs[1] != cfg.StaticRoot || dirs[2] != cfg.MediaRoot {
		t.Errorf("unexpected directories %v", dirs)
	}
	if !cfg.IsWildcardDomain() {
		t.Error("expected wildcard domain")
	}

	cfg.Domain = "example.com"
	if cfg.IsWildcardDomain() {
		t.Error("example.com is not the wildcard")
	}
}
