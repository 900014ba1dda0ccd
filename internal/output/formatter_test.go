package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Disable color for tests
	color.NoColor = true
}

// capture redirects output during function execution
func capture(f func()) string {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()
	f()
	return buf.String()
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{"success", func() { Success("File %s written", "a") }, "✔ File a written\n"},
		{"error", func() { Error("failed: %d", 3) }, "✗ failed: 3\n"},
		{"warn", func() { Warn("port invalid") }, "⚠ port invalid\n"},
		{"info", func() { Info("Running command: %s", "nginx -t") }, "-> Running command: nginx -t\n"},
		{"print", func() { Print("plain %s", "text") }, "plain text\n"},
		{"blank", Blank, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := capture(tt.fn)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBanner(t *testing.T) {
	got := capture(func() {
		Banner("Django deployment assistant", "Stack: nginx + gunicorn + systemd")
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != strings.Repeat("=", ruleWidth) || lines[3] != lines[0] {
		t.Errorf("expected rules around banner, got %q", got)
	}
	if lines[1] != "  Django deployment assistant" {
		t.Errorf("unexpected title line %q", lines[1])
	}
}

func TestKeyValues(t *testing.T) {
	got := capture(func() {
		KeyValues([][2]string{
			{"Project", "infohub"},
			{"Public port (nginx)", "8080"},
		})
	})

	want := "  Project             : infohub\n" +
		"  Public port (nginx) : 8080\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestKeyValuesEmpty(t *testing.T) {
	if got := capture(func() { KeyValues(nil) }); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestBlock(t *testing.T) {
	got := capture(func() {
		Block("line one\n\nline two\n", 4)
	})

	want := "    line one\n\n    line two\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSetOutputRestore(t *testing.T) {
	original := Writer()
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	if Writer() != &buf {
		t.Error("SetOutput did not take effect")
	}
	restore()
	if Writer() != original {
		t.Error("restore did not put back the original writer")
	}
}
