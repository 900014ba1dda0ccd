package input

import (
	"errors"
	"io"
	"testing"
)

func TestStringReader_ReadString(t *testing.T) {
	t.Run("multiple inputs", func(t *testing.T) {
		reader := NewStringReader("first\n", "second\n")

		for _, want := range []string{"first\n", "second\n"} {
			got, err := reader.ReadString('\n')
			if err != nil {
				t.Fatalf("ReadString failed: %v", err)
			}
			if got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		}
	})

	t.Run("EOF after all inputs consumed", func(t *testing.T) {
		reader := NewStringReader("s\n")
		if _, err := reader.ReadString('\n'); err != nil {
			t.Fatalf("ReadString failed: %v", err)
		}

		result, err := reader.ReadString('\n')
		if err != io.EOF {
			t.Errorf("expected io.EOF, got %v", err)
		}
		if result != "" {
			t.Errorf("expected empty string, got '%s'", result)
		}
	})
}

func TestNewLineReader(t *testing.T) {
	reader := NewLineReader("infohub", "", "8080")
	if reader.Remaining() != 3 {
		t.Fatalf("expected 3 remaining, got %d", reader.Remaining())
	}

	got, _ := reader.ReadString('\n')
	if got != "infohub\n" {
		t.Errorf("expected newline appended, got %q", got)
	}
	got, _ = reader.ReadString('\n')
	if got != "\n" {
		t.Errorf("expected bare newline for empty answer, got %q", got)
	}
	if reader.Remaining() != 1 {
		t.Errorf("expected 1 remaining, got %d", reader.Remaining())
	}
}

type failingReader struct{}

func (failingReader) ReadString(delim byte) (string, error) {
	return "", errors.New("terminal gone")
}

func TestReadLine(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		got, err := ReadLine(NewStringReader("  infohub \r\n"))
		if err != nil {
			t.Fatalf("ReadLine failed: %v", err)
		}
		if got != "infohub" {
			t.Errorf("expected 'infohub', got %q", got)
		}
	})

	t.Run("EOF yields empty line", func(t *testing.T) {
		got, err := ReadLine(NewStringReader())
		if err != nil {
			t.Fatalf("expected no error on EOF, got %v", err)
		}
		if got != "" {
			t.Errorf("expected empty line, got %q", got)
		}
	})

	t.Run("read error is returned", func(t *testing.T) {
		if _, err := ReadLine(failingReader{}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestNewStdinReader(t *testing.T) {
	reader := NewStdinReader()
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
	if reader.reader == nil {
		t.Error("expected non-nil bufio.Reader")
	}
}
