package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.Bold)
)

// ruleWidth is the width of section separators
const ruleWidth = 44

var out io.Writer = color.Output

// SetOutput redirects all output to w and returns a func restoring the previous writer
func SetOutput(w io.Writer) func() {
	prev := out
	out = w
	return func() { out = prev }
}

// Writer returns the current output destination
func Writer() io.Writer {
	return out
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	_, _ = successColor.Fprintf(out, "✔ "+format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(out, "✗ "+format+"\n", args...)
}

// Warn prints a warning message
func Warn(format string, args ...interface{}) {
	_, _ = warnColor.Fprintf(out, "⚠ "+format+"\n", args...)
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	_, _ = infoColor.Fprintf(out, "-> "+format+"\n", args...)
}

// Print prints a plain message
func Print(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}

// Blank prints an empty line
func Blank() {
	_, _ = fmt.Fprintln(out)
}

// Rule prints a separator line of the given character
func Rule(char string) {
	_, _ = fmt.Fprintln(out, strings.Repeat(char, ruleWidth))
}

// Banner prints lines framed by separator rules
func Banner(lines ...string) {
	Rule("=")
	for _, line := range lines {
		_, _ = headerColor.Fprintf(out, "  %s\n", line)
	}
	Rule("=")
}

// KeyValues prints aligned "label : value" rows
func KeyValues(rows [][2]string) {
	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	for _, row := range rows {
		_, _ = fmt.Fprintf(out, "  %-*s : %s\n", width, row[0], row[1])
	}
}

// Block prints preformatted text, indented
func Block(text string, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			_, _ = fmt.Fprintln(out)
			continue
		}
		_, _ = fmt.Fprintln(out, pad+line)
	}
}
