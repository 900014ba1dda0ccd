package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	deployerrors "github.com/ksyq12/djdeploy/internal/errors"
	"github.com/ksyq12/djdeploy/internal/output"
)

// Question is a single prompt with optional help text and default
type Question struct {
	Label   string
	Help    string
	Default string // empty means no default
}

// Prompter requests values from the operator
type Prompter interface {
	// Ask returns the trimmed answer, or q.Default when the answer is empty
	Ask(q Question) (string, error)

	// Confirm reports whether the answer equals token exactly
	Confirm(message, token string) (bool, error)
}

// NewPrompter returns a survey prompter when stdin is a terminal and a
// line prompter otherwise
func NewPrompter() Prompter {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return NewSurveyPrompter(survey.WithShowCursor(true))
	}
	return NewLinePrompter(NewStdinReader(), nil)
}

// printHelp writes the separator and help text shown before a question
func printHelp(w io.Writer, help string) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 60))
	if help != "" {
		_, _ = fmt.Fprintln(w, help)
	}
}

// LinePrompter reads answers line by line from a Reader
type LinePrompter struct {
	reader Reader
	w      io.Writer
}

// NewLinePrompter creates a LinePrompter writing prompts to w.
// A nil w follows the output package writer.
func NewLinePrompter(r Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: r, w: w}
}

func (p *LinePrompter) writer() io.Writer {
	if p.w == nil {
		return output.Writer()
	}
	return p.w
}

// Ask prints help and the label, then reads one line
func (p *LinePrompter) Ask(q Question) (string, error) {
	w := p.writer()
	printHelp(w, q.Help)
	if q.Default != "" {
		_, _ = fmt.Fprintf(w, "%s [%s]: ", q.Label, q.Default)
	} else {
		_, _ = fmt.Fprintf(w, "%s: ", q.Label)
	}

	answer, err := ReadLine(p.reader)
	if err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	if answer == "" {
		return q.Default, nil
	}
	return answer, nil
}

// Confirm prints message and compares the answer with token
func (p *LinePrompter) Confirm(message, token string) (bool, error) {
	_, _ = fmt.Fprintf(p.writer(), "%s [%s/N]: ", message, token)

	answer, err := ReadLine(p.reader)
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return answer == token, nil
}

// SurveyPrompter asks questions with survey on an interactive terminal
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a SurveyPrompter passing opts to every question
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// Ask prints help and shows a survey input
func (p *SurveyPrompter) Ask(q Question) (string, error) {
	printHelp(output.Writer(), q.Help)

	var result string
	prompt := &survey.Input{
		Message: q.Label,
		Default: q.Default,
	}
	if err := survey.AskOne(prompt, &result, p.opts...); err != nil {
		return "", surveyError(err)
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return q.Default, nil
	}
	return result, nil
}

// Confirm shows a survey input and compares the answer with token.
// survey.Confirm is not used because it accepts y/yes only.
func (p *SurveyPrompter) Confirm(message, token string) (bool, error) {
	var result string
	prompt := &survey.Input{
		Message: fmt.Sprintf("%s [%s/N]", message, token),
	}
	if err := survey.AskOne(prompt, &result, p.opts...); err != nil {
		return false, surveyError(err)
	}
	return strings.TrimSpace(result) == token, nil
}

// surveyError maps Ctrl-C to an operator abort
func surveyError(err error) error {
	if err == terminal.InterruptErr {
		return deployerrors.ErrAborted
	}
	return fmt.Errorf("prompt failed: %w", err)
}
