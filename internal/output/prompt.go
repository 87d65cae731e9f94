package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter asks the user for a single line of input.
type Prompter interface {
	// Ask shows title and returns the answer, or def when the answer is empty.
	Ask(title, def string) (string, error)
}

// NewPrompter returns a terminal prompt when running interactively and a
// line reader over in/out otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if IsInteractive() {
		return huhPrompter{}
	}
	return NewLinePrompter(in, out)
}

type huhPrompter struct{}

func (huhPrompter) Ask(title, def string) (string, error) {
	var answer string
	err := huh.NewInput().
		Title(title).
		Placeholder(def).
		Value(&answer).
		Run()
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// LinePrompter reads answers line by line from a reader.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{scanner: bufio.NewScanner(in), out: out}
}

// Ask writes the prompt and reads one line. io.EOF is returned when input is exhausted.
func (p *LinePrompter) Ask(title, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", title, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", title)
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	answer := strings.TrimSpace(p.scanner.Text())
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
