package internal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ErrTooManyTries is returned when a validated prompt runs out of attempts.
var ErrTooManyTries = fmt.Errorf("too many tries")

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type PromptOpt func(*promptConfig)

func WithValidator(v promptValidator) PromptOpt {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) PromptOpt {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Prompter reads lines from a connection. Use one Prompter per connection so
// buffered input is never lost between reads.
type Prompter struct {
	w  io.Writer
	br *bufio.Reader
}

func NewPrompter(rw io.ReadWriter) *Prompter {
	return &Prompter{w: rw, br: bufio.NewReader(rw)}
}

// ReadLine returns the next line without its line ending.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt writes prompt and reads an answer, asking again while the validator
// rejects it.
func (p *Prompter) Prompt(prompt string, opts ...PromptOpt) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		if _, err := io.WriteString(p.w, prompt); err != nil {
			return "", err
		}

		input, err := p.ReadLine()
		if err != nil {
			return "", err
		}
		input = strings.TrimSpace(input)

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				if _, err := io.WriteString(p.w, msg); err != nil {
					return "", err
				}

				tries++
				if config.tries > 0 && config.tries == tries {
					_, _ = io.WriteString(p.w, "Too many tries.\n")
					return "", ErrTooManyTries
				}

				continue
			}
		}

		return input, nil
	}
}
