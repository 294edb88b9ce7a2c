// Package cli implements the interactive console shell. It is a thin adapter:
// prompts construct validated records and invoke the collections' public
// operations, so everything here is testable with a scripted io.Reader.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrTooManyAttempts aborts a prompt flow after the configured number of
// rejected inputs. Nothing partial is stored when a flow aborts.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// Prompter reads line-oriented input with bounded validation retries.
// Every prompt reads a full line; one convention for every field type.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
}

func NewPrompter(in io.Reader, out io.Writer, maxAttempts int) *Prompter {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		maxAttempts: maxAttempts,
	}
}

// Line prompts once and returns the trimmed line. Free-text fields accept
// anything, including the empty string.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ask retries a prompt until parse accepts the input or attempts run out.
// The predicate reports a reason when it rejects, which is echoed before the
// next attempt.
func (p *Prompter) ask(label string, parse func(string) (string, bool)) (string, error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		line, err := p.Line(label)
		if err != nil {
			return "", err
		}
		reason, ok := parse(line)
		if ok {
			return line, nil
		}
		fmt.Fprintf(p.out, "invalid input: %s\n", reason)
	}
	return "", ErrTooManyAttempts
}

// Int prompts for any integer.
func (p *Prompter) Int(label string) (int, error) {
	var value int
	_, err := p.ask(label, func(s string) (string, bool) {
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			return "enter a whole number", false
		}
		value = n
		return "", true
	})
	return value, err
}

// PositiveInt prompts for an integer greater than zero.
func (p *Prompter) PositiveInt(label string) (int, error) {
	var value int
	_, err := p.ask(label, func(s string) (string, bool) {
		n, convErr := strconv.Atoi(s)
		if convErr != nil || n <= 0 {
			return "enter a whole number greater than zero", false
		}
		value = n
		return "", true
	})
	return value, err
}

// FloatInRange prompts for a number within [min, max]. Both bounds must hold
// at once — the retry predicate is a single conjunction, so out-of-range
// input never slips through.
func (p *Prompter) FloatInRange(label string, min, max float64) (float64, error) {
	var value float64
	_, err := p.ask(label, func(s string) (string, bool) {
		f, convErr := strconv.ParseFloat(s, 64)
		if convErr != nil || f < min || f > max {
			return fmt.Sprintf("enter a number between %.1f and %.1f", min, max), false
		}
		value = f
		return "", true
	})
	return value, err
}

// Bool prompts for yes/no. Accepted: yes, no, y, n (any case). The shell
// never uses 1/0 for booleans.
func (p *Prompter) Bool(label string) (bool, error) {
	var value bool
	_, err := p.ask(label+" (yes/no)", func(s string) (string, bool) {
		switch strings.ToLower(s) {
		case "yes", "y":
			value = true
			return "", true
		case "no", "n":
			value = false
			return "", true
		default:
			return "answer yes or no", false
		}
	})
	return value, err
}

// Choice prompts for one of the given options, matching case-insensitively,
// and returns the canonical option.
func (p *Prompter) Choice(label string, options []string) (string, error) {
	var value string
	_, err := p.ask(fmt.Sprintf("%s (%s)", label, strings.Join(options, "/")), func(s string) (string, bool) {
		for _, opt := range options {
			if strings.EqualFold(s, opt) {
				value = opt
				return "", true
			}
		}
		return "pick one of: " + strings.Join(options, ", "), false
	})
	return value, err
}
