package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestPrompter(input string, attempts int) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out, attempts), out
}

func TestPrompter_Line(t *testing.T) {
	p, _ := newTestPrompter("  hello world  \n", 3)

	got, err := p.Line("name")
	if err != nil {
		t.Fatalf("Line failed: %v", err)
	}
	if got != "hello world" {
		t.Errorf("Expected trimmed line, got %q", got)
	}
}

func TestPrompter_IntRetries(t *testing.T) {
	p, out := newTestPrompter("abc\n4.2\n17\n", 3)

	got, err := p.Int("id")
	if err != nil {
		t.Fatalf("Int failed: %v", err)
	}
	if got != 17 {
		t.Errorf("Expected 17, got %d", got)
	}
	if !strings.Contains(out.String(), "invalid input") {
		t.Error("Expected rejection messages on bad attempts")
	}
}

func TestPrompter_BoundedAttempts(t *testing.T) {
	p, _ := newTestPrompter("a\nb\nc\nd\n", 3)

	_, err := p.Int("id")
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("Expected ErrTooManyAttempts after 3 bad inputs, got %v", err)
	}
}

func TestPrompter_FloatInRange(t *testing.T) {
	// 0.5 and 5.5 violate the bounds; both must be rejected in one predicate.
	p, _ := newTestPrompter("0.5\n5.5\n4.5\n", 3)

	got, err := p.FloatInRange("rating", 1.0, 5.0)
	if err != nil {
		t.Fatalf("FloatInRange failed: %v", err)
	}
	if got != 4.5 {
		t.Errorf("Expected 4.5, got %.1f", got)
	}
}

func TestPrompter_Bool(t *testing.T) {
	p, _ := newTestPrompter("1\nmaybe\nYES\n", 3)

	got, err := p.Bool("pets")
	if err != nil {
		t.Fatalf("Bool failed: %v", err)
	}
	if !got {
		t.Error("Expected YES to mean true")
	}

	// 1/0 are not accepted; only yes/no words are.
	p, _ = newTestPrompter("0\nn\n", 3)
	got, err = p.Bool("pets")
	if err != nil {
		t.Fatalf("Bool failed: %v", err)
	}
	if got {
		t.Error("Expected n to mean false")
	}
}

func TestPrompter_Choice(t *testing.T) {
	p, _ := newTestPrompter("bus\nSEDAN\n", 3)

	got, err := p.Choice("vehicle type", []string{"compact", "sedan", "van"})
	if err != nil {
		t.Fatalf("Choice failed: %v", err)
	}
	if got != "sedan" {
		t.Errorf("Expected canonical option sedan, got %q", got)
	}
}

func TestPrompter_EOF(t *testing.T) {
	p, _ := newTestPrompter("", 3)

	if _, err := p.Line("name"); err == nil {
		t.Error("Expected error on exhausted input")
	}
}
