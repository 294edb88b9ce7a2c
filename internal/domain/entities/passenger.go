package entities

import (
	"fmt"
	"strings"
	"time"
)

// PaymentMethod is a typed string enum for how a passenger pays.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentDebit PaymentMethod = "debit"
)

// PaymentMethods lists every accepted value, in the order prompts present them.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentDebit}

// ParsePaymentMethod matches s against the known payment methods, ignoring case.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	p := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range PaymentMethods {
		if p == m {
			return m, true
		}
	}
	return "", false
}

// Passenger is a single passenger record.
type Passenger struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Payment   PaymentMethod `json:"payment"`
	Handicap  bool          `json:"handicap"`
	Rating    float64       `json:"rating"`
	Pets      bool          `json:"pets"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewPassenger builds a validated Passenger, or returns ValidationErrors.
func NewPassenger(id int, name string, payment PaymentMethod, handicap bool, rating float64, pets bool) (*Passenger, error) {
	now := time.Now()
	p := &Passenger{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Payment:   payment,
		Handicap:  handicap,
		Rating:    rating,
		Pets:      pets,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks every field constraint and reports all violations.
func (p *Passenger) Validate() error {
	var errs ValidationErrors
	if p.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "must not be empty"})
	}
	if _, ok := ParsePaymentMethod(string(p.Payment)); !ok {
		errs = append(errs, ValidationError{Field: "payment", Message: fmt.Sprintf("unrecognized value %q", p.Payment)})
	}
	if !validRating(p.Rating) {
		errs = append(errs, ValidationError{Field: "rating", Message: fmt.Sprintf("must be between %.1f and %.1f", MinRating, MaxRating)})
	}
	return errs.OrNil()
}

// PassengerUpdate carries a partial update. Nil fields are left unchanged.
type PassengerUpdate struct {
	Name     *string        `json:"name,omitempty"`
	Payment  *PaymentMethod `json:"payment,omitempty"`
	Handicap *bool          `json:"handicap,omitempty"`
	Rating   *float64       `json:"rating,omitempty"`
	Pets     *bool          `json:"pets,omitempty"`
}

// Apply overwrites the set fields and bumps UpdatedAt.
func (p *Passenger) Apply(u PassengerUpdate) {
	if u.Name != nil {
		p.Name = strings.TrimSpace(*u.Name)
	}
	if u.Payment != nil {
		p.Payment = *u.Payment
	}
	if u.Handicap != nil {
		p.Handicap = *u.Handicap
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.Pets != nil {
		p.Pets = *u.Pets
	}
	p.UpdatedAt = time.Now()
}
