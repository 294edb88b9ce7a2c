package entities

import (
	"fmt"
	"strings"
	"time"
)

// RideStatus represents the lifecycle state of a ride request.
//
// The lifecycle is:
//
//	requested → assigned → in_progress → completed
//
// with cancelled reachable from every non-terminal state.
type RideStatus string

const (
	RideStatusRequested  RideStatus = "requested"
	RideStatusAssigned   RideStatus = "assigned"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
)

// RideStatuses lists every known status.
var RideStatuses = []RideStatus{
	RideStatusRequested,
	RideStatusAssigned,
	RideStatusInProgress,
	RideStatusCompleted,
	RideStatusCancelled,
}

// ParseRideStatus matches s against the known statuses, ignoring case.
func ParseRideStatus(s string) (RideStatus, bool) {
	v := RideStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range RideStatuses {
		if v == st {
			return st, true
		}
	}
	return "", false
}

// validTransitions defines which status changes are allowed from each state.
// Terminal states (completed, cancelled) have empty slices — no way out.
// This map IS the state machine; CanTransitionTo just consults it.
var validTransitions = map[RideStatus][]RideStatus{
	RideStatusRequested:  {RideStatusAssigned, RideStatusCancelled},
	RideStatusAssigned:   {RideStatusInProgress, RideStatusCancelled},
	RideStatusInProgress: {RideStatusCompleted, RideStatusCancelled},
	RideStatusCompleted:  {},
	RideStatusCancelled:  {},
}

// InvalidTransitionError reports a status change the state machine forbids.
// It is a distinct type so callers can tell a bad transition apart from a
// missing ride or a validation failure.
type InvalidTransitionError struct {
	From RideStatus
	To   RideStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Ride is a single trip request record. DriverID stays zero until a driver
// is assigned; the ride collection never consults the driver collection —
// the caller supplies whatever driver id it wants recorded.
type Ride struct {
	ID          int        `json:"id"`
	Pickup      string     `json:"pickup"`
	Dropoff     string     `json:"dropoff"`
	PartySize   int        `json:"party_size"`
	HasPets     bool       `json:"has_pets"`
	Status      RideStatus `json:"status"`
	DriverID    int        `json:"driver_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	AssignedAt  time.Time  `json:"assigned_at,omitempty"`
	StartedAt   time.Time  `json:"started_at,omitempty"`
	CompletedAt time.Time  `json:"completed_at,omitempty"`
}

// NewRide builds a validated Ride in the requested state.
func NewRide(id int, pickup, dropoff string, partySize int, hasPets bool) (*Ride, error) {
	now := time.Now()
	r := &Ride{
		ID:        id,
		Pickup:    strings.TrimSpace(pickup),
		Dropoff:   strings.TrimSpace(dropoff),
		PartySize: partySize,
		HasPets:   hasPets,
		Status:    RideStatusRequested,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks every field constraint and reports all violations.
func (r *Ride) Validate() error {
	var errs ValidationErrors
	if r.Pickup == "" {
		errs = append(errs, ValidationError{Field: "pickup", Message: "must not be empty"})
	}
	if r.Dropoff == "" {
		errs = append(errs, ValidationError{Field: "dropoff", Message: "must not be empty"})
	}
	if r.PartySize <= 0 {
		errs = append(errs, ValidationError{Field: "party_size", Message: "must be greater than zero"})
	}
	return errs.OrNil()
}

// CanTransitionTo reports whether moving to newStatus is a valid state change.
func (r *Ride) CanTransitionTo(newStatus RideStatus) bool {
	allowed, ok := validTransitions[r.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// TransitionTo attempts to move the ride to newStatus. On a forbidden move it
// returns *InvalidTransitionError and leaves the ride untouched. On success
// it records the milestone timestamp for the phase entered.
func (r *Ride) TransitionTo(newStatus RideStatus) error {
	if !r.CanTransitionTo(newStatus) {
		return &InvalidTransitionError{From: r.Status, To: newStatus}
	}
	r.Status = newStatus
	r.UpdatedAt = time.Now()

	switch newStatus {
	case RideStatusAssigned:
		r.AssignedAt = time.Now()
	case RideStatusInProgress:
		r.StartedAt = time.Now()
	case RideStatusCompleted:
		r.CompletedAt = time.Now()
	}
	return nil
}

// IsTerminal reports whether the ride has reached a state with no exits.
func (r *Ride) IsTerminal() bool {
	return len(validTransitions[r.Status]) == 0
}

// The following methods are convenience wrappers around TransitionTo, named
// for the action rather than the target state.

// Assign records the driver handling this ride and moves it to assigned.
func (r *Ride) Assign(driverID int) error {
	if err := r.TransitionTo(RideStatusAssigned); err != nil {
		return err
	}
	r.DriverID = driverID
	return nil
}

// Start moves the ride to in_progress (party is in the car).
func (r *Ride) Start() error {
	return r.TransitionTo(RideStatusInProgress)
}

// Complete moves the ride to completed.
func (r *Ride) Complete() error {
	return r.TransitionTo(RideStatusCompleted)
}

// Cancel moves the ride to cancelled from any non-terminal state.
func (r *Ride) Cancel() error {
	return r.TransitionTo(RideStatusCancelled)
}
