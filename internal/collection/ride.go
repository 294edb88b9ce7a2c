package collection

import (
	"context"
	"sync"

	"ridebook/internal/domain/entities"
)

// RideCollection is a named, ordered list of ride records. On top of the
// shared collection operations it owns the status lifecycle: every transition
// goes through SetStatus (or the Assign shortcut) so the state machine in
// entities.Ride is the only path a status change can take.
type RideCollection struct {
	mu    sync.RWMutex
	name  string
	rides []*entities.Ride
}

// NewRideCollection creates an empty collection with a display name.
func NewRideCollection(name string) *RideCollection {
	return &RideCollection{name: name}
}

// Name returns the human-readable list name given at construction.
func (c *RideCollection) Name() string {
	return c.name
}

// Add appends a copy of the record, preserving insertion order. Rides enter
// in the requested state — entities.NewRide guarantees that for any record it
// builds. Fails with ErrDuplicateID when the id is already present.
func (c *RideCollection) Add(ctx context.Context, r *entities.Ride) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(r.ID) >= 0 {
		return ErrDuplicateID
	}
	cp := *r
	c.rides = append(c.rides, &cp)
	return nil
}

// Count returns the number of stored records.
func (c *RideCollection) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.rides)
}

// ListAll returns copies of every record in insertion order, as a fresh slice
// on every call.
func (c *RideCollection) ListAll(ctx context.Context) []*entities.Ride {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*entities.Ride, len(c.rides))
	for i, r := range c.rides {
		cp := *r
		out[i] = &cp
	}
	return out
}

// FindByID returns a copy of the first record whose id matches, or
// ErrRideNotFound.
func (c *RideCollection) FindByID(ctx context.Context, id int) (*entities.Ride, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrRideNotFound
	}
	cp := *c.rides[i]
	return &cp, nil
}

// SetStatus transitions the ride to status. A move the state machine forbids
// returns *entities.InvalidTransitionError and leaves the stored record
// untouched.
func (c *RideCollection) SetStatus(ctx context.Context, id int, status entities.RideStatus) (*entities.Ride, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrRideNotFound
	}
	cp := *c.rides[i]
	if err := cp.TransitionTo(status); err != nil {
		return nil, err
	}
	*c.rides[i] = cp
	out := cp
	return &out, nil
}

// Assign records the driver handling the ride and transitions it to assigned.
// The driver id is taken at face value — the ride collection never consults
// the driver collection.
func (c *RideCollection) Assign(ctx context.Context, id, driverID int) (*entities.Ride, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrRideNotFound
	}
	cp := *c.rides[i]
	if err := cp.Assign(driverID); err != nil {
		return nil, err
	}
	*c.rides[i] = cp
	out := cp
	return &out, nil
}

// Delete removes the record with the given id, preserving the order of the
// remaining records, or returns ErrRideNotFound.
func (c *RideCollection) Delete(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return ErrRideNotFound
	}
	c.rides = append(c.rides[:i], c.rides[i+1:]...)
	return nil
}

func (c *RideCollection) indexOf(id int) int {
	for i, r := range c.rides {
		if r.ID == id {
			return i
		}
	}
	return -1
}
