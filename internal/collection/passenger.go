package collection

import (
	"context"
	"sync"

	"ridebook/internal/domain/entities"
)

// PassengerCollection is a named, ordered list of passenger records.
type PassengerCollection struct {
	mu         sync.RWMutex
	name       string
	passengers []*entities.Passenger
}

// NewPassengerCollection creates an empty collection with a display name.
func NewPassengerCollection(name string) *PassengerCollection {
	return &PassengerCollection{name: name}
}

// Name returns the human-readable list name given at construction.
func (c *PassengerCollection) Name() string {
	return c.name
}

// Add appends a copy of the record, preserving insertion order. It fails with
// ErrDuplicateID when a record with the same id is already present.
func (c *PassengerCollection) Add(ctx context.Context, p *entities.Passenger) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(p.ID) >= 0 {
		return ErrDuplicateID
	}
	cp := *p
	c.passengers = append(c.passengers, &cp)
	return nil
}

// Count returns the number of stored records.
func (c *PassengerCollection) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.passengers)
}

// ListAll returns copies of every record in insertion order, as a fresh slice
// on every call.
func (c *PassengerCollection) ListAll(ctx context.Context) []*entities.Passenger {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*entities.Passenger, len(c.passengers))
	for i, p := range c.passengers {
		cp := *p
		out[i] = &cp
	}
	return out
}

// FindByID returns a copy of the first record whose id matches, or
// ErrPassengerNotFound.
func (c *PassengerCollection) FindByID(ctx context.Context, id int) (*entities.Passenger, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrPassengerNotFound
	}
	cp := *c.passengers[i]
	return &cp, nil
}

// Update applies a partial update to the record with the given id. The result
// is re-validated before it replaces the stored record.
func (c *PassengerCollection) Update(ctx context.Context, id int, u entities.PassengerUpdate) (*entities.Passenger, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrPassengerNotFound
	}
	cp := *c.passengers[i]
	cp.Apply(u)
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	*c.passengers[i] = cp
	out := cp
	return &out, nil
}

// Delete removes the record with the given id, preserving the order of the
// remaining records, or returns ErrPassengerNotFound.
func (c *PassengerCollection) Delete(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return ErrPassengerNotFound
	}
	c.passengers = append(c.passengers[:i], c.passengers[i+1:]...)
	return nil
}

func (c *PassengerCollection) indexOf(id int) int {
	for i, p := range c.passengers {
		if p.ID == id {
			return i
		}
	}
	return -1
}
