package collection

import (
	"context"
	"sync"

	"ridebook/internal/domain/entities"
)

// DriverCollection is a named, ordered list of driver records.
type DriverCollection struct {
	mu      sync.RWMutex
	name    string
	drivers []*entities.Driver
}

// NewDriverCollection creates an empty collection with a display name.
func NewDriverCollection(name string) *DriverCollection {
	return &DriverCollection{name: name}
}

// Name returns the human-readable list name given at construction.
func (c *DriverCollection) Name() string {
	return c.name
}

// Add appends a copy of the record, preserving insertion order. It fails with
// ErrDuplicateID when a record with the same id is already present; nothing
// is stored in that case.
func (c *DriverCollection) Add(ctx context.Context, d *entities.Driver) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(d.ID) >= 0 {
		return ErrDuplicateID
	}
	cp := *d
	c.drivers = append(c.drivers, &cp)
	return nil
}

// Count returns the number of stored records.
func (c *DriverCollection) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.drivers)
}

// ListAll returns copies of every record in insertion order. Each call builds
// a fresh slice, so traversals are independent and restartable.
func (c *DriverCollection) ListAll(ctx context.Context) []*entities.Driver {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*entities.Driver, len(c.drivers))
	for i, d := range c.drivers {
		cp := *d
		out[i] = &cp
	}
	return out
}

// FindByID returns a copy of the first record whose id matches, or
// ErrDriverNotFound.
func (c *DriverCollection) FindByID(ctx context.Context, id int) (*entities.Driver, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrDriverNotFound
	}
	cp := *c.drivers[i]
	return &cp, nil
}

// Update applies a partial update to the record with the given id. The result
// is re-validated before it replaces the stored record; an invalid update
// leaves the record unchanged and returns the validation error.
func (c *DriverCollection) Update(ctx context.Context, id int, u entities.DriverUpdate) (*entities.Driver, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrDriverNotFound
	}
	cp := *c.drivers[i]
	cp.Apply(u)
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	*c.drivers[i] = cp
	out := cp
	return &out, nil
}

// Delete removes the record with the given id, preserving the order of the
// remaining records, or returns ErrDriverNotFound.
func (c *DriverCollection) Delete(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return ErrDriverNotFound
	}
	c.drivers = append(c.drivers[:i], c.drivers[i+1:]...)
	return nil
}

// indexOf scans for the first record with the given id. O(n), which is fine
// at this scale — an id index would have to be rebuilt on every Delete.
// Callers must hold the lock.
func (c *DriverCollection) indexOf(id int) int {
	for i, d := range c.drivers {
		if d.ID == id {
			return i
		}
	}
	return -1
}
