// Package services sits between the adapters (HTTP, console shell) and the
// collections. Services turn request DTOs into validated records, call the
// owning collection, and log the outcome. A service only ever touches its own
// collection — the three entity types stay independent.
package services

import (
	"context"

	"go.uber.org/zap"

	"ridebook/internal/collection"
	"ridebook/internal/domain/entities"
)

type DriverService struct {
	drivers *collection.DriverCollection
	log     *zap.Logger
}

func NewDriverService(drivers *collection.DriverCollection, log *zap.Logger) *DriverService {
	return &DriverService{
		drivers: drivers,
		log:     log,
	}
}

// CreateDriverRequest carries raw input for a new driver record. VehicleType
// is the raw string; parsing it is part of validation.
type CreateDriverRequest struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Capacity           int     `json:"capacity"`
	HandicapAccessible bool    `json:"handicap_accessible"`
	VehicleType        string  `json:"vehicle_type"`
	Rating             float64 `json:"rating"`
	Available          bool    `json:"available"`
	PetsAllowed        bool    `json:"pets_allowed"`
	Notes              string  `json:"notes"`
}

// Register validates the request, builds the record, and adds it to the
// collection. Returns ValidationErrors for bad input and
// collection.ErrDuplicateID for an id collision.
func (s *DriverService) Register(ctx context.Context, req CreateDriverRequest) (*entities.Driver, error) {
	vt, ok := entities.ParseVehicleType(req.VehicleType)
	if !ok {
		// Let the constructor collect this alongside any other field errors.
		vt = entities.VehicleType(req.VehicleType)
	}

	driver, err := entities.NewDriver(
		req.ID,
		req.Name,
		req.Capacity,
		req.HandicapAccessible,
		vt,
		req.Rating,
		req.Available,
		req.PetsAllowed,
		req.Notes,
	)
	if err != nil {
		return nil, err
	}

	if err := s.drivers.Add(ctx, driver); err != nil {
		return nil, err
	}

	s.log.Info("driver registered",
		zap.String("list", s.drivers.Name()),
		zap.Int("driver_id", driver.ID),
	)
	return driver, nil
}

// Get returns the driver with the given id, or collection.ErrDriverNotFound.
func (s *DriverService) Get(ctx context.Context, id int) (*entities.Driver, error) {
	return s.drivers.FindByID(ctx, id)
}

// List returns every driver in insertion order.
func (s *DriverService) List(ctx context.Context) []*entities.Driver {
	return s.drivers.ListAll(ctx)
}

// Count returns the number of driver records.
func (s *DriverService) Count() int {
	return s.drivers.Count()
}

// UpdateDriverRequest carries a partial update; nil fields are unchanged.
type UpdateDriverRequest struct {
	Name               *string  `json:"name"`
	Capacity           *int     `json:"capacity"`
	HandicapAccessible *bool    `json:"handicap_accessible"`
	VehicleType        *string  `json:"vehicle_type"`
	Rating             *float64 `json:"rating"`
	Available          *bool    `json:"available"`
	PetsAllowed        *bool    `json:"pets_allowed"`
	Notes              *string  `json:"notes"`
}

// Update applies a partial update to an existing driver. The updated record
// is re-validated before it is stored.
func (s *DriverService) Update(ctx context.Context, id int, req UpdateDriverRequest) (*entities.Driver, error) {
	u := entities.DriverUpdate{
		Name:               req.Name,
		Capacity:           req.Capacity,
		HandicapAccessible: req.HandicapAccessible,
		Rating:             req.Rating,
		Available:          req.Available,
		PetsAllowed:        req.PetsAllowed,
		Notes:              req.Notes,
	}
	if req.VehicleType != nil {
		vt, ok := entities.ParseVehicleType(*req.VehicleType)
		if !ok {
			vt = entities.VehicleType(*req.VehicleType) // rejected by Validate
		}
		u.VehicleType = &vt
	}

	driver, err := s.drivers.Update(ctx, id, u)
	if err != nil {
		return nil, err
	}

	s.log.Info("driver updated",
		zap.String("list", s.drivers.Name()),
		zap.Int("driver_id", id),
	)
	return driver, nil
}

// Remove deletes the driver with the given id.
func (s *DriverService) Remove(ctx context.Context, id int) error {
	if err := s.drivers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("driver removed",
		zap.String("list", s.drivers.Name()),
		zap.Int("driver_id", id),
	)
	return nil
}
