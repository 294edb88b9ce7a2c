package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ridebook/internal/collection"
	"ridebook/internal/domain/entities"
)

type RideService struct {
	rides *collection.RideCollection
	log   *zap.Logger
}

func NewRideService(rides *collection.RideCollection, log *zap.Logger) *RideService {
	return &RideService{
		rides: rides,
		log:   log,
	}
}

// CreateRideRequest carries raw input for a new ride record. The ride always
// opens in the requested state; status is not an input.
type CreateRideRequest struct {
	ID        int    `json:"id"`
	Pickup    string `json:"pickup"`
	Dropoff   string `json:"dropoff"`
	PartySize int    `json:"party_size"`
	HasPets   bool   `json:"has_pets"`
}

// Open validates the request and adds a new ride in the requested state.
func (s *RideService) Open(ctx context.Context, req CreateRideRequest) (*entities.Ride, error) {
	ride, err := entities.NewRide(req.ID, req.Pickup, req.Dropoff, req.PartySize, req.HasPets)
	if err != nil {
		return nil, err
	}

	if err := s.rides.Add(ctx, ride); err != nil {
		return nil, err
	}

	s.log.Info("ride opened",
		zap.String("list", s.rides.Name()),
		zap.Int("ride_id", ride.ID),
	)
	return ride, nil
}

// Get returns the ride with the given id, or collection.ErrRideNotFound.
func (s *RideService) Get(ctx context.Context, id int) (*entities.Ride, error) {
	return s.rides.FindByID(ctx, id)
}

// List returns every ride in insertion order.
func (s *RideService) List(ctx context.Context) []*entities.Ride {
	return s.rides.ListAll(ctx)
}

// Count returns the number of ride records.
func (s *RideService) Count() int {
	return s.rides.Count()
}

// SetStatus parses the raw status and asks the collection to transition the
// ride. An unknown status is a validation error; a known status the state
// machine forbids surfaces as *entities.InvalidTransitionError.
func (s *RideService) SetStatus(ctx context.Context, id int, status string) (*entities.Ride, error) {
	st, ok := entities.ParseRideStatus(status)
	if !ok {
		return nil, entities.ValidationErrors{{
			Field:   "status",
			Message: fmt.Sprintf("unrecognized value %q", status),
		}}
	}

	ride, err := s.rides.SetStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}

	s.log.Info("ride status changed",
		zap.String("list", s.rides.Name()),
		zap.Int("ride_id", id),
		zap.String("status", string(st)),
	)
	return ride, nil
}

// Assign records a driver on the ride and moves it to assigned. The driver id
// is recorded as given; ride records never reference the driver collection.
func (s *RideService) Assign(ctx context.Context, id, driverID int) (*entities.Ride, error) {
	ride, err := s.rides.Assign(ctx, id, driverID)
	if err != nil {
		return nil, err
	}

	s.log.Info("ride assigned",
		zap.String("list", s.rides.Name()),
		zap.Int("ride_id", id),
		zap.Int("driver_id", driverID),
	)
	return ride, nil
}

// Remove deletes the ride with the given id.
func (s *RideService) Remove(ctx context.Context, id int) error {
	if err := s.rides.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("ride removed",
		zap.String("list", s.rides.Name()),
		zap.Int("ride_id", id),
	)
	return nil
}
