package services

import (
	"context"

	"go.uber.org/zap"

	"ridebook/internal/collection"
	"ridebook/internal/domain/entities"
)

type PassengerService struct {
	passengers *collection.PassengerCollection
	log        *zap.Logger
}

func NewPassengerService(passengers *collection.PassengerCollection, log *zap.Logger) *PassengerService {
	return &PassengerService{
		passengers: passengers,
		log:        log,
	}
}

// CreatePassengerRequest carries raw input for a new passenger record.
type CreatePassengerRequest struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Payment  string  `json:"payment"`
	Handicap bool    `json:"handicap"`
	Rating   float64 `json:"rating"`
	Pets     bool    `json:"pets"`
}

// Register validates the request, builds the record, and adds it to the
// collection.
func (s *PassengerService) Register(ctx context.Context, req CreatePassengerRequest) (*entities.Passenger, error) {
	pm, ok := entities.ParsePaymentMethod(req.Payment)
	if !ok {
		pm = entities.PaymentMethod(req.Payment) // rejected by the constructor
	}

	passenger, err := entities.NewPassenger(req.ID, req.Name, pm, req.Handicap, req.Rating, req.Pets)
	if err != nil {
		return nil, err
	}

	if err := s.passengers.Add(ctx, passenger); err != nil {
		return nil, err
	}

	s.log.Info("passenger registered",
		zap.String("list", s.passengers.Name()),
		zap.Int("passenger_id", passenger.ID),
	)
	return passenger, nil
}

// Get returns the passenger with the given id, or
// collection.ErrPassengerNotFound.
func (s *PassengerService) Get(ctx context.Context, id int) (*entities.Passenger, error) {
	return s.passengers.FindByID(ctx, id)
}

// List returns every passenger in insertion order.
func (s *PassengerService) List(ctx context.Context) []*entities.Passenger {
	return s.passengers.ListAll(ctx)
}

// Count returns the number of passenger records.
func (s *PassengerService) Count() int {
	return s.passengers.Count()
}

// UpdatePassengerRequest carries a partial update; nil fields are unchanged.
type UpdatePassengerRequest struct {
	Name     *string  `json:"name"`
	Payment  *string  `json:"payment"`
	Handicap *bool    `json:"handicap"`
	Rating   *float64 `json:"rating"`
	Pets     *bool    `json:"pets"`
}

// Update applies a partial update to an existing passenger.
func (s *PassengerService) Update(ctx context.Context, id int, req UpdatePassengerRequest) (*entities.Passenger, error) {
	u := entities.PassengerUpdate{
		Name:     req.Name,
		Handicap: req.Handicap,
		Rating:   req.Rating,
		Pets:     req.Pets,
	}
	if req.Payment != nil {
		pm, ok := entities.ParsePaymentMethod(*req.Payment)
		if !ok {
			pm = entities.PaymentMethod(*req.Payment) // rejected by Validate
		}
		u.Payment = &pm
	}

	passenger, err := s.passengers.Update(ctx, id, u)
	if err != nil {
		return nil, err
	}

	s.log.Info("passenger updated",
		zap.String("list", s.passengers.Name()),
		zap.Int("passenger_id", id),
	)
	return passenger, nil
}

// Remove deletes the passenger with the given id.
func (s *PassengerService) Remove(ctx context.Context, id int) error {
	if err := s.passengers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("passenger removed",
		zap.String("list", s.passengers.Name()),
		zap.Int("passenger_id", id),
	)
	return nil
}
