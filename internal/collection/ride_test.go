package collection

import (
	"context"
	"errors"
	"testing"

	"ridebook/internal/domain/entities"
)

func mustRide(t *testing.T, id int) *entities.Ride {
	t.Helper()
	r, err := entities.NewRide(id, "5th and Main", "Airport", 2, false)
	if err != nil {
		t.Fatalf("NewRide failed: %v", err)
	}
	return r
}

func setupRideCollection(t *testing.T) (*RideCollection, context.Context) {
	t.Helper()
	return NewRideCollection("Test rides"), context.Background()
}

func TestRideCollection_AddStartsRequested(t *testing.T) {
	c, ctx := setupRideCollection(t)

	if err := c.Add(ctx, mustRide(t, 1)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	ride, err := c.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if ride.Status != entities.RideStatusRequested {
		t.Errorf("Expected status requested, got %s", ride.Status)
	}
}

func TestRideCollection_SetStatusLifecycle(t *testing.T) {
	c, ctx := setupRideCollection(t)
	c.Add(ctx, mustRide(t, 1))

	if _, err := c.SetStatus(ctx, 1, entities.RideStatusAssigned); err != nil {
		t.Fatalf("requested -> assigned failed: %v", err)
	}
	if _, err := c.SetStatus(ctx, 1, entities.RideStatusInProgress); err != nil {
		t.Fatalf("assigned -> in_progress failed: %v", err)
	}
	ride, err := c.SetStatus(ctx, 1, entities.RideStatusCompleted)
	if err != nil {
		t.Fatalf("in_progress -> completed failed: %v", err)
	}
	if ride.Status != entities.RideStatusCompleted {
		t.Errorf("Expected completed, got %s", ride.Status)
	}
}

func TestRideCollection_SetStatusInvalidTransition(t *testing.T) {
	c, ctx := setupRideCollection(t)
	c.Add(ctx, mustRide(t, 1))

	// requested -> completed skips the whole lifecycle.
	_, err := c.SetStatus(ctx, 1, entities.RideStatusCompleted)
	var iterr *entities.InvalidTransitionError
	if !errors.As(err, &iterr) {
		t.Fatalf("Expected InvalidTransitionError, got %v", err)
	}

	// The stored record is untouched by the failed transition.
	ride, _ := c.FindByID(ctx, 1)
	if ride.Status != entities.RideStatusRequested {
		t.Errorf("Failed transition must not change the record, got %s", ride.Status)
	}
}

func TestRideCollection_CancelRules(t *testing.T) {
	c, ctx := setupRideCollection(t)
	c.Add(ctx, mustRide(t, 1))
	c.Add(ctx, mustRide(t, 2))

	// requested -> cancelled succeeds.
	if _, err := c.SetStatus(ctx, 1, entities.RideStatusCancelled); err != nil {
		t.Errorf("requested -> cancelled failed: %v", err)
	}

	// completed -> cancelled fails.
	c.SetStatus(ctx, 2, entities.RideStatusAssigned)
	c.SetStatus(ctx, 2, entities.RideStatusInProgress)
	c.SetStatus(ctx, 2, entities.RideStatusCompleted)
	_, err := c.SetStatus(ctx, 2, entities.RideStatusCancelled)
	var iterr *entities.InvalidTransitionError
	if !errors.As(err, &iterr) {
		t.Errorf("Expected InvalidTransitionError for completed -> cancelled, got %v", err)
	}
}

func TestRideCollection_Assign(t *testing.T) {
	c, ctx := setupRideCollection(t)
	c.Add(ctx, mustRide(t, 1))

	ride, err := c.Assign(ctx, 1, 42)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if ride.Status != entities.RideStatusAssigned || ride.DriverID != 42 {
		t.Errorf("Expected assigned ride with driver 42, got %+v", ride)
	}

	// A second assignment is an invalid transition; the driver is kept.
	if _, err := c.Assign(ctx, 1, 43); err == nil {
		t.Fatal("Expected second Assign to fail")
	}
	stored, _ := c.FindByID(ctx, 1)
	if stored.DriverID != 42 {
		t.Errorf("Failed assign must not change the driver, got %d", stored.DriverID)
	}
}

func TestRideCollection_NotFoundAndDuplicate(t *testing.T) {
	c, ctx := setupRideCollection(t)
	c.Add(ctx, mustRide(t, 1))

	if _, err := c.SetStatus(ctx, 9, entities.RideStatusCancelled); !errors.Is(err, ErrRideNotFound) {
		t.Errorf("Expected ErrRideNotFound, got %v", err)
	}
	if err := c.Add(ctx, mustRide(t, 1)); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID, got %v", err)
	}
	if c.Count() != 1 {
		t.Errorf("Expected count 1, got %d", c.Count())
	}
}
