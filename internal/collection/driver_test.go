package collection

import (
	"context"
	"errors"
	"testing"

	"ridebook/internal/domain/entities"
)

func mustDriver(t *testing.T, id int, name string) *entities.Driver {
	t.Helper()
	d, err := entities.NewDriver(id, name, 4, false, entities.VehicleSedan, 4.5, true, false, "")
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}
	return d
}

func TestDriverCollection_AddAndCount(t *testing.T) {
	c := NewDriverCollection("Test drivers")
	ctx := context.Background()

	if c.Count() != 0 {
		t.Errorf("Expected empty collection, got %d", c.Count())
	}

	for i := 1; i <= 5; i++ {
		if err := c.Add(ctx, mustDriver(t, i, "Driver")); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if c.Count() != 5 {
		t.Errorf("Expected count 5 after 5 adds, got %d", c.Count())
	}
	if c.Name() != "Test drivers" {
		t.Errorf("Expected list name to be kept, got %q", c.Name())
	}
}

func TestDriverCollection_DuplicateID(t *testing.T) {
	c := NewDriverCollection("Test drivers")
	ctx := context.Background()

	if err := c.Add(ctx, mustDriver(t, 1, "Ana")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	err := c.Add(ctx, mustDriver(t, 1, "Impostor"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID, got %v", err)
	}
	if c.Count() != 1 {
		t.Errorf("Rejected add must not change count, got %d", c.Count())
	}
	stored, _ := c.FindByID(ctx, 1)
	if stored.Name != "Ana" {
		t.Errorf("Rejected add must not replace the record, got %q", stored.Name)
	}
}

func TestDriverCollection_FindByID(t *testing.T) {
	c := NewDriverCollection("Test drivers")
	ctx := context.Background()

	d := mustDriver(t, 9, "Ana")
	c.Add(ctx, d)

	found, err := c.FindByID(ctx, 9)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Name != "Ana" {
		t.Errorf("Expected Ana, got %q", found.Name)
	}

	if _, err := c.FindByID(ctx, 99); !errors.Is(err, ErrDriverNotFound) {
		t.Errorf("Expected ErrDriverNotFound, got %v", err)
	}
}

func TestDriverCollection_ReturnsCopies(t *testing.T) {
	c := NewDriverCollection("Test drivers")
	ctx := context.Background()
	c.Add(ctx, mustDriver(t, 1, "Ana"))

	found, _ := c.FindByID(ctx, 1)
	found.Name = "mutated"

	again, _ := c.FindByID(ctx, 1)
	if again.Name != "Ana" {
		t.Errorf("Mutating a returned record must not touch the stored one, got %q", again.Name)
	}

	listed := c.ListAll(ctx)
	listed[0].Name = "mutated"
	again, _ = c.FindByID(ctx, 1)
	if again.Name != "Ana" {
		t.Errorf("Mutating a listed record must not touch the stored one, got %q", again.Name)
	}
}

func TestDriverCollection_Update(t *testing.T) {
	c := NewDriverCollection("Test drivers")
	ctx := context.Background()
	c.Add(ctx, mustDriver(t, 1, "Ana"))

	newRating := 3.5
	updated, err := c.Update(ctx, 1, entities.DriverUpdate{Rating: &newRating})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Rating != 3.5 {
		t.Errorf("Expected rating 3.5, got %.1f", updated.Rating)
	}

	// Invalid update leaves the stored record untouched.
	badRating := 0.5
	if _, err := c.Update(ctx, 1, entities.DriverUpdate{Rating: &badRating}); err == nil {
		t.Fatal("Expected invalid rating to be rejected")
	}
	stored, _ := c.FindByID(ctx, 1)
	if stored.Rating != 3.5 {
		t.Errorf("Rejected update must not change the record, got %.1f", stored.Rating)
	}

	if _, err := c.Update(ctx, 99, entities.DriverUpdate{Rating: &newRating}); !errors.Is(err, ErrDriverNotFound) {
		t.Errorf("Expected ErrDriverNotFound, got %v", err)
	}
}

func TestDriverCollection_DeletePreservesOrder(t *testing.T) {
	c := NewDriverCollection("Test drivers")
	ctx := context.Background()
	for i := 1; i <= 4; i++ {
		c.Add(ctx, mustDriver(t, i, "Driver"))
	}

	if err := c.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if c.Count() != 3 {
		t.Errorf("Expected count 3 after delete, got %d", c.Count())
	}

	ids := []int{}
	for _, d := range c.ListAll(ctx) {
		ids = append(ids, d.ID)
	}
	want := []int{1, 3, 4}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("Expected survivors in order %v, got %v", want, ids)
		}
	}

	if err := c.Delete(ctx, 2); !errors.Is(err, ErrDriverNotFound) {
		t.Errorf("Expected ErrDriverNotFound on second delete, got %v", err)
	}
}
