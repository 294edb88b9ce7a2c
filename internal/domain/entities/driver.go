// Package entities defines the record types for the ride-sharing record
// keeper (Driver, Passenger, Ride) and their validation rules. These structs
// are the innermost layer of the application — they have no dependencies on
// HTTP, the console shell, or anything else above them.
package entities

import (
	"fmt"
	"strings"
	"time"
)

// VehicleType is a typed string enum for the kind of vehicle a driver operates.
type VehicleType string

const (
	VehicleCompact  VehicleType = "compact"
	VehicleTwoDoor  VehicleType = "2-door"
	VehicleSedan    VehicleType = "sedan"
	VehicleFourDoor VehicleType = "4-door"
	VehicleSUV      VehicleType = "suv"
	VehicleVan      VehicleType = "van"
	VehicleOther    VehicleType = "other"
)

// VehicleTypes lists every accepted value, in the order prompts present them.
var VehicleTypes = []VehicleType{
	VehicleCompact,
	VehicleTwoDoor,
	VehicleSedan,
	VehicleFourDoor,
	VehicleSUV,
	VehicleVan,
	VehicleOther,
}

// ParseVehicleType matches s against the known vehicle types, ignoring case.
func ParseVehicleType(s string) (VehicleType, bool) {
	v := VehicleType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range VehicleTypes {
		if v == t {
			return t, true
		}
	}
	return "", false
}

// Driver is a single driver/vehicle record.
type Driver struct {
	ID                 int         `json:"id"`
	Name               string      `json:"name"`
	Capacity           int         `json:"capacity"`
	HandicapAccessible bool        `json:"handicap_accessible"`
	VehicleType        VehicleType `json:"vehicle_type"`
	Rating             float64     `json:"rating"`
	Available          bool        `json:"available"`
	PetsAllowed        bool        `json:"pets_allowed"`
	Notes              string      `json:"notes,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// NewDriver builds a validated Driver. Invalid input returns ValidationErrors
// and no record — invalid values are never constructed, so they can never be
// stored.
func NewDriver(id int, name string, capacity int, handicapAccessible bool, vehicleType VehicleType, rating float64, available, petsAllowed bool, notes string) (*Driver, error) {
	now := time.Now()
	d := &Driver{
		ID:                 id,
		Name:               strings.TrimSpace(name),
		Capacity:           capacity,
		HandicapAccessible: handicapAccessible,
		VehicleType:        vehicleType,
		Rating:             rating,
		Available:          available,
		PetsAllowed:        petsAllowed,
		Notes:              notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks every field constraint and reports all violations.
func (d *Driver) Validate() error {
	var errs ValidationErrors
	if d.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "must not be empty"})
	}
	if d.Capacity <= 0 {
		errs = append(errs, ValidationError{Field: "capacity", Message: "must be greater than zero"})
	}
	if _, ok := ParseVehicleType(string(d.VehicleType)); !ok {
		errs = append(errs, ValidationError{Field: "vehicle_type", Message: fmt.Sprintf("unrecognized value %q", d.VehicleType)})
	}
	if !validRating(d.Rating) {
		errs = append(errs, ValidationError{Field: "rating", Message: fmt.Sprintf("must be between %.1f and %.1f", MinRating, MaxRating)})
	}
	return errs.OrNil()
}

// DriverUpdate carries a partial update. Nil fields are left unchanged.
type DriverUpdate struct {
	Name               *string      `json:"name,omitempty"`
	Capacity           *int         `json:"capacity,omitempty"`
	HandicapAccessible *bool        `json:"handicap_accessible,omitempty"`
	VehicleType        *VehicleType `json:"vehicle_type,omitempty"`
	Rating             *float64     `json:"rating,omitempty"`
	Available          *bool        `json:"available,omitempty"`
	PetsAllowed        *bool        `json:"pets_allowed,omitempty"`
	Notes              *string      `json:"notes,omitempty"`
}

// Apply overwrites the set fields and bumps UpdatedAt. The caller is expected
// to Validate the result before committing it anywhere.
func (d *Driver) Apply(u DriverUpdate) {
	if u.Name != nil {
		d.Name = strings.TrimSpace(*u.Name)
	}
	if u.Capacity != nil {
		d.Capacity = *u.Capacity
	}
	if u.HandicapAccessible != nil {
		d.HandicapAccessible = *u.HandicapAccessible
	}
	if u.VehicleType != nil {
		d.VehicleType = *u.VehicleType
	}
	if u.Rating != nil {
		d.Rating = *u.Rating
	}
	if u.Available != nil {
		d.Available = *u.Available
	}
	if u.PetsAllowed != nil {
		d.PetsAllowed = *u.PetsAllowed
	}
	if u.Notes != nil {
		d.Notes = *u.Notes
	}
	d.UpdatedAt = time.Now()
}
