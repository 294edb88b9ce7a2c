// Package collection holds the named, in-memory record collections that form
// the core of the record keeper. Each collection wraps an ordered list of one
// record type plus a human-readable list name, and owns every add/query/update
// operation for that type.
//
// Invariants shared by all collections:
//   - records keep insertion order; ListAll and FindByID observe it
//   - record ids are unique within a collection; Add rejects duplicates
//   - records are handed out as copies; mutation goes through Update/SetStatus
//   - one RWMutex per collection instance, never a shared lock — the three
//     collections are independent
package collection

import "errors"

var (
	ErrDuplicateID       = errors.New("record with this id already exists")
	ErrDriverNotFound    = errors.New("driver not found")
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrRideNotFound      = errors.New("ride not found")
)
