package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"ridebook/internal/collection"
	"ridebook/internal/domain/entities"
)

func runShell(t *testing.T, script string) (string, *collection.DriverCollection, *collection.PassengerCollection, *collection.RideCollection) {
	t.Helper()

	drivers := collection.NewDriverCollection("Drivers")
	passengers := collection.NewPassengerCollection("Passengers")
	rides := collection.NewRideCollection("Rides")

	out := &bytes.Buffer{}
	shell := NewShell(strings.NewReader(script), out, 3, drivers, passengers, rides)
	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v\noutput:\n%s", err, out.String())
	}
	return out.String(), drivers, passengers, rides
}

func TestShell_AddPassengerAndFind(t *testing.T) {
	script := strings.Join([]string{
		"My fleet", // registry name
		"p",        // add passenger
		"7",        // id
		"Bo",       // name
		"cash",     // payment
		"no",       // handicap
		"3.0",      // rating
		"yes",      // pets
		"c",        // counts
		"f",        // find by id
		"passengers",
		"7",
		"q",
	}, "\n") + "\n"

	out, _, passengers, _ := runShell(t, script)

	if !strings.Contains(out, "=== My fleet ===") {
		t.Error("Expected the registry banner")
	}
	if !strings.Contains(out, "passenger 7 added to Passengers (1 total)") {
		t.Errorf("Expected add confirmation, output:\n%s", out)
	}
	if !strings.Contains(out, "Passengers: 1") {
		t.Errorf("Expected counts line, output:\n%s", out)
	}
	if !strings.Contains(out, "#7 Bo") {
		t.Errorf("Expected found record to be printed, output:\n%s", out)
	}

	bo, err := passengers.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("Passenger not stored: %v", err)
	}
	if bo.Payment != entities.PaymentCash || !bo.Pets {
		t.Errorf("Stored record wrong: %+v", bo)
	}
}

func TestShell_AddDriver(t *testing.T) {
	script := strings.Join([]string{
		"",      // registry name defaults
		"d",     // add driver
		"1",     // id
		"Ana",   // name
		"4",     // capacity
		"no",    // handicap accessible
		"sedan", // vehicle type
		"4.5",   // rating
		"yes",   // available
		"no",    // pets allowed
		"",      // notes
		"q",
	}, "\n") + "\n"

	out, drivers, _, _ := runShell(t, script)

	if !strings.Contains(out, "=== Ride records ===") {
		t.Error("Expected the default banner name")
	}
	if drivers.Count() != 1 {
		t.Fatalf("Expected 1 driver, got %d", drivers.Count())
	}
	ana, _ := drivers.FindByID(context.Background(), 1)
	if ana.Name != "Ana" || ana.VehicleType != entities.VehicleSedan || ana.Rating != 4.5 {
		t.Errorf("Stored record wrong: %+v", ana)
	}
}

func TestShell_AbortedFlowStoresNothing(t *testing.T) {
	script := strings.Join([]string{
		"My fleet",
		"p",    // add passenger
		"7",    // id
		"Bo",   // name
		"cash", // payment
		"no",   // handicap
		"9",    // rating, invalid three times -> abort
		"0.5",
		"abc",
		"c", // next command still works
		"q",
	}, "\n") + "\n"

	out, _, passengers, _ := runShell(t, script)

	if !strings.Contains(out, "aborted: too many invalid attempts") {
		t.Errorf("Expected abort message, output:\n%s", out)
	}
	if passengers.Count() != 0 {
		t.Errorf("Aborted flow must store nothing, count %d", passengers.Count())
	}
	if !strings.Contains(out, "Passengers: 0") {
		t.Errorf("Expected the loop to continue after the abort, output:\n%s", out)
	}
}

func TestShell_RideLifecycle(t *testing.T) {
	script := strings.Join([]string{
		"My fleet",
		"r", // request ride
		"3",
		"5th and Main",
		"Airport",
		"2",
		"no",
		"a", // assign
		"3",
		"42",
		"s", // set status
		"3",
		"in_progress",
		"s", // invalid: in_progress -> assigned
		"3",
		"assigned",
		"q",
	}, "\n") + "\n"

	out, _, _, rides := runShell(t, script)

	if !strings.Contains(out, "ride 3 requested") {
		t.Errorf("Expected request confirmation, output:\n%s", out)
	}
	if !strings.Contains(out, "ride 3 assigned to driver 42") {
		t.Errorf("Expected assign confirmation, output:\n%s", out)
	}
	if !strings.Contains(out, "not changed: invalid status transition") {
		t.Errorf("Expected invalid transition message, output:\n%s", out)
	}

	ride, _ := rides.FindByID(context.Background(), 3)
	if ride.Status != entities.RideStatusInProgress {
		t.Errorf("Expected ride to stay in_progress, got %s", ride.Status)
	}
}

func TestShell_DeleteRecord(t *testing.T) {
	script := strings.Join([]string{
		"My fleet",
		"r",
		"3",
		"A",
		"B",
		"1",
		"no",
		"x", // delete
		"rides",
		"3",
		"q",
	}, "\n") + "\n"

	out, _, _, rides := runShell(t, script)

	if !strings.Contains(out, "deleted 3 from rides") {
		t.Errorf("Expected delete confirmation, output:\n%s", out)
	}
	if rides.Count() != 0 {
		t.Errorf("Expected empty ride collection, got %d", rides.Count())
	}
}

func TestShell_QuitOnEOF(t *testing.T) {
	// Input ends without q; the shell exits cleanly.
	_, _, _, _ = runShell(t, "My fleet\nc\n")
}
