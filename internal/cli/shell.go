package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ridebook/internal/collection"
	"ridebook/internal/domain/entities"
)

// Shell is the interactive menu loop. It owns no record semantics — every
// command builds input, calls a collection, and prints the outcome.
type Shell struct {
	prompt     *Prompter
	out        io.Writer
	drivers    *collection.DriverCollection
	passengers *collection.PassengerCollection
	rides      *collection.RideCollection
}

func NewShell(
	in io.Reader,
	out io.Writer,
	maxAttempts int,
	drivers *collection.DriverCollection,
	passengers *collection.PassengerCollection,
	rides *collection.RideCollection,
) *Shell {
	return &Shell{
		prompt:     NewPrompter(in, out, maxAttempts),
		out:        out,
		drivers:    drivers,
		passengers: passengers,
		rides:      rides,
	}
}

// Run prompts for a registry display name, then loops on the menu until the
// user enters q or input ends.
func (s *Shell) Run(ctx context.Context) error {
	name, err := s.prompt.Line("Registry name")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if name == "" {
		name = "Ride records"
	}
	fmt.Fprintf(s.out, "=== %s ===\n", name)

	for {
		s.printMenu()
		cmd, err := s.prompt.Line("command")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		cmd = strings.ToLower(cmd)

		if cmd == "q" {
			fmt.Fprintln(s.out, "bye")
			return nil
		}
		if err := s.dispatch(ctx, cmd); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, ErrTooManyAttempts) {
				fmt.Fprintln(s.out, "aborted: too many invalid attempts, nothing was saved")
				continue
			}
			return err
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "[d] add driver     [p] add passenger  [r] request ride")
	fmt.Fprintln(s.out, "[a] assign ride    [s] set ride status")
	fmt.Fprintln(s.out, "[c] counts         [l] list records   [f] find by id")
	fmt.Fprintln(s.out, "[x] delete record  [q] quit")
}

func (s *Shell) dispatch(ctx context.Context, cmd string) error {
	switch cmd {
	case "d":
		return s.addDriver(ctx)
	case "p":
		return s.addPassenger(ctx)
	case "r":
		return s.requestRide(ctx)
	case "a":
		return s.assignRide(ctx)
	case "s":
		return s.setRideStatus(ctx)
	case "c":
		s.printCounts()
		return nil
	case "l":
		return s.listRecords(ctx)
	case "f":
		return s.findRecord(ctx)
	case "x":
		return s.deleteRecord(ctx)
	default:
		fmt.Fprintf(s.out, "unknown command %q\n", cmd)
		return nil
	}
}

func (s *Shell) addDriver(ctx context.Context) error {
	id, err := s.prompt.Int("driver id")
	if err != nil {
		return err
	}
	name, err := s.prompt.Line("name")
	if err != nil {
		return err
	}
	capacity, err := s.prompt.PositiveInt("vehicle capacity")
	if err != nil {
		return err
	}
	handicap, err := s.prompt.Bool("handicap accessible")
	if err != nil {
		return err
	}
	vtype, err := s.prompt.Choice("vehicle type", vehicleOptions())
	if err != nil {
		return err
	}
	rating, err := s.prompt.FloatInRange("rating", entities.MinRating, entities.MaxRating)
	if err != nil {
		return err
	}
	available, err := s.prompt.Bool("available")
	if err != nil {
		return err
	}
	pets, err := s.prompt.Bool("pets allowed")
	if err != nil {
		return err
	}
	notes, err := s.prompt.Line("notes")
	if err != nil {
		return err
	}

	vt, _ := entities.ParseVehicleType(vtype)
	driver, err := entities.NewDriver(id, name, capacity, handicap, vt, rating, available, pets, notes)
	if err != nil {
		fmt.Fprintf(s.out, "not saved: %v\n", err)
		return nil
	}
	if err := s.drivers.Add(ctx, driver); err != nil {
		fmt.Fprintf(s.out, "not saved: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "driver %d added to %s (%d total)\n", driver.ID, s.drivers.Name(), s.drivers.Count())
	return nil
}

func (s *Shell) addPassenger(ctx context.Context) error {
	id, err := s.prompt.Int("passenger id")
	if err != nil {
		return err
	}
	name, err := s.prompt.Line("name")
	if err != nil {
		return err
	}
	payment, err := s.prompt.Choice("payment method", paymentOptions())
	if err != nil {
		return err
	}
	handicap, err := s.prompt.Bool("handicap")
	if err != nil {
		return err
	}
	rating, err := s.prompt.FloatInRange("rating", entities.MinRating, entities.MaxRating)
	if err != nil {
		return err
	}
	pets, err := s.prompt.Bool("pets")
	if err != nil {
		return err
	}

	pm, _ := entities.ParsePaymentMethod(payment)
	passenger, err := entities.NewPassenger(id, name, pm, handicap, rating, pets)
	if err != nil {
		fmt.Fprintf(s.out, "not saved: %v\n", err)
		return nil
	}
	if err := s.passengers.Add(ctx, passenger); err != nil {
		fmt.Fprintf(s.out, "not saved: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "passenger %d added to %s (%d total)\n", passenger.ID, s.passengers.Name(), s.passengers.Count())
	return nil
}

func (s *Shell) requestRide(ctx context.Context) error {
	id, err := s.prompt.Int("ride id")
	if err != nil {
		return err
	}
	pickup, err := s.prompt.Line("pickup location")
	if err != nil {
		return err
	}
	dropoff, err := s.prompt.Line("dropoff location")
	if err != nil {
		return err
	}
	partySize, err := s.prompt.PositiveInt("party size")
	if err != nil {
		return err
	}
	pets, err := s.prompt.Bool("traveling with pets")
	if err != nil {
		return err
	}

	ride, err := entities.NewRide(id, pickup, dropoff, partySize, pets)
	if err != nil {
		fmt.Fprintf(s.out, "not saved: %v\n", err)
		return nil
	}
	if err := s.rides.Add(ctx, ride); err != nil {
		fmt.Fprintf(s.out, "not saved: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "ride %d requested in %s (%d total)\n", ride.ID, s.rides.Name(), s.rides.Count())
	return nil
}

func (s *Shell) assignRide(ctx context.Context) error {
	rideID, err := s.prompt.Int("ride id")
	if err != nil {
		return err
	}
	driverID, err := s.prompt.Int("driver id")
	if err != nil {
		return err
	}

	ride, err := s.rides.Assign(ctx, rideID, driverID)
	if err != nil {
		fmt.Fprintf(s.out, "not assigned: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "ride %d assigned to driver %d\n", ride.ID, ride.DriverID)
	return nil
}

func (s *Shell) setRideStatus(ctx context.Context) error {
	rideID, err := s.prompt.Int("ride id")
	if err != nil {
		return err
	}
	status, err := s.prompt.Choice("new status", statusOptions())
	if err != nil {
		return err
	}

	st, _ := entities.ParseRideStatus(status)
	ride, err := s.rides.SetStatus(ctx, rideID, st)
	if err != nil {
		fmt.Fprintf(s.out, "not changed: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "ride %d is now %s\n", ride.ID, ride.Status)
	return nil
}

func (s *Shell) printCounts() {
	fmt.Fprintf(s.out, "%s: %d\n", s.drivers.Name(), s.drivers.Count())
	fmt.Fprintf(s.out, "%s: %d\n", s.passengers.Name(), s.passengers.Count())
	fmt.Fprintf(s.out, "%s: %d\n", s.rides.Name(), s.rides.Count())
}

func (s *Shell) listRecords(ctx context.Context) error {
	which, err := s.prompt.Choice("which list", []string{"drivers", "passengers", "rides"})
	if err != nil {
		return err
	}

	switch which {
	case "drivers":
		records := s.drivers.ListAll(ctx)
		fmt.Fprintf(s.out, "%s (%d)\n", s.drivers.Name(), len(records))
		for _, d := range records {
			s.printDriver(d)
		}
	case "passengers":
		records := s.passengers.ListAll(ctx)
		fmt.Fprintf(s.out, "%s (%d)\n", s.passengers.Name(), len(records))
		for _, p := range records {
			s.printPassenger(p)
		}
	case "rides":
		records := s.rides.ListAll(ctx)
		fmt.Fprintf(s.out, "%s (%d)\n", s.rides.Name(), len(records))
		for _, r := range records {
			s.printRide(r)
		}
	}
	return nil
}

func (s *Shell) findRecord(ctx context.Context) error {
	which, err := s.prompt.Choice("which list", []string{"drivers", "passengers", "rides"})
	if err != nil {
		return err
	}
	id, err := s.prompt.Int("id")
	if err != nil {
		return err
	}

	switch which {
	case "drivers":
		d, err := s.drivers.FindByID(ctx, id)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return nil
		}
		s.printDriver(d)
	case "passengers":
		p, err := s.passengers.FindByID(ctx, id)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return nil
		}
		s.printPassenger(p)
	case "rides":
		r, err := s.rides.FindByID(ctx, id)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return nil
		}
		s.printRide(r)
	}
	return nil
}

func (s *Shell) deleteRecord(ctx context.Context) error {
	which, err := s.prompt.Choice("which list", []string{"drivers", "passengers", "rides"})
	if err != nil {
		return err
	}
	id, err := s.prompt.Int("id")
	if err != nil {
		return err
	}

	switch which {
	case "drivers":
		err = s.drivers.Delete(ctx, id)
	case "passengers":
		err = s.passengers.Delete(ctx, id)
	case "rides":
		err = s.rides.Delete(ctx, id)
	}
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}
	fmt.Fprintf(s.out, "deleted %d from %s\n", id, which)
	return nil
}

func (s *Shell) printDriver(d *entities.Driver) {
	fmt.Fprintf(s.out, "  #%d %s | %s, seats %d | rating %.1f | available %s | accessible %s | pets %s | %s\n",
		d.ID, d.Name, d.VehicleType, d.Capacity, d.Rating,
		yesNo(d.Available), yesNo(d.HandicapAccessible), yesNo(d.PetsAllowed), d.Notes)
}

func (s *Shell) printPassenger(p *entities.Passenger) {
	fmt.Fprintf(s.out, "  #%d %s | pays by %s | rating %.1f | handicap %s | pets %s\n",
		p.ID, p.Name, p.Payment, p.Rating, yesNo(p.Handicap), yesNo(p.Pets))
}

func (s *Shell) printRide(r *entities.Ride) {
	driver := "unassigned"
	if r.DriverID != 0 {
		driver = fmt.Sprintf("driver %d", r.DriverID)
	}
	fmt.Fprintf(s.out, "  #%d %s -> %s | party of %d | pets %s | %s | %s\n",
		r.ID, r.Pickup, r.Dropoff, r.PartySize, yesNo(r.HasPets), r.Status, driver)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func vehicleOptions() []string {
	opts := make([]string, len(entities.VehicleTypes))
	for i, t := range entities.VehicleTypes {
		opts[i] = string(t)
	}
	return opts
}

func paymentOptions() []string {
	opts := make([]string, len(entities.PaymentMethods))
	for i, m := range entities.PaymentMethods {
		opts[i] = string(m)
	}
	return opts
}

func statusOptions() []string {
	opts := make([]string, len(entities.RideStatuses))
	for i, st := range entities.RideStatuses {
		opts[i] = string(st)
	}
	return opts
}
