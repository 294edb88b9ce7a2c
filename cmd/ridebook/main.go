// Command ridebook runs the interactive console shell over the in-memory
// record collections. Everything lives in memory for the life of the process.
package main

import (
	"context"
	"fmt"
	"os"

	"ridebook/internal/cli"
	"ridebook/internal/collection"
	"ridebook/internal/config"
)

func main() {
	cfg := config.Load()

	drivers := collection.NewDriverCollection(cfg.Registry.DriverListName)
	passengers := collection.NewPassengerCollection(cfg.Registry.PassengerListName)
	rides := collection.NewRideCollection(cfg.Registry.RideListName)

	shell := cli.NewShell(os.Stdin, os.Stdout, cfg.CLI.MaxPromptAttempts, drivers, passengers, rides)
	if err := shell.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
