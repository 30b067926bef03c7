// Command routecli is the command-line front end for the EV Route Planner.
//
// It runs the planning core directly against the local network datasets, so
// no server is needed:
//
//	routecli route --start Mumbai --end Goa --capacity 400
//	routecli cities
//	routecli networks
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/evroute/ev-route-planner/planner/config"
	"github.com/evroute/ev-route-planner/planner/history"
	"github.com/evroute/ev-route-planner/planner/route"
	"github.com/evroute/ev-route-planner/planner/service"
)

func main() {
	cmd := &cli.Command{
		Name:  "routecli",
		Usage: "Plan EV routes with charging stops over a fixed road network",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "Directory containing network datasets",
				Value: "configs",
			},
			&cli.StringFlag{
				Name:    "network",
				Aliases: []string{"n"},
				Usage:   "Network dataset name (default dataset when omitted)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "route",
				Usage: "Compute the shortest route and charging plan between two cities",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "start",
						Aliases:  []string{"s"},
						Usage:    "Start city",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "end",
						Aliases:  []string{"e"},
						Usage:    "Destination city",
						Required: true,
					},
					&cli.FloatFlag{
						Name:     "capacity",
						Aliases:  []string{"c"},
						Usage:    "Battery capacity in energy units",
						Required: true,
					},
				},
				Action: runRoute,
			},
			{
				Name:   "cities",
				Usage:  "List the network's cities with charging prices",
				Action: runCities,
			},
			{
				Name:   "networks",
				Usage:  "List available network datasets",
				Action: runNetworks,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newService builds a local route service from the flags.
func newService(cmd *cli.Command) (service.RouteService, error) {
	dir := cmd.String("config-dir")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		// Built-in dataset only
		dir = ""
	}

	networks, err := config.NewManager(dir)
	if err != nil {
		return nil, err
	}

	return service.NewRouteService(networks, history.NewRecorder(1)), nil
}

func runRoute(ctx context.Context, cmd *cli.Command) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	info, err := svc.FindRoute(ctx, service.RouteRequest{
		Network:  cmd.String("network"),
		Start:    cmd.String("start"),
		End:      cmd.String("end"),
		Capacity: cmd.Float("capacity"),
	})
	switch {
	case errors.Is(err, route.ErrNoRoute):
		return fmt.Errorf("no path found between the selected cities")
	case errors.Is(err, service.ErrSameCity):
		return fmt.Errorf("start and destination cities cannot be the same")
	case errors.Is(err, service.ErrInvalidCapacity):
		return fmt.Errorf("please enter a valid battery capacity (positive number)")
	case err != nil:
		return err
	}

	fmt.Printf("Optimal Route: %s\n", strings.Join(info.Path, " -> "))
	fmt.Printf("Total Distance: %g km\n", info.TotalDistance)
	fmt.Printf("Total Charging Cost: %s%.2f\n", info.Currency, info.TotalCost)

	if len(info.ChargingPlan) > 0 {
		fmt.Println("\nCharging Plan:")
		for _, stop := range info.ChargingPlan {
			fmt.Printf(" - %s\n", stop.Description)
		}
	} else {
		fmt.Println("\nBattery capacity sufficient, no charging needed!")
	}

	return nil
}

func runCities(ctx context.Context, cmd *cli.Command) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	cities, err := svc.ListCities(ctx, cmd.String("network"))
	if err != nil {
		return err
	}

	for _, city := range cities {
		fmt.Printf("%-12s charging price %.2f/unit\n", city.Name, city.Price)
	}

	return nil
}

func runNetworks(ctx context.Context, cmd *cli.Command) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	networks, err := svc.ListNetworks(ctx)
	if err != nil {
		return err
	}

	for _, n := range networks {
		fmt.Printf("%-14s %d cities, %d roads  %s\n", n.Name, n.CityCount, n.RoadCount, n.Description)
	}

	return nil
}
