package route

import (
	"fmt"

	"github.com/evroute/ev-route-planner/planner/graph"
)

// ChargingStop records a single recharge event during a simulated traversal.
type ChargingStop struct {
	City   string  `json:"city"`
	Energy float64 `json:"energy"`
	Price  float64 `json:"price_per_unit"`
}

// Cost returns the monetary cost of the stop.
func (s ChargingStop) Cost() float64 {
	return s.Energy * s.Price
}

// Description renders the stop in the human-readable form shown to users:
// energy to one decimal, price to two.
func (s ChargingStop) Description() string {
	return fmt.Sprintf("%s: %.1f units @ %.2f/unit", s.City, s.Energy, s.Price)
}

// SimulateCharging walks the path city by city and decides where the vehicle
// recharges under the greedy full-recharge policy.
//
// The battery starts at full capacity. Before each leg, if the leg distance
// exceeds the remaining charge the vehicle tops up to full at the current
// city; the stop is recorded even when the battery is already full and the
// added energy is therefore zero, so the plan lists every point where the
// rule fired. The leg distance is then subtracted, which may drive the
// remaining charge negative on the final leg. That shortfall is resolved
// after the loop by a corrective charge at the destination, priced at the
// destination's rate. Intermediate legs are corrected before traveling; only
// the final leg is corrected after.
//
// Returns the total cost of all stops and the ordered charging plan.
func SimulateCharging(net *graph.Network, path []string, capacity float64) (float64, []ChargingStop, error) {
	if net == nil {
		return 0, nil, ErrNilNetwork
	}

	remaining := capacity
	totalCost := 0.0
	var plan []ChargingStop

	for i := 0; i < len(path)-1; i++ {
		leg, err := net.Distance(path[i], path[i+1])
		if err != nil {
			return 0, nil, err
		}

		if leg > remaining {
			price, err := net.Price(path[i])
			if err != nil {
				return 0, nil, err
			}
			stop := ChargingStop{City: path[i], Energy: capacity - remaining, Price: price}
			totalCost += stop.Cost()
			plan = append(plan, stop)
			remaining = capacity
		}

		remaining -= leg
	}

	if remaining < 0 {
		destination := path[len(path)-1]
		price, err := net.Price(destination)
		if err != nil {
			return 0, nil, err
		}
		stop := ChargingStop{City: destination, Energy: -remaining, Price: price}
		totalCost += stop.Cost()
		plan = append(plan, stop)
	}

	return totalCost, plan, nil
}
