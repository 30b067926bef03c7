package graph

// City represents a node in the road network together with its charging
// price per energy unit. Prices are currency-agnostic real numbers.
type City struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Road represents an undirected connection between two distinct cities.
// Distance is in kilometers and is always strictly positive.
type Road struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// Connects reports whether the road joins cities a and b in either direction.
func (r Road) Connects(a, b string) bool {
	return (r.From == a && r.To == b) || (r.From == b && r.To == a)
}
