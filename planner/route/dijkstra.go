package route

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/evroute/ev-route-planner/planner/graph"
)

// frontierItem is a (city, accumulated distance) pair in the Dijkstra
// frontier. The heap uses lazy decrease-key: duplicates are pushed and stale
// entries skipped on pop.
type frontierItem struct {
	city string
	dist float64
}

// frontier is a binary min-heap of frontierItem ordered by distance, with
// city name as the secondary key so equal-cost pops are deterministic.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].city < f[j].city
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// ShortestPath computes the minimum-total-distance path between start and end.
//
// It returns the total distance and the ordered city sequence from start to
// end inclusive. When the two cities are disconnected it returns
// (math.Inf(1), nil, nil); callers must treat an empty path as "no route".
// An error is returned only for precondition violations (nil network or a
// city that is not part of it).
func ShortestPath(net *graph.Network, start, end string) (float64, []string, error) {
	if net == nil {
		return 0, nil, ErrNilNetwork
	}
	for _, city := range []string{start, end} {
		if !net.HasCity(city) {
			return 0, nil, fmt.Errorf("%w: %s", graph.ErrUnknownCity, city)
		}
	}

	dist := map[string]float64{start: 0}
	prev := make(map[string]string)
	visited := make(map[string]bool, net.CityCount())

	pq := frontier{{city: start, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		if visited[item.city] {
			continue // stale duplicate
		}
		visited[item.city] = true

		if item.city == end {
			return item.dist, buildPath(prev, start, end), nil
		}

		adjacent, err := net.Neighbors(item.city)
		if err != nil {
			return 0, nil, err
		}

		// Relax neighbors in name order so that equal-cost alternatives
		// resolve the same way on every run.
		neighbors := make([]string, 0, len(adjacent))
		for neighbor := range adjacent {
			neighbors = append(neighbors, neighbor)
		}
		sort.Strings(neighbors)

		for _, neighbor := range neighbors {
			if visited[neighbor] {
				continue
			}
			next := item.dist + adjacent[neighbor]
			if best, seen := dist[neighbor]; !seen || next < best {
				dist[neighbor] = next
				prev[neighbor] = item.city
				heap.Push(&pq, frontierItem{city: neighbor, dist: next})
			}
		}
	}

	return math.Inf(1), nil, nil
}

// buildPath reconstructs the start..end city sequence from the predecessor
// map filled in by ShortestPath.
func buildPath(prev map[string]string, start, end string) []string {
	path := []string{end}
	for city := end; city != start; {
		city = prev[city]
		path = append(path, city)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
