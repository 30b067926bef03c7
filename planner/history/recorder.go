package history

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/evroute/ev-route-planner/planner/service"
)

// ErrQueryNotFound indicates a lookup for a query ID that is not (or no
// longer) in the log.
var ErrQueryNotFound = errors.New("history: query not found")

// DefaultLimit is the bound used when NewRecorder is given a non-positive
// limit.
const DefaultLimit = 100

// Recorder is a bounded, newest-first log of route queries.
type Recorder struct {
	limit   int
	entries map[string]*service.RouteInfo
	order   []string // query IDs, oldest first
	mu      sync.RWMutex
}

// NewRecorder creates a recorder keeping at most limit queries.
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Recorder{
		limit:   limit,
		entries: make(map[string]*service.RouteInfo),
	}
}

// Add records a query, assigning it a fresh UUID if it has none, and evicts
// the oldest entries once the bound is exceeded. Returns the stored entry.
func (r *Recorder) Add(info *service.RouteInfo) *service.RouteInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	if info.ID == "" {
		info.ID = uuid.NewString()
	}
	if info.ComputedAt.IsZero() {
		info.ComputedAt = time.Now()
	}

	if _, exists := r.entries[info.ID]; !exists {
		r.order = append(r.order, info.ID)
	}
	r.entries[info.ID] = info

	for len(r.order) > r.limit {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.entries, oldest)
	}

	return info
}

// Get retrieves a recorded query by ID.
func (r *Recorder) Get(id string) (*service.RouteInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, exists := r.entries[id]
	if !exists {
		return nil, ErrQueryNotFound
	}
	return info, nil
}

// List returns all recorded queries, newest first.
func (r *Recorder) List() []*service.RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*service.RouteInfo, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.entries[r.order[i]])
	}
	return out
}

// Len returns the number of recorded queries.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// CleanupExpired removes queries computed more than maxAge ago and returns
// how many were removed.
func (r *Recorder) CleanupExpired(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	kept := r.order[:0]
	removed := 0

	for _, id := range r.order {
		if r.entries[id].ComputedAt.Before(cutoff) {
			delete(r.entries, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept

	return removed
}
