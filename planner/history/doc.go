// Package history keeps a bounded in-memory log of recent route queries.
//
// Each recorded query gets a UUID so front ends can link to and re-display
// past results. The log is purely in-memory: nothing is persisted, and old
// entries are dropped either when the bound is exceeded (oldest first) or by
// the periodic age-based cleanup the server runs.
//
// Usage:
//
//	recorder := history.NewRecorder(100)
//	info = recorder.Add(info)          // assigns info.ID
//	again, err := recorder.Get(info.ID)
//	recent := recorder.List()          // newest first
//	removed := recorder.CleanupExpired(24 * time.Hour)
//
// The recorder is safe for concurrent use.
package history
