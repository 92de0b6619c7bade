package ratings

import "github.com/creditdesk/ratings/internal/ratingtable"

// table returns the process-wide translation table, loading it on first
// use.
func table() (*ratingtable.Table, error) {
	return ratingtable.Default()
}
