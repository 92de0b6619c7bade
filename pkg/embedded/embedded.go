// Package embedded provides embedded static assets for the library.
package embedded

import (
	_ "embed"
)

// RatingsSQL contains the schema and seed rows for the rating translation
// tables: long-term letter scales per provider, WARF bands per score, and
// short-term long-term-score buckets per provider and strategy.
//
//go:embed ratings.sql
var RatingsSQL string
