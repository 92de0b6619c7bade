package ratingtable

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/creditdesk/ratings/internal/config"
	"github.com/creditdesk/ratings/internal/database"
	"github.com/creditdesk/ratings/pkg/embedded"
)

// Load reads the rating tables into memory. With an empty cfg.DBPath the
// embedded seed is executed into a private in-memory database; otherwise the
// configured SQLite file is read. Either way the database is closed before
// Load returns and all lookups are served from memory.
func Load(cfg *config.Config, log zerolog.Logger) (*Table, error) {
	start := time.Now()

	db, err := database.New(database.Config{Path: cfg.DBPath, Name: "ratings"})
	if err != nil {
		return nil, fmt.Errorf("failed to open rating table database: %w", err)
	}
	defer db.Close()

	if cfg.DBPath == "" {
		if err := db.ExecScript(embedded.RatingsSQL); err != nil {
			return nil, fmt.Errorf("failed to seed embedded rating tables: %w", err)
		}
	}

	t := &Table{
		ltScore:  make(map[string]map[string]int),
		ltRating: make(map[string]map[int]string),
		warf:     make(map[int]float64),
		stBucket: make(map[string][]ShortTermBucket),
	}

	if err := loadLongTerm(db, t); err != nil {
		return nil, err
	}
	if err := loadWARFBands(db, t); err != nil {
		return nil, err
	}
	if err := loadShortTermBuckets(db, t); err != nil {
		return nil, err
	}

	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("rating table is corrupt: %w", err)
	}

	source := "embedded"
	if cfg.DBPath != "" {
		source = cfg.DBPath
	}
	log.Debug().
		Str("source", source).
		Int("providers", len(t.ltScore)).
		Int("warf_bands", len(t.bands)).
		Int("short_term_bucket_sets", len(t.stBucket)).
		Dur("elapsed", time.Since(start)).
		Msg("Rating tables loaded")

	return t, nil
}

func loadLongTerm(db *database.DB, t *Table) error {
	rows, err := db.Query("SELECT provider, rating, score FROM long_term_ratings")
	if err != nil {
		return fmt.Errorf("failed to query long-term ratings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var provider, rating string
		var score int
		if err := rows.Scan(&provider, &rating, &score); err != nil {
			return fmt.Errorf("failed to scan long-term rating: %w", err)
		}
		if t.ltScore[provider] == nil {
			t.ltScore[provider] = make(map[string]int)
			t.ltRating[provider] = make(map[int]string)
		}
		t.ltScore[provider][rating] = score
		t.ltRating[provider][score] = rating
	}

	return rows.Err()
}

func loadWARFBands(db *database.DB, t *Table) error {
	rows, err := db.Query("SELECT score, warf, min_warf, max_warf FROM warf_bands ORDER BY score")
	if err != nil {
		return fmt.Errorf("failed to query WARF bands: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b WARFBand
		if err := rows.Scan(&b.Score, &b.WARF, &b.MinWARF, &b.MaxWARF); err != nil {
			return fmt.Errorf("failed to scan WARF band: %w", err)
		}
		t.warf[b.Score] = b.WARF
		t.bands = append(t.bands, b)
	}

	return rows.Err()
}

func loadShortTermBuckets(db *database.DB, t *Table) error {
	rows, err := db.Query("SELECT provider, strategy, rating, min_score, max_score, avg_score FROM short_term_buckets")
	if err != nil {
		return fmt.Errorf("failed to query short-term buckets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var provider, strategy string
		var b ShortTermBucket
		if err := rows.Scan(&provider, &strategy, &b.Rating, &b.MinScore, &b.MaxScore, &b.AvgScore); err != nil {
			return fmt.Errorf("failed to scan short-term bucket: %w", err)
		}
		key := stKey(provider, strategy)
		t.stBucket[key] = append(t.stBucket[key], b)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, buckets := range t.stBucket {
		sort.Slice(buckets, func(i, j int) bool { return buckets[i].MinScore < buckets[j].MinScore })
	}

	return nil
}
