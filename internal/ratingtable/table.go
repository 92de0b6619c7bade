// Package ratingtable holds the static rating translation tables in memory.
//
// The tables are loaded once per process from an embedded SQLite seed (or an
// external database file configured via RATINGS_DB_PATH) and are immutable
// afterwards, so lookups are plain map and slice reads and safe for
// concurrent use.
package ratingtable

import (
	"fmt"
	"sort"
)

// WARFBand maps one rating score to its WARF value and the half-open WARF
// interval [MinWARF, MaxWARF) it represents. The final band (score 22) is
// closed at 10000.
type WARFBand struct {
	Score   int
	WARF    float64
	MinWARF float64
	MaxWARF float64
}

// ShortTermBucket maps one short-term rating to the long-term score range it
// covers under a given translation strategy. AvgScore is the representative
// score used when converting short-term ratings to numeric scores.
type ShortTermBucket struct {
	Rating   string
	MinScore int
	MaxScore int
	AvgScore float64
}

// Table is the in-memory rating translation table. Keys are canonical
// provider tokens (Fitch, Moody, SP, Bloomberg, DBRS, ICE) and strategy
// tokens (best, base, worst).
type Table struct {
	ltScore  map[string]map[string]int    // provider -> rating -> score
	ltRating map[string]map[int]string    // provider -> score -> rating
	warf     map[int]float64              // score -> WARF
	bands    []WARFBand                   // ascending by score
	stBucket map[string][]ShortTermBucket // provider|strategy -> buckets ascending by MinScore
}

func stKey(provider, strategy string) string {
	return provider + "|" + strategy
}

// LongTermScore returns the score for a long-term letter rating.
func (t *Table) LongTermScore(provider, rating string) (int, bool) {
	score, ok := t.ltScore[provider][rating]
	return score, ok
}

// LongTermRating returns the letter rating for an integer score.
func (t *Table) LongTermRating(provider string, score int) (string, bool) {
	rating, ok := t.ltRating[provider][score]
	return rating, ok
}

// ShortTermScore returns the representative long-term score for a short-term
// rating under the given strategy.
func (t *Table) ShortTermScore(provider, strategy, rating string) (float64, bool) {
	for _, b := range t.stBucket[stKey(provider, strategy)] {
		if b.Rating == rating {
			return b.AvgScore, true
		}
	}
	return 0, false
}

// ShortTermRating returns the short-term rating whose bucket contains the
// given integer long-term score under the given strategy.
func (t *Table) ShortTermRating(provider, strategy string, score int) (string, bool) {
	for _, b := range t.stBucket[stKey(provider, strategy)] {
		if score >= b.MinScore && score <= b.MaxScore {
			return b.Rating, true
		}
	}
	return "", false
}

// WARF returns the WARF value for an integer score.
func (t *Table) WARF(score int) (float64, bool) {
	warf, ok := t.warf[score]
	return warf, ok
}

// ScoreForWARF returns the score of the band containing warf. Bands are
// half-open [MinWARF, MaxWARF); warf == 10000 maps to score 22.
func (t *Table) ScoreForWARF(warf float64) (int, bool) {
	if warf == maxWARF {
		return maxScore, true
	}
	for _, b := range t.bands {
		if warf >= b.MinWARF && warf < b.MaxWARF {
			return b.Score, true
		}
	}
	return 0, false
}

// BandMaxWARF returns the upper bound of the band containing warf.
// warf == 10000 falls outside every half-open band and yields no result.
func (t *Table) BandMaxWARF(warf float64) (float64, bool) {
	for _, b := range t.bands {
		if warf >= b.MinWARF && warf < b.MaxWARF {
			return b.MaxWARF, true
		}
	}
	return 0, false
}

const (
	minScore = 1
	maxScore = 22
	minWARF  = 1
	maxWARF  = 10000
)

// validate checks the structural invariants of the loaded tables: complete
// and unique score scales per provider, gap-free WARF bands covering
// [1, 10000], and gap-free short-term buckets covering scores 1-22.
func (t *Table) validate() error {
	for provider, scale := range t.ltScore {
		if len(scale) != maxScore {
			return fmt.Errorf("long-term scale for %s has %d ratings, want %d", provider, len(scale), maxScore)
		}
		if len(t.ltRating[provider]) != maxScore {
			return fmt.Errorf("long-term scores for %s are not unique", provider)
		}
		for score := minScore; score <= maxScore; score++ {
			if _, ok := t.ltRating[provider][score]; !ok {
				return fmt.Errorf("long-term scale for %s is missing score %d", provider, score)
			}
		}
	}

	if len(t.bands) != maxScore {
		return fmt.Errorf("WARF table has %d bands, want %d", len(t.bands), maxScore)
	}
	if !sort.SliceIsSorted(t.bands, func(i, j int) bool { return t.bands[i].Score < t.bands[j].Score }) {
		return fmt.Errorf("WARF bands are not sorted by score")
	}
	if t.bands[0].MinWARF != minWARF {
		return fmt.Errorf("first WARF band starts at %v, want %v", t.bands[0].MinWARF, float64(minWARF))
	}
	if t.bands[len(t.bands)-1].MaxWARF != maxWARF {
		return fmt.Errorf("last WARF band ends at %v, want %v", t.bands[len(t.bands)-1].MaxWARF, float64(maxWARF))
	}
	for i, b := range t.bands {
		if b.MinWARF >= b.MaxWARF {
			return fmt.Errorf("WARF band for score %d is empty: [%v, %v)", b.Score, b.MinWARF, b.MaxWARF)
		}
		if i > 0 && t.bands[i-1].MaxWARF != b.MinWARF {
			return fmt.Errorf("WARF bands for scores %d and %d do not meet", t.bands[i-1].Score, b.Score)
		}
		if prev := t.warf[b.Score-1]; i > 0 && b.WARF <= prev {
			return fmt.Errorf("WARF values are not increasing at score %d", b.Score)
		}
	}

	for key, buckets := range t.stBucket {
		if len(buckets) == 0 {
			return fmt.Errorf("short-term bucket set %s is empty", key)
		}
		if buckets[0].MinScore != minScore {
			return fmt.Errorf("short-term buckets %s start at score %d, want %d", key, buckets[0].MinScore, minScore)
		}
		if buckets[len(buckets)-1].MaxScore != maxScore {
			return fmt.Errorf("short-term buckets %s end at score %d, want %d", key, buckets[len(buckets)-1].MaxScore, maxScore)
		}
		for i, b := range buckets {
			if b.MinScore > b.MaxScore {
				return fmt.Errorf("short-term bucket %s %q has inverted range", key, b.Rating)
			}
			if i > 0 && buckets[i-1].MaxScore+1 != b.MinScore {
				return fmt.Errorf("short-term buckets %s have a gap before %q", key, b.Rating)
			}
		}
	}

	return nil
}
