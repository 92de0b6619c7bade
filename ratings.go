package ratings

import (
	"math"

	"github.com/creditdesk/ratings/internal/ratingtable"
)

// RatingFromScore converts a rating score back into a letter rating on the
// provider's scale. Fractional scores are rounded half-up first (4.5 rounds
// to 5). Long-term scores resolve by direct lookup; short-term scores
// resolve to the strategy bucket whose long-term score range contains the
// rounded score. Scores outside [1, 22] (and NaN) yield the empty string.
func RatingFromScore(score float64, provider string, tenor Tenor, strategy Strategy) (string, error) {
	tenor = normTenor(tenor)
	if provider == "" {
		return "", ErrMissingProvider
	}
	p, err := ResolveProvider(provider, tenor)
	if err != nil {
		return "", err
	}
	strategy, err = normStrategy(strategy)
	if err != nil {
		return "", err
	}
	t, err := table()
	if err != nil {
		return "", err
	}

	return ratingFromScore(t, score, p, tenor, strategy), nil
}

func ratingFromScore(t *ratingtable.Table, score float64, provider string, tenor Tenor, strategy Strategy) string {
	if isMissing(score) {
		return ""
	}
	rounded := int(math.Floor(score + 0.5))

	if tenor == TenorShortTerm {
		if rating, ok := t.ShortTermRating(provider, string(strategy), rounded); ok {
			return rating
		}
		return ""
	}

	if rating, ok := t.LongTermRating(provider, rounded); ok {
		return rating
	}
	return ""
}

// RatingsFromScores converts a series of rating scores into letter ratings.
// The resulting series is named "rtg_" plus the canonical provider.
func RatingsFromScores(s FloatSeries, provider string, tenor Tenor, strategy Strategy) (StringSeries, error) {
	tenor = normTenor(tenor)
	if provider == "" {
		provider = s.Name
	}
	p, err := ResolveProvider(provider, tenor)
	if err != nil {
		return StringSeries{}, err
	}
	strategy, err = normStrategy(strategy)
	if err != nil {
		return StringSeries{}, err
	}
	t, err := table()
	if err != nil {
		return StringSeries{}, err
	}

	out := StringSeries{
		Name: "rtg_" + p,
		Data: make([]string, len(s.Data)),
	}
	for i, score := range s.Data {
		out.Data[i] = ratingFromScore(t, score, p, tenor, strategy)
	}
	return out, nil
}

// RatingsFromScoresFrame converts a frame of rating scores column-wise.
// With a nil providers slice the provider of every column is inferred from
// its name.
func RatingsFromScoresFrame(f FloatFrame, providers []string, tenor Tenor, strategy Strategy) (StringFrame, error) {
	providers, err := frameProviders(f.columnNames(), providers, tenor)
	if err != nil {
		return StringFrame{}, err
	}

	out := StringFrame{Columns: make([]StringSeries, len(f.Columns))}
	for i, col := range f.Columns {
		series, err := RatingsFromScores(col, providers[i], tenor, strategy)
		if err != nil {
			return StringFrame{}, err
		}
		out.Columns[i] = series
	}
	return out, nil
}

// RatingFromWARF converts a WARF value into a letter rating on the
// provider's long-term scale. WARF is defined for long-term ratings only.
func RatingFromWARF(warf float64, provider string) (string, error) {
	if provider == "" {
		return "", ErrMissingProvider
	}
	p, err := ResolveProvider(provider, TenorLongTerm)
	if err != nil {
		return "", err
	}
	t, err := table()
	if err != nil {
		return "", err
	}

	return ratingFromWARF(t, warf, p), nil
}

func ratingFromWARF(t *ratingtable.Table, warf float64, provider string) string {
	score := scoreFromWARF(t, warf)
	if isMissing(score) {
		return ""
	}
	rating, _ := t.LongTermRating(provider, int(score))
	return rating
}

// RatingsFromWARF converts a series of WARF values into letter ratings. The
// resulting series is named "rtg_" plus the canonical provider.
func RatingsFromWARF(s FloatSeries, provider string) (StringSeries, error) {
	if provider == "" {
		provider = s.Name
	}
	p, err := ResolveProvider(provider, TenorLongTerm)
	if err != nil {
		return StringSeries{}, err
	}
	t, err := table()
	if err != nil {
		return StringSeries{}, err
	}

	out := StringSeries{
		Name: "rtg_" + p,
		Data: make([]string, len(s.Data)),
	}
	for i, warf := range s.Data {
		out.Data[i] = ratingFromWARF(t, warf, p)
	}
	return out, nil
}

// RatingsFromWARFFrame converts a frame of WARF values column-wise.
func RatingsFromWARFFrame(f FloatFrame, providers []string) (StringFrame, error) {
	providers, err := frameProviders(f.columnNames(), providers, TenorLongTerm)
	if err != nil {
		return StringFrame{}, err
	}

	out := StringFrame{Columns: make([]StringSeries, len(f.Columns))}
	for i, col := range f.Columns {
		series, err := RatingsFromWARF(col, providers[i])
		if err != nil {
			return StringFrame{}, err
		}
		out.Columns[i] = series
	}
	return out, nil
}
