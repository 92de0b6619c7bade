package ratings

import (
	"fmt"

	"github.com/creditdesk/ratings/internal/ratingtable"
)

// ScoreFromRating converts a single letter rating into a numeric rating
// score. Long-term ratings translate via exact lookup on the provider's
// scale; short-term ratings translate to the average long-term score of
// their strategy bucket (the empty strategy means base), which may be
// fractional. Ratings absent from the table ("NR", "WD", "SD", or anything
// unrecognized) yield NaN rather than an error.
func ScoreFromRating(rating, provider string, tenor Tenor, strategy Strategy) (float64, error) {
	tenor = normTenor(tenor)
	if provider == "" {
		return missing(), ErrMissingProvider
	}
	p, err := ResolveProvider(provider, tenor)
	if err != nil {
		return missing(), err
	}
	strategy, err = normStrategy(strategy)
	if err != nil {
		return missing(), err
	}
	t, err := table()
	if err != nil {
		return missing(), err
	}

	return scoreFromRating(t, rating, p, tenor, strategy), nil
}

// scoreFromRating is the per-cell translation; provider and strategy are
// already canonical.
func scoreFromRating(t *ratingtable.Table, rating, provider string, tenor Tenor, strategy Strategy) float64 {
	if rating == "" {
		return missing()
	}

	if tenor == TenorShortTerm {
		if avg, ok := t.ShortTermScore(provider, string(strategy), rating); ok {
			return avg
		}
		return missing()
	}

	if score, ok := t.LongTermScore(provider, rating); ok {
		return float64(score)
	}
	return missing()
}

// ScoresFromRatings converts a series of letter ratings into rating scores.
// With an empty provider the provider is inferred from the series name. The
// resulting series is named "rtg_score_" plus the input name.
func ScoresFromRatings(s StringSeries, provider string, tenor Tenor, strategy Strategy) (FloatSeries, error) {
	tenor = normTenor(tenor)
	if provider == "" {
		provider = s.Name
	}
	p, err := ResolveProvider(provider, tenor)
	if err != nil {
		return FloatSeries{}, err
	}
	strategy, err = normStrategy(strategy)
	if err != nil {
		return FloatSeries{}, err
	}
	t, err := table()
	if err != nil {
		return FloatSeries{}, err
	}

	out := FloatSeries{
		Name: scoreSeriesName(s.Name),
		Data: make([]float64, len(s.Data)),
	}
	for i, rating := range s.Data {
		out.Data[i] = scoreFromRating(t, rating, p, tenor, strategy)
	}
	return out, nil
}

// ScoresFromRatingsFrame converts a frame of letter ratings column-wise.
// With a nil providers slice the provider of every column is inferred from
// its name; otherwise providers must align positionally with the columns.
// Columns are independent, so processing order does not affect the output.
func ScoresFromRatingsFrame(f StringFrame, providers []string, tenor Tenor, strategy Strategy) (FloatFrame, error) {
	providers, err := frameProviders(f.columnNames(), providers, tenor)
	if err != nil {
		return FloatFrame{}, err
	}

	out := FloatFrame{Columns: make([]FloatSeries, len(f.Columns))}
	for i, col := range f.Columns {
		series, err := ScoresFromRatings(col, providers[i], tenor, strategy)
		if err != nil {
			return FloatFrame{}, err
		}
		out.Columns[i] = series
	}
	return out, nil
}

// ScoreFromWARF converts a WARF value into a rating score. WARF bands are
// half-open [MinWARF, MaxWARF); warf == 10000 maps to 22 exactly. Values
// outside [1, 10000] (and NaN) yield NaN. WARF is provider-agnostic, so no
// provider is needed.
func ScoreFromWARF(warf float64) float64 {
	t, err := table()
	if err != nil {
		return missing()
	}
	return scoreFromWARF(t, warf)
}

func scoreFromWARF(t *ratingtable.Table, warf float64) float64 {
	if isMissing(warf) {
		return missing()
	}
	if score, ok := t.ScoreForWARF(warf); ok {
		return float64(score)
	}
	return missing()
}

// ScoresFromWARF converts a series of WARF values into rating scores. The
// resulting series is named "rtg_score".
func ScoresFromWARF(s FloatSeries) FloatSeries {
	out := FloatSeries{
		Name: "rtg_score",
		Data: make([]float64, len(s.Data)),
	}
	t, err := table()
	if err != nil {
		for i := range out.Data {
			out.Data[i] = missing()
		}
		return out
	}
	for i, warf := range s.Data {
		out.Data[i] = scoreFromWARF(t, warf)
	}
	return out
}

// ScoresFromWARFFrame converts a frame of WARF values column-wise. Columns
// are named "rtg_score_" plus the input column name.
func ScoresFromWARFFrame(f FloatFrame) FloatFrame {
	out := FloatFrame{Columns: make([]FloatSeries, len(f.Columns))}
	for i, col := range f.Columns {
		series := ScoresFromWARF(col)
		series.Name = scoreSeriesName(col.Name)
		out.Columns[i] = series
	}
	return out
}

func scoreSeriesName(name string) string {
	if name == "" {
		return "rtg_score"
	}
	return "rtg_score_" + name
}

// frameProviders resolves the provider of every frame column, inferring
// from column names when providers is nil.
func frameProviders(columnNames, providers []string, tenor Tenor) ([]string, error) {
	if providers == nil {
		return ResolveProviders(columnNames, tenor)
	}
	if len(providers) != len(columnNames) {
		return nil, fmt.Errorf("got %d providers for %d columns", len(providers), len(columnNames))
	}
	return ResolveProviders(providers, tenor)
}
