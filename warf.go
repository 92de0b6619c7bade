package ratings

import (
	"math"

	"github.com/creditdesk/ratings/internal/ratingtable"
)

// WARFFromScore converts a rating score into its WARF value. Only whole
// scores in [1, 22] carry a WARF; fractional scores and NaN yield NaN, no
// rounding is applied.
func WARFFromScore(score float64) float64 {
	t, err := table()
	if err != nil {
		return missing()
	}
	return warfFromScore(t, score)
}

func warfFromScore(t *ratingtable.Table, score float64) float64 {
	if isMissing(score) || score != math.Trunc(score) {
		return missing()
	}
	if warf, ok := t.WARF(int(score)); ok {
		return warf
	}
	return missing()
}

// WARFFromScores converts a series of rating scores into WARF values. The
// resulting series is named "warf_" plus the input name, or "warf" for an
// unnamed series.
func WARFFromScores(s FloatSeries) FloatSeries {
	out := FloatSeries{
		Name: warfSeriesName(s.Name),
		Data: make([]float64, len(s.Data)),
	}
	t, err := table()
	if err != nil {
		for i := range out.Data {
			out.Data[i] = missing()
		}
		return out
	}
	for i, score := range s.Data {
		out.Data[i] = warfFromScore(t, score)
	}
	return out
}

// WARFFromScoresFrame converts a frame of rating scores column-wise.
func WARFFromScoresFrame(f FloatFrame) FloatFrame {
	out := FloatFrame{Columns: make([]FloatSeries, len(f.Columns))}
	for i, col := range f.Columns {
		out.Columns[i] = WARFFromScores(col)
	}
	return out
}

// WARFFromRating converts a letter rating into its WARF value. WARF is
// defined for long-term ratings only, so the provider must carry a
// long-term scale. Unrecognized ratings yield NaN.
func WARFFromRating(rating, provider string) (float64, error) {
	if provider == "" {
		return missing(), ErrMissingProvider
	}
	p, err := ResolveProvider(provider, TenorLongTerm)
	if err != nil {
		return missing(), err
	}
	t, err := table()
	if err != nil {
		return missing(), err
	}

	return warfFromScore(t, scoreFromRating(t, rating, p, TenorLongTerm, StrategyBase)), nil
}

// WARFFromRatings converts a series of letter ratings into WARF values.
// With an empty provider the provider is inferred from the series name.
func WARFFromRatings(s StringSeries, provider string) (FloatSeries, error) {
	if provider == "" {
		provider = s.Name
	}
	p, err := ResolveProvider(provider, TenorLongTerm)
	if err != nil {
		return FloatSeries{}, err
	}
	t, err := table()
	if err != nil {
		return FloatSeries{}, err
	}

	out := FloatSeries{
		Name: warfSeriesName(s.Name),
		Data: make([]float64, len(s.Data)),
	}
	for i, rating := range s.Data {
		out.Data[i] = warfFromScore(t, scoreFromRating(t, rating, p, TenorLongTerm, StrategyBase))
	}
	return out, nil
}

// WARFFromRatingsFrame converts a frame of letter ratings column-wise. With
// a nil providers slice the provider of every column is inferred from its
// name.
func WARFFromRatingsFrame(f StringFrame, providers []string) (FloatFrame, error) {
	providers, err := frameProviders(f.columnNames(), providers, TenorLongTerm)
	if err != nil {
		return FloatFrame{}, err
	}

	out := FloatFrame{Columns: make([]FloatSeries, len(f.Columns))}
	for i, col := range f.Columns {
		series, err := WARFFromRatings(col, providers[i])
		if err != nil {
			return FloatFrame{}, err
		}
		out.Columns[i] = series
	}
	return out, nil
}

// WARFBuffer returns the distance from warf to the upper bound of its WARF
// band, the amount of additional WARF the position absorbs before slipping
// into the next band. warf == 10000 has no band above it and yields NaN, as
// do values outside [1, 10000].
func WARFBuffer(warf float64) float64 {
	if isMissing(warf) {
		return missing()
	}
	t, err := table()
	if err != nil {
		return missing()
	}
	if max, ok := t.BandMaxWARF(warf); ok {
		return max - warf
	}
	return missing()
}

func warfSeriesName(name string) string {
	if name == "" {
		return "warf"
	}
	return "warf_" + name
}
