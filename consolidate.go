package ratings

import "fmt"

// BestRatings consolidates a frame of agency ratings into the best rating
// per row: each rating is translated to a score, the minimum score per row
// wins (lower is better), and the result is expressed on the output
// provider's scale. Rows with no translatable rating come out missing.
func BestRatings(f StringFrame, providers []string, outputProvider string, tenor Tenor) (StringSeries, error) {
	scores, err := consolidateScores(f, providers, tenor, rowMin)
	if err != nil {
		return StringSeries{}, err
	}
	return consolidatedRatings(scores, outputProvider, tenor, "best_rtg")
}

// SecondBestRatings consolidates a frame of agency ratings into the second
// best rating per row. Scores are ranked ascending with ties broken by
// column order; rows with a single translatable rating fall back to it.
func SecondBestRatings(f StringFrame, providers []string, outputProvider string, tenor Tenor) (StringSeries, error) {
	scores, err := consolidateScores(f, providers, tenor, rowSecondBest)
	if err != nil {
		return StringSeries{}, err
	}
	return consolidatedRatings(scores, outputProvider, tenor, "second_best_rtg")
}

// WorstRatings consolidates a frame of agency ratings into the worst rating
// per row, taking the maximum score.
func WorstRatings(f StringFrame, providers []string, outputProvider string, tenor Tenor) (StringSeries, error) {
	scores, err := consolidateScores(f, providers, tenor, rowMax)
	if err != nil {
		return StringSeries{}, err
	}
	return consolidatedRatings(scores, outputProvider, tenor, "worst_rtg")
}

// BestScores returns the per-row minimum rating score of a frame of agency
// ratings as a series named "best_scores".
func BestScores(f StringFrame, providers []string, tenor Tenor) (FloatSeries, error) {
	scores, err := consolidateScores(f, providers, tenor, rowMin)
	if err != nil {
		return FloatSeries{}, err
	}
	scores.Name = "best_scores"
	return scores, nil
}

// SecondBestScores returns the per-row second smallest rating score, named
// "second_best_scores".
func SecondBestScores(f StringFrame, providers []string, tenor Tenor) (FloatSeries, error) {
	scores, err := consolidateScores(f, providers, tenor, rowSecondBest)
	if err != nil {
		return FloatSeries{}, err
	}
	scores.Name = "second_best_scores"
	return scores, nil
}

// WorstScores returns the per-row maximum rating score, named
// "worst_scores".
func WorstScores(f StringFrame, providers []string, tenor Tenor) (FloatSeries, error) {
	scores, err := consolidateScores(f, providers, tenor, rowMax)
	if err != nil {
		return FloatSeries{}, err
	}
	scores.Name = "worst_scores"
	return scores, nil
}

// ConsolidateRatings dispatches to BestRatings, SecondBestRatings or
// WorstRatings by method.
func ConsolidateRatings(f StringFrame, providers []string, outputProvider string, tenor Tenor, method Method) (StringSeries, error) {
	switch method {
	case MethodBest:
		return BestRatings(f, providers, outputProvider, tenor)
	case MethodSecondBest:
		return SecondBestRatings(f, providers, outputProvider, tenor)
	case MethodWorst:
		return WorstRatings(f, providers, outputProvider, tenor)
	default:
		return StringSeries{}, fmt.Errorf("unknown consolidation method %q", method)
	}
}

// consolidateScores translates the frame to scores and reduces each row.
func consolidateScores(f StringFrame, providers []string, tenor Tenor, reduce func([]float64) float64) (FloatSeries, error) {
	scores, err := ScoresFromRatingsFrame(f, providers, tenor, StrategyBase)
	if err != nil {
		return FloatSeries{}, err
	}

	rows := 0
	if len(scores.Columns) > 0 {
		rows = len(scores.Columns[0].Data)
	}

	out := FloatSeries{Data: make([]float64, rows)}
	row := make([]float64, len(scores.Columns))
	for i := 0; i < rows; i++ {
		for j, col := range scores.Columns {
			row[j] = col.Data[i]
		}
		out.Data[i] = reduce(row)
	}
	return out, nil
}

// consolidatedRatings maps a reduced score series onto the output
// provider's scale.
func consolidatedRatings(scores FloatSeries, outputProvider string, tenor Tenor, name string) (StringSeries, error) {
	if outputProvider == "" {
		return StringSeries{}, ErrMissingProvider
	}
	out, err := RatingsFromScores(scores, outputProvider, tenor, StrategyBase)
	if err != nil {
		return StringSeries{}, err
	}
	out.Name = name
	return out, nil
}

func rowMin(row []float64) float64 {
	best := missing()
	for _, v := range row {
		if isMissing(v) {
			continue
		}
		if isMissing(best) || v < best {
			best = v
		}
	}
	return best
}

func rowMax(row []float64) float64 {
	worst := missing()
	for _, v := range row {
		if isMissing(v) {
			continue
		}
		if isMissing(worst) || v > worst {
			worst = v
		}
	}
	return worst
}

// rowSecondBest tracks the two smallest non-missing scores. Strict
// comparison keeps ties stable by column order.
func rowSecondBest(row []float64) float64 {
	first, second := missing(), missing()
	for _, v := range row {
		if isMissing(v) {
			continue
		}
		switch {
		case isMissing(first):
			first = v
		case v < first:
			second = first
			first = v
		case isMissing(second) || v < second:
			second = v
		}
	}
	if isMissing(second) {
		return first
	}
	return second
}
