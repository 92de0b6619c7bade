package ratings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// five issuers rated by three agencies, including tied and split rows
func consolidationFixture() StringFrame {
	return StringFrame{Columns: []StringSeries{
		{Name: "rtg_SP", Data: []string{"AAA", "AA-", "AA+", "BB-", "C"}},
		{Name: "rtg_Moody", Data: []string{"Aa1", "Aa3", "Aa2", "Ba3", "Ca"}},
		{Name: "rtg_Fitch", Data: []string{"AA-", "AA-", "AA-", "B+", "C"}},
	}}
}

func TestBestRatings(t *testing.T) {
	got, err := BestRatings(consolidationFixture(), nil, "S&P", TenorLongTerm)
	require.NoError(t, err)

	assert.Equal(t, "best_rtg", got.Name)
	assert.Equal(t, []string{"AAA", "AA-", "AA+", "BB-", "CC"}, got.Data)
}

func TestBestRatingsExplicitProviders(t *testing.T) {
	frame := StringFrame{Columns: []StringSeries{
		{Name: "a", Data: []string{"AAA", "C"}},
		{Name: "b", Data: []string{"Aa1", "Ca"}},
		{Name: "c", Data: []string{"AA-", "C"}},
	}}

	got, err := BestRatings(frame, []string{"S&P", "Moody", "Fitch"}, "S&P", TenorLongTerm)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "CC"}, got.Data)
}

func TestSecondBestRatings(t *testing.T) {
	got, err := SecondBestRatings(consolidationFixture(), nil, "S&P", TenorLongTerm)
	require.NoError(t, err)

	assert.Equal(t, "second_best_rtg", got.Name)
	assert.Equal(t, []string{"AA+", "AA-", "AA", "BB-", "C"}, got.Data)
}

func TestWorstRatings(t *testing.T) {
	got, err := WorstRatings(consolidationFixture(), nil, "S&P", TenorLongTerm)
	require.NoError(t, err)

	assert.Equal(t, "worst_rtg", got.Name)
	assert.Equal(t, []string{"AA-", "AA-", "AA-", "B+", "C"}, got.Data)
}

func TestConsolidateRatingsMissingRows(t *testing.T) {
	frame := StringFrame{Columns: []StringSeries{
		{Name: "rtg_SP", Data: []string{"NR", "BBB", ""}},
		{Name: "rtg_Moody", Data: []string{"WD", "NR", ""}},
	}}

	for _, method := range []Method{MethodBest, MethodSecondBest, MethodWorst} {
		t.Run(string(method), func(t *testing.T) {
			got, err := ConsolidateRatings(frame, nil, "S&P", TenorLongTerm, method)
			require.NoError(t, err)

			assert.Empty(t, got.Data[0], "all missing row")
			assert.Equal(t, "BBB", got.Data[1], "single rating row")
			assert.Empty(t, got.Data[2], "empty row")
		})
	}
}

func TestConsolidateRatingsUnknownMethod(t *testing.T) {
	_, err := ConsolidateRatings(consolidationFixture(), nil, "S&P", TenorLongTerm, Method("median"))
	assert.Error(t, err)
}

func TestConsolidateRatingsMissingOutputProvider(t *testing.T) {
	_, err := BestRatings(consolidationFixture(), nil, "", TenorLongTerm)
	assert.ErrorIs(t, err, ErrMissingProvider)
}

func TestConsolidateRatingsInvalidColumn(t *testing.T) {
	frame := StringFrame{Columns: []StringSeries{
		{Name: "unknown agency", Data: []string{"AAA"}},
	}}

	_, err := BestRatings(frame, nil, "S&P", TenorLongTerm)
	var provErr *InvalidProviderError
	assert.ErrorAs(t, err, &provErr)
}

func TestBestScores(t *testing.T) {
	got, err := BestScores(consolidationFixture(), nil, TenorLongTerm)
	require.NoError(t, err)

	assert.Equal(t, "best_scores", got.Name)
	assert.Equal(t, []float64{1, 4, 2, 13, 20}, got.Data)
}

func TestSecondBestScores(t *testing.T) {
	got, err := SecondBestScores(consolidationFixture(), nil, TenorLongTerm)
	require.NoError(t, err)

	assert.Equal(t, "second_best_scores", got.Name)
	assert.Equal(t, []float64{2, 4, 3, 13, 21}, got.Data)
}

func TestSecondBestScoresSingleColumn(t *testing.T) {
	frame := StringFrame{Columns: []StringSeries{
		{Name: "rtg_Fitch", Data: []string{"BBB", "NR"}},
	}}

	got, err := SecondBestScores(frame, nil, TenorLongTerm)
	require.NoError(t, err)

	assert.Equal(t, 9.0, got.Data[0])
	assert.True(t, math.IsNaN(got.Data[1]))
}

func TestWorstScores(t *testing.T) {
	got, err := WorstScores(consolidationFixture(), nil, TenorLongTerm)
	require.NoError(t, err)

	assert.Equal(t, "worst_scores", got.Name)
	assert.Equal(t, []float64{4, 4, 4, 14, 21}, got.Data)
}

func TestRowSecondBest(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name     string
		row      []float64
		expected float64
	}{
		{name: "distinct values", row: []float64{4, 2, 9}, expected: 4},
		{name: "tie on the minimum", row: []float64{3, 3, 7}, expected: 3},
		{name: "single value falls back", row: []float64{5, nan, nan}, expected: 5},
		{name: "missing skipped", row: []float64{nan, 6, 2}, expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rowSecondBest(tt.row))
		})
	}
}
