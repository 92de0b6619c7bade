package ratingtable

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditdesk/ratings/internal/config"
)

func loadEmbedded(t *testing.T) *Table {
	t.Helper()
	tbl, err := Load(&config.Config{}, zerolog.Nop())
	require.NoError(t, err)
	return tbl
}

func TestLoadEmbedded(t *testing.T) {
	tbl := loadEmbedded(t)

	assert.Len(t, tbl.ltScore, 6)
	assert.Len(t, tbl.bands, 22)
	assert.Len(t, tbl.warf, 22)
	assert.NotEmpty(t, tbl.stBucket)
}

func TestLongTermRoundTrip(t *testing.T) {
	tbl := loadEmbedded(t)

	for provider, scale := range tbl.ltScore {
		require.Len(t, scale, 22, provider)
		for rating, score := range scale {
			back, ok := tbl.LongTermRating(provider, score)
			require.True(t, ok, "%s score %d", provider, score)
			assert.Equal(t, rating, back, "%s score %d", provider, score)
		}
	}
}

func TestLongTermScore(t *testing.T) {
	tbl := loadEmbedded(t)

	tests := []struct {
		provider string
		rating   string
		expected int
	}{
		{provider: "Fitch", rating: "AAA", expected: 1},
		{provider: "Moody", rating: "Baa1", expected: 8},
		{provider: "SP", rating: "BB+", expected: 11},
		{provider: "Bloomberg", rating: "DDD", expected: 22},
		{provider: "DBRS", rating: "AAH", expected: 2},
		{provider: "ICE", rating: "CCC", expected: 18},
	}

	for _, tt := range tests {
		t.Run(tt.provider+"/"+tt.rating, func(t *testing.T) {
			got, ok := tbl.LongTermScore(tt.provider, tt.rating)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, ok := tbl.LongTermScore("Fitch", "NR")
	assert.False(t, ok)
}

func TestWARFBandsPartitionDomain(t *testing.T) {
	tbl := loadEmbedded(t)

	assert.Equal(t, 1.0, tbl.bands[0].MinWARF)
	assert.Equal(t, 10000.0, tbl.bands[len(tbl.bands)-1].MaxWARF)
	for i := 1; i < len(tbl.bands); i++ {
		assert.Equal(t, tbl.bands[i-1].MaxWARF, tbl.bands[i].MinWARF, "band %d", i)
	}
}

func TestWARFIncreasesWithScore(t *testing.T) {
	tbl := loadEmbedded(t)

	prev := 0.0
	for score := 1; score <= 22; score++ {
		warf, ok := tbl.WARF(score)
		require.True(t, ok, "score %d", score)
		assert.Greater(t, warf, prev, "score %d", score)
		prev = warf
	}
}

func TestScoreForWARF(t *testing.T) {
	tbl := loadEmbedded(t)

	tests := []struct {
		name     string
		warf     float64
		expected int
		found    bool
	}{
		{name: "floor", warf: 1, expected: 1, found: true},
		{name: "band interior", warf: 500, expected: 10, found: true},
		{name: "band boundary belongs to upper band", warf: 485, expected: 10, found: true},
		{name: "ceiling", warf: 10000, expected: 22, found: true},
		{name: "below floor", warf: 0.99, found: false},
		{name: "above ceiling", warf: 10000.0001, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tbl.ScoreForWARF(tt.warf)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestShortTermBuckets(t *testing.T) {
	tbl := loadEmbedded(t)

	avg, ok := tbl.ShortTermScore("Moody", "base", "P-1")
	require.True(t, ok)
	assert.Equal(t, 3.5, avg)

	rating, ok := tbl.ShortTermRating("SP", "base", 8)
	require.True(t, ok)
	assert.Equal(t, "A-2", rating)

	_, ok = tbl.ShortTermScore("Moody", "base", "A-1")
	assert.False(t, ok)

	_, ok = tbl.ShortTermRating("SP", "base", 0)
	assert.False(t, ok)
}

func TestValidateRejectsCorruptTable(t *testing.T) {
	tbl := loadEmbedded(t)

	delete(tbl.ltScore["Fitch"], "AAA")
	assert.Error(t, tbl.validate())
}
