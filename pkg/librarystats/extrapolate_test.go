package librarystats

import (
	"math"
	"testing"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtrapolate_NotSampled(t *testing.T) {
	stats := LibraryItemStats{
		TotalItems:      3,
		TotalSizeBytes:  10,
		TotalDurationMs: 20,
		AvgBitrateKbps:  4000,
		HDRItemCount:    1,
	}

	got := Extrapolate(stats, NewPlan(3, DefaultLimits()), 3)
	assert.Equal(t, int64(3), got.TotalItems)
	assert.Equal(t, int64(10), got.TotalSizeBytes)
	assert.Equal(t, int64(3), got.AvgFileSizeBytes)
	assert.Equal(t, int64(7), got.AvgDurationMs)
	assert.Equal(t, int64(4000), got.AvgBitrateKbps)
	assert.Equal(t, int64(1), got.HDRItemCount)
}

func TestExtrapolate_RoundTrip(t *testing.T) {
	const total = 10000
	plan := NewPlan(total, DefaultLimits())
	require.True(t, plan.Sampled)

	sample := LibraryItemStats{
		TotalItems:      1500,
		TotalSizeBytes:  1500 * 2_500_000_000,
		TotalDurationMs: 1500 * 6_000_000,
		AvgBitrateKbps:  9000,
		HDRItemCount:    300,
	}

	got := Extrapolate(sample, plan, 1500)
	ratio := float64(total) / 1500

	assert.InDelta(t, float64(sample.TotalSizeBytes)*ratio, float64(got.TotalSizeBytes), 1)
	assert.InDelta(t, float64(sample.TotalDurationMs)*ratio, float64(got.TotalDurationMs), 1)
	assert.Equal(t, int64(2000), got.HDRItemCount)
	assert.Equal(t, int64(total), got.TotalItems)
	assert.Equal(t, int64(9000), got.AvgBitrateKbps)
	assert.Equal(t, int64(math.Round(float64(got.TotalSizeBytes)/float64(got.TotalItems))), got.AvgFileSizeBytes)
	assert.Equal(t, int64(2_500_000_000), got.AvgFileSizeBytes)
	assert.Equal(t, int64(6_000_000), got.AvgDurationMs)
}

func TestExtrapolate_ShortSample(t *testing.T) {
	plan := NewPlan(9000, DefaultLimits())

	got := Extrapolate(LibraryItemStats{TotalItems: 3, TotalSizeBytes: 30}, plan, 3)
	assert.Equal(t, int64(90000), got.TotalSizeBytes)
	assert.Equal(t, int64(9000), got.TotalItems)
	assert.Equal(t, int64(10), got.AvgFileSizeBytes)
}

func TestExtrapolate_Show(t *testing.T) {
	plan := NewPlan(6000, DefaultLimits())
	require.True(t, plan.Sampled)

	sample := LibraryItemStats{
		TotalItems:      40,
		TotalShows:      nullable.NewNullableWithValue[int64](40),
		TotalSeasons:    nullable.NewNullableWithValue[int64](101),
		TotalEpisodes:   nullable.NewNullableWithValue[int64](1500),
		TotalSizeBytes:  1500 * 1000,
		TotalDurationMs: 1500 * 100,
	}

	got := Extrapolate(sample, plan, 1500)
	assert.Equal(t, int64(160), got.TotalShows.MustGet())
	assert.Equal(t, int64(404), got.TotalSeasons.MustGet())
	assert.Equal(t, int64(6000), got.TotalEpisodes.MustGet())
	assert.Equal(t, got.TotalShows.MustGet(), got.TotalItems)
	assert.Equal(t, int64(6_000_000), got.TotalSizeBytes)
	assert.Equal(t, int64(37500), got.AvgFileSizeBytes)
	assert.Equal(t, int64(3750), got.AvgDurationMs)
}

func TestExtrapolate_DivideByZero(t *testing.T) {
	t.Run("nothing fetched from a sampled library", func(t *testing.T) {
		got := Extrapolate(LibraryItemStats{}, NewPlan(5000, DefaultLimits()), 0)
		assert.Equal(t, LibraryItemStats{}, got)
	})

	t.Run("nothing fetched from a sampled show library", func(t *testing.T) {
		sample := LibraryItemStats{TotalShows: nullable.NewNullableWithValue[int64](0)}
		got := Extrapolate(sample, NewPlan(5000, DefaultLimits()), 0)
		assert.Equal(t, int64(0), got.TotalShows.MustGet())
		assert.Equal(t, int64(0), got.TotalEpisodes.MustGet())
		assert.Equal(t, int64(0), got.AvgFileSizeBytes)
	})

	t.Run("empty library", func(t *testing.T) {
		got := Extrapolate(LibraryItemStats{}, NewPlan(0, DefaultLimits()), 0)
		assert.Equal(t, LibraryItemStats{}, got)
	})

	t.Run("sizes without items", func(t *testing.T) {
		got := Extrapolate(LibraryItemStats{TotalSizeBytes: 100}, NewPlan(0, DefaultLimits()), 0)
		assert.Equal(t, int64(0), got.AvgFileSizeBytes)
		assert.Equal(t, int64(0), got.AvgDurationMs)
	})
}
