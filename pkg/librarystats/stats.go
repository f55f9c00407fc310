package librarystats

import (
	"math"

	"github.com/oapi-codegen/nullable"
)

// LibraryItemStats are the statistics of one library. The show fields are only specified for
// show-like libraries, whose item unit is the show.
type LibraryItemStats struct {
	TotalItems       int64                    `json:"totalItems"`
	TotalEpisodes    nullable.Nullable[int64] `json:"totalEpisodes,omitempty"`
	TotalSeasons     nullable.Nullable[int64] `json:"totalSeasons,omitempty"`
	TotalShows       nullable.Nullable[int64] `json:"totalShows,omitempty"`
	TotalSizeBytes   int64                    `json:"totalSizeBytes"`
	TotalDurationMs  int64                    `json:"totalDurationMs"`
	AvgFileSizeBytes int64                    `json:"avgFileSizeBytes"`
	AvgDurationMs    int64                    `json:"avgDurationMs"`
	AvgBitrateKbps   int64                    `json:"avgBitrateKbps"`
	HDRItemCount     int64                    `json:"hdrItemCount"`
}

// IsShow reports whether the stats carry show cardinality
func (s LibraryItemStats) IsShow() bool {
	return s.TotalShows.IsSpecified()
}

func zeroStats(show bool) LibraryItemStats {
	var s LibraryItemStats
	if show {
		s.TotalEpisodes = nullable.NewNullableWithValue[int64](0)
		s.TotalSeasons = nullable.NewNullableWithValue[int64](0)
		s.TotalShows = nullable.NewNullableWithValue[int64](0)
	}
	return s
}

// withAverages recomputes the size and duration averages over TotalItems
func (s LibraryItemStats) withAverages() LibraryItemStats {
	s.AvgFileSizeBytes = divRound(s.TotalSizeBytes, s.TotalItems)
	s.AvgDurationMs = divRound(s.TotalDurationMs, s.TotalItems)
	return s
}

func divRound(total, n int64) int64 {
	if n == 0 {
		return 0
	}
	return int64(math.Round(float64(total) / float64(n)))
}

func scale(v int64, ratio float64) int64 {
	return int64(math.Round(float64(v) * ratio))
}

// valueOr returns the value of n, or fallback when it is unset or null
func valueOr(n nullable.Nullable[int64], fallback int64) int64 {
	v, err := n.Get()
	if err != nil {
		return fallback
	}
	return v
}

// optional converts n to the pointer form stored in the database
func optional(n nullable.Nullable[int64]) *int64 {
	v, err := n.Get()
	if err != nil {
		return nil
	}
	return &v
}

func fromOptional(v *int64) nullable.Nullable[int64] {
	if v == nil {
		return nullable.Nullable[int64]{}
	}
	return nullable.NewNullableWithValue(*v)
}
