package librarystats

import "github.com/oapi-codegen/nullable"

// Extrapolate scales statistics computed from fetched items to the planned total.
// Exhaustive plans only get their averages computed. Episodes of a show-like library
// are counted exactly by the count probe and are set to the total instead of scaled.
// The average bitrate is scale invariant and is kept as is.
func Extrapolate(s LibraryItemStats, plan Plan, fetched int) LibraryItemStats {
	if !plan.Sampled {
		return s.withAverages()
	}
	if fetched <= 0 {
		return zeroStats(s.IsShow())
	}

	ratio := float64(plan.Total) / float64(fetched)

	out := s
	out.TotalSizeBytes = scale(s.TotalSizeBytes, ratio)
	out.TotalDurationMs = scale(s.TotalDurationMs, ratio)
	out.HDRItemCount = scale(s.HDRItemCount, ratio)

	if s.IsShow() {
		shows := scale(valueOr(s.TotalShows, 0), ratio)
		out.TotalShows = nullable.NewNullableWithValue(shows)
		out.TotalSeasons = nullable.NewNullableWithValue(scale(valueOr(s.TotalSeasons, 0), ratio))
		out.TotalEpisodes = nullable.NewNullableWithValue(int64(plan.Total))
		out.TotalItems = shows
	} else {
		out.TotalItems = int64(plan.Total)
	}

	return out.withAverages()
}
