package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/kasuboski/mediastat/pkg/librarystats"
	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0s", formatDuration(0))
	assert.Equal(t, "1h30m0s", formatDuration((90 * time.Minute).Milliseconds()))
	assert.Equal(t, "2d 3h", formatDuration((51 * time.Hour).Milliseconds()))
}

func TestServerFilter(t *testing.T) {
	assert.Nil(t, serverFilter(0))
	assert.Nil(t, serverFilter(-3))

	id := serverFilter(4)
	if assert.NotNil(t, id) {
		assert.Equal(t, int64(4), *id)
	}
}

func TestPrintSummary(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		printSummary(&out, librarystats.EmptySummary())

		s := out.String()
		assert.Contains(t, s, "0 libraries")
		assert.NotRegexp(t, `(?m)^DATE\s+ITEMS`, s)
		assert.Equal(t, 2, strings.Count(s, "\n"))
	})

	t.Run("libraries and history", func(t *testing.T) {
		summary := librarystats.EmptySummary()
		summary.Current.Libraries = 1
		summary.Current.TotalItems = 12000
		summary.Current.TotalSizeBytes = 3_000_000_000
		summary.Current.Items = []librarystats.LibrarySummary{{
			ServerID:      1,
			LibraryName:   "Movies",
			LibraryType:   "movie",
			Sampled:       true,
			LastUpdatedAt: time.Now(),
			LibraryItemStats: librarystats.LibraryItemStats{
				TotalItems:     12000,
				TotalSizeBytes: 3_000_000_000,
				AvgBitrateKbps: 8000,
			},
		}}
		summary.History = []librarystats.HistoryEntry{{Date: "2026-10-15", TotalItems: 11000}}

		var out bytes.Buffer
		printSummary(&out, summary)

		s := out.String()
		assert.Contains(t, s, "Movies")
		assert.Contains(t, s, "~12,000")
		assert.Contains(t, s, "3.0 GB")
		assert.Contains(t, s, "8 Mbps")
		assert.Regexp(t, `(?m)^DATE\s+ITEMS`, s)
		assert.Contains(t, s, "2026-10-15")
		assert.Contains(t, s, "11,000")
	})

	t.Run("totals and history", func(t *testing.T) {
		summary := librarystats.EmptySummary()
		summary.Current.Libraries = 2
		summary.Current.TotalItems = 4200
		summary.Current.TotalSizeBytes = 9_500_000_000
		summary.Current.TotalDurationMs = (50 * time.Hour).Milliseconds()
		summary.Current.HDRItemCount = 310
		summary.History = []librarystats.HistoryEntry{
			{Date: "2026-10-14", TotalItems: 4100, TotalSizeBytes: 9_000_000_000, TotalDurationMs: (49 * time.Hour).Milliseconds()},
			{Date: "2026-10-15", TotalItems: 4200, TotalSizeBytes: 9_500_000_000, TotalDurationMs: (50 * time.Hour).Milliseconds()},
		}

		var out bytes.Buffer
		printSummary(&out, summary)

		snaps.MatchSnapshot(t, out.String())
	})
}
