package librarystats

import (
	"context"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/pkg/storage"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

// DefaultHistoryDays is the history window used when none is requested
const DefaultHistoryDays = 90

// Summary is the current state of the libraries and their daily history, oldest day first
type Summary struct {
	Current Current        `json:"current"`
	History []HistoryEntry `json:"history"`
}

type Current struct {
	Libraries       int              `json:"libraries"`
	TotalItems      int64            `json:"totalItems"`
	TotalSizeBytes  int64            `json:"totalSizeBytes"`
	TotalDurationMs int64            `json:"totalDurationMs"`
	HDRItemCount    int64            `json:"hdrItemCount"`
	LastUpdatedAt   time.Time        `json:"lastUpdatedAt"`
	Items           []LibrarySummary `json:"items"`
}

type LibrarySummary struct {
	ServerID      int64     `json:"serverId"`
	LibraryID     string    `json:"libraryId"`
	LibraryName   string    `json:"libraryName"`
	LibraryType   string    `json:"libraryType"`
	Sampled       bool      `json:"sampled"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LibraryItemStats
}

type HistoryEntry struct {
	Date            string           `json:"date"`
	TotalItems      int64            `json:"totalItems"`
	TotalSizeBytes  int64            `json:"totalSizeBytes"`
	TotalDurationMs int64            `json:"totalDurationMs"`
	Libraries       []HistoryLibrary `json:"libraries"`
}

type HistoryLibrary struct {
	ServerID        int64  `json:"serverId"`
	LibraryID       string `json:"libraryId"`
	LibraryName     string `json:"libraryName"`
	TotalItems      int64  `json:"totalItems"`
	TotalSizeBytes  int64  `json:"totalSizeBytes"`
	TotalDurationMs int64  `json:"totalDurationMs"`
}

// EmptySummary is a zeroed summary with empty lists
func EmptySummary() *Summary {
	return &Summary{
		Current: Current{Items: []LibrarySummary{}},
		History: []HistoryEntry{},
	}
}

// Reader assembles statistics summaries from storage
type Reader struct {
	storage storage.StatisticsStorage
	now     func() time.Time
}

func NewReader(store storage.StatisticsStorage) *Reader {
	return &Reader{storage: store, now: time.Now}
}

// GetCurrentAndHistory summarises the current statistics, optionally of a single server, with
// the snapshots of the last days. Summaries are memoised in the cache carried by ctx.
func (r *Reader) GetCurrentAndHistory(ctx context.Context, serverID *int64, days int) (*Summary, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}

	now := r.now()
	c, ok := SummaryCacheFromCtx(ctx)
	if !ok {
		return r.summarize(ctx, serverID, days, now)
	}

	key := summaryKey(serverID, days, now)
	if s, ok := c.Get(key); ok {
		return s, nil
	}

	gen := c.Generation()
	s, err := r.summarize(ctx, serverID, days, now)
	if err != nil {
		return nil, err
	}
	if !c.SetIfGeneration(key, s, gen) {
		logger.FromCtx(ctx).Debugw("statistics changed while summarizing, not caching", zap.Stringer("summary", key))
	}

	return s, nil
}

func (r *Reader) summarize(ctx context.Context, serverID *int64, days int, now time.Time) (*Summary, error) {
	summary := EmptySummary()

	totals, err := r.storage.SummarizeLibraryStatistics(ctx, serverID)
	if err != nil {
		return nil, err
	}
	summary.Current.Libraries = totals.Libraries
	summary.Current.TotalItems = totals.TotalItems
	summary.Current.TotalSizeBytes = totals.TotalSizeBytes
	summary.Current.TotalDurationMs = totals.TotalDurationMs
	summary.Current.HDRItemCount = totals.HDRItemCount

	var statsWhere []sqlite.BoolExpression
	if serverID != nil {
		statsWhere = append(statsWhere, table.LibraryStatistics.ServerID.EQ(sqlite.Int64(*serverID)))
	}
	records, err := r.storage.ListLibraryStatistics(ctx, statsWhere...)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		summary.Current.Items = append(summary.Current.Items, toLibrarySummary(rec))
		if rec.LastUpdatedAt.After(summary.Current.LastUpdatedAt) {
			summary.Current.LastUpdatedAt = rec.LastUpdatedAt
		}
	}

	snapshotWhere := []sqlite.BoolExpression{
		table.LibrarySnapshot.SnapshotDate.GT_EQ(sqlite.String(storage.SnapshotDate(now.AddDate(0, 0, -days)))),
		table.LibrarySnapshot.SnapshotDate.LT_EQ(sqlite.String(storage.SnapshotDate(now))),
	}
	if serverID != nil {
		snapshotWhere = append(snapshotWhere, table.LibrarySnapshot.ServerID.EQ(sqlite.Int64(*serverID)))
	}
	snapshots, err := r.storage.ListLibrarySnapshots(ctx, snapshotWhere...)
	if err != nil {
		return nil, err
	}
	summary.History = groupByDate(snapshots)

	return summary, nil
}

func toLibrarySummary(rec *model.LibraryStatistics) LibrarySummary {
	return LibrarySummary{
		ServerID:      int64(rec.ServerID),
		LibraryID:     rec.LibraryID,
		LibraryName:   rec.LibraryName,
		LibraryType:   rec.LibraryType,
		Sampled:       rec.Sampled,
		LastUpdatedAt: rec.LastUpdatedAt,
		LibraryItemStats: LibraryItemStats{
			TotalItems:       rec.TotalItems,
			TotalEpisodes:    fromOptional(rec.TotalEpisodes),
			TotalSeasons:     fromOptional(rec.TotalSeasons),
			TotalShows:       fromOptional(rec.TotalShows),
			TotalSizeBytes:   rec.TotalSizeBytes,
			TotalDurationMs:  rec.TotalDurationMs,
			AvgFileSizeBytes: rec.AvgFileSizeBytes,
			AvgDurationMs:    rec.AvgDurationMs,
			AvgBitrateKbps:   rec.AvgBitrateKbps,
			HDRItemCount:     rec.HdrItemCount,
		},
	}
}

// groupByDate groups snapshots ordered by date into one entry per date
func groupByDate(snapshots []*model.LibrarySnapshot) []HistoryEntry {
	history := make([]HistoryEntry, 0)
	for _, s := range snapshots {
		if len(history) == 0 || history[len(history)-1].Date != s.SnapshotDate {
			history = append(history, HistoryEntry{
				Date:      s.SnapshotDate,
				Libraries: make([]HistoryLibrary, 0),
			})
		}

		entry := &history[len(history)-1]
		entry.TotalItems += s.TotalItems
		entry.TotalSizeBytes += s.TotalSizeBytes
		entry.TotalDurationMs += s.TotalDurationMs
		entry.Libraries = append(entry.Libraries, HistoryLibrary{
			ServerID:        int64(s.ServerID),
			LibraryID:       s.LibraryID,
			LibraryName:     s.LibraryName,
			TotalItems:      s.TotalItems,
			TotalSizeBytes:  s.TotalSizeBytes,
			TotalDurationMs: s.TotalDurationMs,
		})
	}
	return history
}

// String describes the window of a summary, used in log lines
func (k SummaryKey) String() string {
	if k.AllServers {
		return fmt.Sprintf("all servers, %d days to %s", k.Days, k.Date)
	}
	return fmt.Sprintf("server %d, %d days to %s", k.ServerID, k.Days, k.Date)
}
