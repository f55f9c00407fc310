package storage

import (
	"context"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/model"
)

// SnapshotDateFormat is the layout of library_snapshot.snapshot_date.
const SnapshotDateFormat = time.DateOnly

// StatisticsStorage persists the current per-library statistics and their daily history
type StatisticsStorage interface {
	// UpsertLibraryStatistics inserts the record or overwrites the existing one for (server_id, library_id)
	UpsertLibraryStatistics(ctx context.Context, record model.LibraryStatistics) error
	// TouchLibraryStatistics sets last_updated_at for the given libraries of a server in one statement
	TouchLibraryStatistics(ctx context.Context, serverID int64, libraryIDs []string, at time.Time) (int64, error)
	ListLibraryStatistics(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.LibraryStatistics, error)
	SummarizeLibraryStatistics(ctx context.Context, serverID *int64) (LibraryTotals, error)

	// CreateLibrarySnapshot inserts the snapshot unless one exists for the same day and reports whether a row was written
	CreateLibrarySnapshot(ctx context.Context, snapshot model.LibrarySnapshot) (bool, error)
	ListLibrarySnapshots(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.LibrarySnapshot, error)
}

// LibraryTotals is the sum of the current statistics across libraries
type LibraryTotals struct {
	Libraries       int   `json:"libraries"`
	TotalItems      int64 `json:"totalItems"`
	TotalSizeBytes  int64 `json:"totalSizeBytes"`
	TotalDurationMs int64 `json:"totalDurationMs"`
	HDRItemCount    int64 `json:"hdrItemCount"`
}

// SnapshotDate formats t as a snapshot_date key. Days are UTC calendar days.
func SnapshotDate(t time.Time) string {
	return t.UTC().Format(SnapshotDateFormat)
}
