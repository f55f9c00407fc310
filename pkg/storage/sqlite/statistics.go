package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/mediastat/pkg/storage"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/table"
)

// UpsertLibraryStatistics writes the current statistics of a library, replacing any earlier run
func (s *SQLite) UpsertLibraryStatistics(ctx context.Context, record model.LibraryStatistics) error {
	ls := table.LibraryStatistics
	stmt := ls.
		INSERT(ls.MutableColumns).
		MODEL(record).
		ON_CONFLICT(ls.ServerID, ls.LibraryID).
		DO_UPDATE(sqlite.SET(
			ls.LibraryName.SET(ls.EXCLUDED.LibraryName),
			ls.LibraryType.SET(ls.EXCLUDED.LibraryType),
			ls.TotalItems.SET(ls.EXCLUDED.TotalItems),
			ls.TotalEpisodes.SET(ls.EXCLUDED.TotalEpisodes),
			ls.TotalSeasons.SET(ls.EXCLUDED.TotalSeasons),
			ls.TotalShows.SET(ls.EXCLUDED.TotalShows),
			ls.TotalSizeBytes.SET(ls.EXCLUDED.TotalSizeBytes),
			ls.TotalDurationMs.SET(ls.EXCLUDED.TotalDurationMs),
			ls.AvgFileSizeBytes.SET(ls.EXCLUDED.AvgFileSizeBytes),
			ls.AvgDurationMs.SET(ls.EXCLUDED.AvgDurationMs),
			ls.AvgBitrateKbps.SET(ls.EXCLUDED.AvgBitrateKbps),
			ls.HdrItemCount.SET(ls.EXCLUDED.HdrItemCount),
			ls.Sampled.SET(ls.EXCLUDED.Sampled),
			ls.LastUpdatedAt.SET(ls.EXCLUDED.LastUpdatedAt),
		))

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to upsert library statistics: %w", err)
	}

	return nil
}

// TouchLibraryStatistics marks the given libraries as refreshed at the provided time
func (s *SQLite) TouchLibraryStatistics(ctx context.Context, serverID int64, libraryIDs []string, at time.Time) (int64, error) {
	if len(libraryIDs) == 0 {
		return 0, nil
	}

	ids := make([]sqlite.Expression, len(libraryIDs))
	for i, id := range libraryIDs {
		ids[i] = sqlite.String(id)
	}

	stmt := table.LibraryStatistics.
		UPDATE(table.LibraryStatistics.LastUpdatedAt).
		MODEL(model.LibraryStatistics{LastUpdatedAt: at}).
		WHERE(
			table.LibraryStatistics.ServerID.EQ(sqlite.Int64(serverID)).
				AND(table.LibraryStatistics.LibraryID.IN(ids...)),
		)

	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to touch library statistics: %w", err)
	}

	return result.RowsAffected()
}

// ListLibraryStatistics lists current library statistics ordered by server and library name
func (s *SQLite) ListLibraryStatistics(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.LibraryStatistics, error) {
	stmt := table.LibraryStatistics.
		SELECT(table.LibraryStatistics.AllColumns).
		FROM(table.LibraryStatistics)

	if len(where) > 0 {
		stmt = stmt.WHERE(whereAll(where))
	}

	records := make([]*model.LibraryStatistics, 0)
	err := stmt.
		ORDER_BY(table.LibraryStatistics.ServerID.ASC(), table.LibraryStatistics.LibraryName.ASC()).
		QueryContext(ctx, s.db, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to list library statistics: %w", err)
	}

	return records, nil
}

// SummarizeLibraryStatistics sums the current statistics, optionally for a single server
func (s *SQLite) SummarizeLibraryStatistics(ctx context.Context, serverID *int64) (storage.LibraryTotals, error) {
	var totals storage.LibraryTotals

	// Use raw SQL since Jet ORM doesn't properly handle aggregate queries with custom structs
	query := `
		SELECT COUNT(id),
		       COALESCE(SUM(total_items), 0),
		       COALESCE(SUM(total_size_bytes), 0),
		       COALESCE(SUM(total_duration_ms), 0),
		       COALESCE(SUM(hdr_item_count), 0)
		FROM library_statistics`
	args := []any{}
	if serverID != nil {
		query += ` WHERE server_id = ?`
		args = append(args, *serverID)
	}

	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&totals.Libraries,
		&totals.TotalItems,
		&totals.TotalSizeBytes,
		&totals.TotalDurationMs,
		&totals.HDRItemCount,
	)
	if err != nil {
		return totals, fmt.Errorf("failed to summarize library statistics: %w", err)
	}

	return totals, nil
}

// CreateLibrarySnapshot records the daily snapshot of a library. An existing snapshot for the
// same day is kept and false is returned.
func (s *SQLite) CreateLibrarySnapshot(ctx context.Context, snapshot model.LibrarySnapshot) (bool, error) {
	lsn := table.LibrarySnapshot
	stmt := lsn.
		INSERT(lsn.AllColumns.Except(lsn.ID, lsn.CreatedAt)).
		MODEL(snapshot).
		ON_CONFLICT(lsn.ServerID, lsn.LibraryID, lsn.SnapshotDate).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return false, fmt.Errorf("failed to create library snapshot: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return n == 1, nil
}

// ListLibrarySnapshots lists snapshots ordered by date ascending
func (s *SQLite) ListLibrarySnapshots(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.LibrarySnapshot, error) {
	stmt := table.LibrarySnapshot.
		SELECT(table.LibrarySnapshot.AllColumns).
		FROM(table.LibrarySnapshot)

	if len(where) > 0 {
		stmt = stmt.WHERE(whereAll(where))
	}

	snapshots := make([]*model.LibrarySnapshot, 0)
	err := stmt.
		ORDER_BY(
			table.LibrarySnapshot.SnapshotDate.ASC(),
			table.LibrarySnapshot.ServerID.ASC(),
			table.LibrarySnapshot.LibraryName.ASC(),
		).
		QueryContext(ctx, s.db, &snapshots)
	if err != nil {
		return nil, fmt.Errorf("failed to list library snapshots: %w", err)
	}

	return snapshots, nil
}
