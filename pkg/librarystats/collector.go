package librarystats

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/pkg/mediasource"
	"github.com/kasuboski/mediastat/pkg/metrics"
	"github.com/kasuboski/mediastat/pkg/storage"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

// Collector refreshes the statistics of registered media servers
type Collector struct {
	storage storage.Storage
	sources mediasource.Factory
	limits  Limits
	now     func() time.Time
}

type CollectorOption func(*Collector)

// WithClock replaces time.Now, used for timestamps and snapshot dates
func WithClock(now func() time.Time) CollectorOption {
	return func(c *Collector) {
		c.now = now
	}
}

func NewCollector(store storage.Storage, sources mediasource.Factory, limits Limits, opts ...CollectorOption) *Collector {
	c := &Collector{
		storage: store,
		sources: sources,
		limits:  limits.withDefaults(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunResult summarises one collection run of a server
type RunResult struct {
	ServerID  int64         `json:"serverId"`
	Processed int           `json:"processed"`
	Skipped   int           `json:"skipped"`
	Failed    int           `json:"failed"`
	Sampled   int           `json:"sampled"`
	Duration  time.Duration `json:"duration"`
}

// SnapshotResult summarises the daily snapshot of a server
type SnapshotResult struct {
	ServerID int64  `json:"serverId"`
	Date     string `json:"date"`
	Created  int    `json:"created"`
	Existing int    `json:"existing"`
	Failed   int    `json:"failed"`
}

// UpdateServer collects the statistics of every supported library of the server.
// A failing library is logged and skipped. Errors are returned only when the server
// itself cannot be read or the context ends.
func (c *Collector) UpdateServer(ctx context.Context, serverID int64) (RunResult, error) {
	result := RunResult{ServerID: serverID}
	start := c.now()
	label := strconv.FormatInt(serverID, 10)
	log := logger.FromCtx(ctx).With(zap.Int64("server_id", serverID))

	server, err := c.storage.GetMediaServer(ctx, serverID)
	if err != nil {
		return result, fmt.Errorf("failed to get media server %d: %w", serverID, err)
	}

	source, err := c.sources.NewSource(*server)
	if err != nil {
		return result, fmt.Errorf("failed to create source for server %d: %w", serverID, err)
	}

	extractor, err := ExtractorFor(source.Kind())
	if err != nil {
		return result, err
	}

	libraries, err := source.ListLibraries(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list libraries of server %d: %w", serverID, err)
	}

	log.Infow("collecting library statistics", zap.Int("libraries", len(libraries)))

	succeeded := make([]string, 0, len(libraries))
	for _, library := range libraries {
		llog := log.With(
			zap.String("library_id", library.ID),
			zap.String("library_type", library.Type))

		if library.Class() == mediasource.ClassUnsupported {
			llog.Debugw("skipping unsupported library")
			result.Skipped++
			metrics.LibrariesCollected.WithLabelValues(label, "skipped").Inc()
			continue
		}

		if err := ctx.Err(); err != nil {
			result.Failed++
			metrics.LibrariesCollected.WithLabelValues(label, "failed").Inc()
			continue
		}

		sampled, err := c.updateLibrary(logger.WithCtx(ctx, llog), server.ID, source, extractor, library, label)
		if err != nil {
			llog.Errorw("failed to collect library statistics", zap.Error(err))
			result.Failed++
			metrics.LibrariesCollected.WithLabelValues(label, "failed").Inc()
			continue
		}

		result.Processed++
		if sampled {
			result.Sampled++
		}
		metrics.LibrariesCollected.WithLabelValues(label, "processed").Inc()
		succeeded = append(succeeded, library.ID)
	}

	if len(succeeded) > 0 {
		if _, err := c.storage.TouchLibraryStatistics(ctx, serverID, succeeded, c.now().UTC()); err != nil {
			log.Warnw("failed to mark libraries as refreshed", zap.Error(err))
		}
		InvalidateSummaries(ctx)
	}

	result.Duration = c.now().Sub(start)
	metrics.CollectionDuration.WithLabelValues(label).Observe(result.Duration.Seconds())

	log.Infow("collected library statistics",
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
		zap.Int("sampled", result.Sampled),
		zap.Duration("duration", result.Duration))

	return result, ctx.Err()
}

func (c *Collector) updateLibrary(ctx context.Context, serverID int32, source mediasource.Source, extractor Extractor, library mediasource.Library, label string) (bool, error) {
	log := logger.FromCtx(ctx)

	total, err := source.CountItems(ctx, library)
	if err != nil {
		log.Warnw("failed to count library items, assuming empty", zap.Error(err))
		total = 0
	}

	plan := NewPlan(total, c.limits)
	log.Debugw("planned library fetch",
		zap.Int("total", plan.Total),
		zap.Int("max_items", plan.MaxItems),
		zap.Int("stride", plan.Stride),
		zap.Bool("sampled", plan.Sampled))

	acc := newAccumulator(library.Class())
	fetched, err := fetchLibrary(ctx, source, library, plan, c.limits, extractor, acc)
	if err != nil {
		log.Warnw("library fetch ended early", zap.Int("fetched", fetched), zap.Error(err))
	}
	metrics.ItemsFetched.WithLabelValues(label).Add(float64(fetched))
	if plan.Sampled {
		metrics.SampledLibraries.WithLabelValues(label).Inc()
	}

	stats := Extrapolate(acc.stats(), plan, fetched)

	record := toRecord(serverID, library, stats, plan.Sampled, c.now().UTC())
	if err := c.storage.UpsertLibraryStatistics(ctx, record); err != nil {
		return false, err
	}

	return plan.Sampled, nil
}

func toRecord(serverID int32, library mediasource.Library, stats LibraryItemStats, sampled bool, at time.Time) model.LibraryStatistics {
	return model.LibraryStatistics{
		ServerID:         serverID,
		LibraryID:        library.ID,
		LibraryName:      library.Name,
		LibraryType:      library.Type,
		TotalItems:       stats.TotalItems,
		TotalEpisodes:    optional(stats.TotalEpisodes),
		TotalSeasons:     optional(stats.TotalSeasons),
		TotalShows:       optional(stats.TotalShows),
		TotalSizeBytes:   stats.TotalSizeBytes,
		TotalDurationMs:  stats.TotalDurationMs,
		AvgFileSizeBytes: stats.AvgFileSizeBytes,
		AvgDurationMs:    stats.AvgDurationMs,
		AvgBitrateKbps:   stats.AvgBitrateKbps,
		HdrItemCount:     stats.HDRItemCount,
		Sampled:          sampled,
		LastUpdatedAt:    at,
	}
}

// UpdateAll updates every registered server in turn. A failing server is logged and the run
// moves on to the next one.
func (c *Collector) UpdateAll(ctx context.Context) ([]RunResult, error) {
	log := logger.FromCtx(ctx)

	servers, err := c.storage.ListMediaServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list media servers: %w", err)
	}

	results := make([]RunResult, 0, len(servers))
	for _, server := range servers {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := c.UpdateServer(ctx, int64(server.ID))
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return append(results, result), err
			}
			log.Errorw("failed to update server statistics", zap.Int32("server_id", server.ID), zap.Error(err))
			continue
		}
		results = append(results, result)
	}

	return results, nil
}

// SnapshotServer records today's snapshot of every library of the server from its current
// statistics. Libraries already snapshotted today are left untouched.
func (c *Collector) SnapshotServer(ctx context.Context, serverID int64) (SnapshotResult, error) {
	date := storage.SnapshotDate(c.now())
	result := SnapshotResult{ServerID: serverID, Date: date}
	log := logger.FromCtx(ctx).With(zap.Int64("server_id", serverID), zap.String("snapshot_date", date))

	if _, err := c.storage.GetMediaServer(ctx, serverID); err != nil {
		return result, fmt.Errorf("failed to get media server %d: %w", serverID, err)
	}

	records, err := c.storage.ListLibraryStatistics(ctx, table.LibraryStatistics.ServerID.EQ(sqlite.Int64(serverID)))
	if err != nil {
		return result, fmt.Errorf("failed to list statistics of server %d: %w", serverID, err)
	}

	for _, r := range records {
		created, err := c.storage.CreateLibrarySnapshot(ctx, model.LibrarySnapshot{
			ServerID:        r.ServerID,
			LibraryID:       r.LibraryID,
			LibraryName:     r.LibraryName,
			SnapshotDate:    date,
			TotalItems:      r.TotalItems,
			TotalSizeBytes:  r.TotalSizeBytes,
			TotalDurationMs: r.TotalDurationMs,
		})
		switch {
		case err != nil:
			log.Errorw("failed to snapshot library", zap.String("library_id", r.LibraryID), zap.Error(err))
			result.Failed++
		case created:
			result.Created++
		default:
			result.Existing++
		}
	}

	if result.Created > 0 {
		metrics.SnapshotsCreated.WithLabelValues(strconv.FormatInt(serverID, 10)).Add(float64(result.Created))
		InvalidateSummaries(ctx)
	}

	log.Infow("snapshotted library statistics",
		zap.Int("created", result.Created),
		zap.Int("existing", result.Existing),
		zap.Int("failed", result.Failed))

	return result, nil
}

// SnapshotAll snapshots every registered server
func (c *Collector) SnapshotAll(ctx context.Context) ([]SnapshotResult, error) {
	log := logger.FromCtx(ctx)

	servers, err := c.storage.ListMediaServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list media servers: %w", err)
	}

	results := make([]SnapshotResult, 0, len(servers))
	for _, server := range servers {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := c.SnapshotServer(ctx, int64(server.ID))
		if err != nil {
			log.Errorw("failed to snapshot server", zap.Int32("server_id", server.ID), zap.Error(err))
			continue
		}
		results = append(results, result)
	}

	return results, nil
}
