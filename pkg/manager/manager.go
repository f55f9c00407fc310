package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/kasuboski/mediastat/config"
	"github.com/kasuboski/mediastat/pkg/librarystats"
	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/pkg/mediasource"
	"github.com/kasuboski/mediastat/pkg/pagination"
	"github.com/kasuboski/mediastat/pkg/storage"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

// ErrValidation is returned when a request does not pass validation
var ErrValidation = errors.New("validation failed")

var validate = validator.New()

// forgetter is implemented by factories that keep per server state
type forgetter interface {
	Forget(serverID int32)
}

type MediaManager struct {
	storage   storage.Storage
	sources   mediasource.Factory
	collector *librarystats.Collector
	reader    *librarystats.Reader
	summaries *librarystats.SummaryCache
	scheduler *Scheduler
	config    config.Config
}

func New(store storage.Storage, sources mediasource.Factory, cfg config.Config, opts ...librarystats.CollectorOption) *MediaManager {
	m := &MediaManager{
		storage:   store,
		sources:   sources,
		collector: librarystats.NewCollector(store, sources, limitsFromConfig(cfg.Stats), opts...),
		reader:    librarystats.NewReader(store),
		summaries: librarystats.NewSummaryCache(),
		config:    cfg,
	}

	m.scheduler = NewScheduler(store, cfg.Manager, map[JobType]JobExecutor{
		StatsCollect: func(ctx context.Context, jobID int64) error {
			_, err := m.collector.UpdateAll(m.withSummaries(ctx))
			return err
		},
		StatsSnapshot: func(ctx context.Context, jobID int64) error {
			_, err := m.collector.SnapshotAll(m.withSummaries(ctx))
			return err
		},
	})

	return m
}

func limitsFromConfig(cfg config.Stats) librarystats.Limits {
	return librarystats.Limits{
		SamplingThreshold: cfg.SamplingThreshold,
		SampleSize:        cfg.SampleSize,
		MaxItemsToProcess: cfg.MaxItems,
		PageSize:          cfg.PageSize,
		PageTimeout:       cfg.PageTimeout,
	}
}

func (m *MediaManager) withSummaries(ctx context.Context) context.Context {
	return librarystats.WithSummaryCache(ctx, m.summaries)
}

// Run starts the job scheduler and blocks until ctx is done
func (m *MediaManager) Run(ctx context.Context) error {
	log := logger.FromCtx(ctx)
	log.Info("starting manager")
	return m.scheduler.Run(m.withSummaries(ctx))
}

// AddServer registers a media server
func (m *MediaManager) AddServer(ctx context.Context, request AddServerRequest) (ServerResponse, error) {
	log := logger.FromCtx(ctx)

	request.Type = strings.ToLower(strings.TrimSpace(request.Type))
	request.URL = strings.TrimRight(strings.TrimSpace(request.URL), "/")
	if err := validate.Struct(request); err != nil {
		return ServerResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	id, err := m.storage.CreateMediaServer(ctx, model.MediaServer{
		Name:  request.Name,
		Type:  request.Type,
		URL:   request.URL,
		Token: request.Token,
	})
	if err != nil {
		log.Errorw("failed to create media server", zap.Error(err))
		return ServerResponse{}, err
	}

	server, err := m.storage.GetMediaServer(ctx, id)
	if err != nil {
		return ServerResponse{}, err
	}

	log.Infow("added media server", zap.Int64("server_id", id), zap.String("type", server.Type))
	return toServerResponse(server), nil
}

// ListServers lists every registered media server
func (m *MediaManager) ListServers(ctx context.Context) ([]ServerResponse, error) {
	servers, err := m.storage.ListMediaServers(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ServerResponse, 0, len(servers))
	for _, s := range servers {
		resp = append(resp, toServerResponse(s))
	}
	return resp, nil
}

// DeleteServer removes a media server along with its statistics and snapshots
func (m *MediaManager) DeleteServer(ctx context.Context, id int64) error {
	if err := m.storage.DeleteMediaServer(ctx, id); err != nil {
		return err
	}

	if f, ok := m.sources.(forgetter); ok {
		f.Forget(int32(id))
	}
	m.summaries.Clear()

	logger.FromCtx(ctx).Infow("removed media server", zap.Int64("server_id", id))
	return nil
}

// GetLibraryStatistics returns the current statistics and their history. A zeroed summary
// is returned alongside any error so callers can always render something.
func (m *MediaManager) GetLibraryStatistics(ctx context.Context, serverID *int64, days int) (*librarystats.Summary, error) {
	if days <= 0 {
		days = m.historyDays()
	}

	summary, err := m.reader.GetCurrentAndHistory(m.withSummaries(ctx), serverID, days)
	if err != nil {
		logger.FromCtx(ctx).Errorw("failed to read library statistics", zap.Error(err))
		return librarystats.EmptySummary(), err
	}
	return summary, nil
}

func (m *MediaManager) historyDays() int {
	if m.config.Stats.HistoryDays > 0 {
		return m.config.Stats.HistoryDays
	}
	return librarystats.DefaultHistoryDays
}

// RefreshStatistics collects the statistics of one server, or every server when serverID is nil
func (m *MediaManager) RefreshStatistics(ctx context.Context, serverID *int64) ([]librarystats.RunResult, error) {
	ctx = m.withSummaries(ctx)
	if serverID == nil {
		return m.collector.UpdateAll(ctx)
	}

	result, err := m.collector.UpdateServer(ctx, *serverID)
	if err != nil {
		return nil, err
	}
	return []librarystats.RunResult{result}, nil
}

// SnapshotStatistics records today's snapshot of one server, or every server when serverID is nil
func (m *MediaManager) SnapshotStatistics(ctx context.Context, serverID *int64) ([]librarystats.SnapshotResult, error) {
	ctx = m.withSummaries(ctx)
	if serverID == nil {
		return m.collector.SnapshotAll(ctx)
	}

	result, err := m.collector.SnapshotServer(ctx, *serverID)
	if err != nil {
		return nil, err
	}
	return []librarystats.SnapshotResult{result}, nil
}

// ListJobs lists jobs newest first
func (m *MediaManager) ListJobs(ctx context.Context, filter ListJobsFilter, params pagination.Params) (*JobListResponse, error) {
	where := make([]sqlite.BoolExpression, 0, 2)
	if filter.Type != "" {
		where = append(where, table.Job.Type.EQ(sqlite.String(filter.Type)))
	}
	if filter.State != "" {
		where = append(where, table.JobTransition.ToState.EQ(sqlite.String(filter.State)))
	}

	count, err := m.storage.CountJobs(ctx, where...)
	if err != nil {
		return nil, err
	}

	offset, limit := params.CalculateOffsetLimit()
	jobs, err := m.storage.ListJobs(ctx, offset, limit, where...)
	if err != nil {
		return nil, err
	}

	resp := &JobListResponse{
		Jobs:       make([]JobResponse, 0, len(jobs)),
		Count:      len(jobs),
		Pagination: params.BuildMeta(count),
	}
	for _, job := range jobs {
		resp.Jobs = append(resp.Jobs, toJobResponse(job))
	}

	return resp, nil
}

func (m *MediaManager) GetJob(ctx context.Context, id int64) (*JobResponse, error) {
	job, err := m.storage.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toJobResponse(job)
	return &resp, nil
}

// CreateJob queues a job of the requested type for the scheduler to run
func (m *MediaManager) CreateJob(ctx context.Context, request TriggerJobRequest) (*JobResponse, error) {
	if err := validate.Struct(request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if !isValidJobType(request.Type) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJobType, request.Type)
	}

	id, err := m.scheduler.createPendingJob(ctx, JobType(request.Type))
	if err != nil {
		return nil, err
	}

	return m.GetJob(ctx, id)
}

// CancelJob cancels a pending or running job
func (m *MediaManager) CancelJob(ctx context.Context, id int64) (*JobResponse, error) {
	if err := m.scheduler.CancelJob(ctx, id); err != nil {
		return nil, err
	}

	return m.GetJob(ctx, id)
}
