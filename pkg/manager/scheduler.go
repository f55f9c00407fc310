package manager

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/mediastat/config"
	"github.com/kasuboski/mediastat/pkg/cache"
	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/pkg/storage"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

type JobType string

const (
	// StatsCollect refreshes the statistics of every media server
	StatsCollect JobType = "StatsCollect"
	// StatsSnapshot records the daily snapshot of every media server
	StatsSnapshot JobType = "StatsSnapshot"
)

var jobTypes = []JobType{StatsCollect, StatsSnapshot}

const (
	defaultStatsCollectInterval  = 6 * time.Hour
	defaultStatsSnapshotInterval = 24 * time.Hour
	defaultScheduleInterval      = time.Minute
	pendingPollInterval          = 5 * time.Second
)

var ErrInvalidJobType = errors.New("invalid job type")

type JobExecutor func(ctx context.Context, jobID int64) error

type Scheduler struct {
	storage     storage.Storage
	config      config.Manager
	executors   map[JobType]JobExecutor
	runningJobs *cache.Cache[int64, context.CancelFunc]
	now         func() time.Time
}

// NewScheduler creates a new scheduler for jobs
func NewScheduler(storage storage.Storage, config config.Manager, executors map[JobType]JobExecutor) *Scheduler {
	return &Scheduler{
		storage:     storage,
		config:      config,
		executors:   executors,
		runningJobs: cache.New[int64, context.CancelFunc](),
		now:         time.Now,
	}
}

func (s *Scheduler) Run(ctx context.Context) error {
	go s.processPendingJobs(ctx)
	go s.runPruning(ctx)
	return s.runJobScheduling(ctx)
}

func (s *Scheduler) runPruning(ctx context.Context) {
	if s.config.Jobs.CleanupPeriod <= 0 {
		return
	}

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pruneOldJobs(ctx)
		}
	}
}

func (s *Scheduler) pruneOldJobs(ctx context.Context) {
	log := logger.FromCtx(ctx)

	cutoff := s.now().UTC().Add(-s.config.Jobs.CleanupPeriod)

	jobIDsToPreserve := make([]int32, 0)
	if s.config.Jobs.MinJobsToKeep > 0 {
		for _, jobType := range jobTypes {
			where := table.Job.Type.EQ(sqlite.String(string(jobType)))
			jobs, err := s.storage.ListJobs(ctx, 0, s.config.Jobs.MinJobsToKeep, where)
			if err != nil {
				log.Errorw("failed to list jobs for preservation",
					zap.String("type", string(jobType)),
					zap.Error(err))
				return
			}

			for _, job := range jobs {
				jobIDsToPreserve = append(jobIDsToPreserve, job.ID)
			}
		}
	}

	log.Debugw("jobs to preserve",
		zap.Int("count", len(jobIDsToPreserve)),
		zap.Int32s("ids", jobIDsToPreserve))

	whereConditions := []sqlite.BoolExpression{
		table.Job.CreatedAt.LT(sqlite.TimestampExp(sqlite.String(cutoff.Format(time.DateTime)))),
		table.JobTransition.ToState.IN(
			sqlite.String(string(storage.JobStateDone)),
			sqlite.String(string(storage.JobStateError)),
			sqlite.String(string(storage.JobStateCancelled)),
		),
	}
	if len(jobIDsToPreserve) > 0 {
		ids := make([]sqlite.Expression, len(jobIDsToPreserve))
		for i, id := range jobIDsToPreserve {
			ids[i] = sqlite.Int32(id)
		}
		whereConditions = append(whereConditions,
			table.Job.ID.NOT_IN(ids...),
		)
	}

	finished, err := s.storage.ListJobs(ctx, 0, 0, whereConditions...)
	if err != nil {
		log.Errorw("failed to list jobs to prune", zap.Error(err))
		return
	}
	if len(finished) == 0 {
		return
	}

	ids := make([]sqlite.Expression, len(finished))
	for i, job := range finished {
		ids[i] = sqlite.Int32(job.ID)
	}

	deleted, err := s.storage.DeleteJobs(ctx, table.Job.ID.IN(ids...))
	if err != nil {
		log.Errorw("failed to prune old jobs", zap.Error(err))
		return
	}

	if deleted > 0 {
		log.Infow("pruned old jobs", zap.Int64("count", deleted))
	}
}

func (s *Scheduler) runJobScheduling(ctx context.Context) error {
	interval := s.config.Jobs.JobScheduleInterval
	if interval <= 0 {
		interval = defaultScheduleInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return s.shutdownJobs(ctx)
		case <-ticker.C:
			for _, jobType := range jobTypes {
				s.checkAndScheduleJob(ctx, jobType)
			}
		}
	}
}

func (s *Scheduler) shutdownJobs(ctx context.Context) error {
	log := logger.FromCtx(ctx)
	log.Debug("scheduler context cancelled")

	// the scheduler context is done, cancelling needs a live one to record the new states
	cancelCtx := context.WithoutCancel(ctx)
	jobIDs := s.runningJobs.Keys()

	var wg sync.WaitGroup
	for _, id := range jobIDs {
		wg.Add(1)
		go func(jobID int64) {
			defer wg.Done()
			if err := s.CancelJob(cancelCtx, jobID); err != nil {
				log.Warnw("failed to cancel job on context cancellation",
					zap.Int64("job_id", jobID),
					zap.Error(err))
			}
		}(id)
	}

	wg.Wait()
	log.Debugw("all jobs cancelled on context cancellation", zap.Int("count", len(jobIDs)))
	return nil
}

func (s *Scheduler) checkAndScheduleJob(ctx context.Context, jobType JobType) {
	log := logger.FromCtx(ctx).With(zap.String("job_type", string(jobType)))

	interval := s.getIntervalForJobType(jobType)

	jobs, err := s.storage.ListJobs(ctx, 0, 1, table.Job.Type.EQ(sqlite.String(string(jobType))))
	if err != nil {
		log.Errorw("failed to get last job", zap.Error(err))
		return
	}

	if len(jobs) == 0 {
		log.Debug("no previous jobs found, scheduling immediately")
		_, err := s.createPendingJob(ctx, jobType)
		if err != nil && !errors.Is(err, storage.ErrJobAlreadyPending) {
			log.Errorw("failed to create pending job", zap.Error(err))
		}
		return
	}

	lastJob := jobs[0]

	switch lastJob.State {
	case storage.JobStatePending, storage.JobStateRunning:
		log.Debugw("job already pending or running, not scheduling",
			zap.String("state", string(lastJob.State)))
		return
	case storage.JobStateDone, storage.JobStateError, storage.JobStateCancelled:
		timeSinceLastJob := s.now().Sub(*lastJob.CreatedAt)

		if timeSinceLastJob >= interval {
			log.Debugw("interval elapsed, scheduling job",
				zap.Duration("time_since_last", timeSinceLastJob),
				zap.Duration("interval", interval))
			_, err := s.createPendingJob(ctx, jobType)
			if err != nil && !errors.Is(err, storage.ErrJobAlreadyPending) {
				log.Errorw("failed to create pending job", zap.Error(err))
			}
			return
		}

		log.Debugw("interval not elapsed yet",
			zap.Duration("time_since_last", timeSinceLastJob),
			zap.Duration("interval", interval),
			zap.Duration("time_remaining", interval-timeSinceLastJob))
	}
}

func (s *Scheduler) getIntervalForJobType(jobType JobType) time.Duration {
	var interval time.Duration
	switch jobType {
	case StatsCollect:
		interval = s.config.Jobs.StatsCollect
		if interval <= 0 {
			interval = defaultStatsCollectInterval
		}
	case StatsSnapshot:
		interval = s.config.Jobs.StatsSnapshot
		if interval <= 0 {
			interval = defaultStatsSnapshotInterval
		}
	default:
		interval = 10 * time.Minute
	}
	return interval
}

func (s *Scheduler) createPendingJob(ctx context.Context, jobType JobType) (int64, error) {
	newJobType := string(jobType)
	log := logger.FromCtx(ctx).With(zap.String("job_type", newJobType))

	if !isValidJobType(newJobType) {
		return 0, ErrInvalidJobType
	}

	job := storage.Job{
		Job: model.Job{
			Type: newJobType,
		},
	}

	id, err := s.storage.CreateJob(ctx, job, storage.JobStatePending)
	if errors.Is(err, storage.ErrJobAlreadyPending) {
		log.Debug("pending job already exists for type")
		return 0, err
	}
	if err != nil {
		log.Errorw("failed to create pending job", zap.Error(err))
		return 0, err
	}
	log.Debugw("created pending job", zap.Int64("id", id))
	return id, nil
}

func (s *Scheduler) listPendingJobs(ctx context.Context) ([]*storage.Job, error) {
	where := table.JobTransition.ToState.EQ(sqlite.String(string(storage.JobStatePending)))
	return s.storage.ListJobs(ctx, 0, 0, where)
}

func (s *Scheduler) processPendingJobs(ctx context.Context) {
	ticker := time.NewTicker(pendingPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runPendingJobs(ctx)
		}
	}
}

// runPendingJobs executes pending jobs oldest first
func (s *Scheduler) runPendingJobs(ctx context.Context) {
	log := logger.FromCtx(ctx)

	jobs, err := s.listPendingJobs(ctx)
	if err != nil {
		log.Debugw("failed to list pending jobs", zap.Error(err))
		return
	}
	if len(jobs) == 0 {
		return
	}

	log.Debugw("found pending jobs", zap.Int("count", len(jobs)))

	for i := len(jobs) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return
		}

		s.executeJob(ctx, jobs[i])
	}
}

func (s *Scheduler) executeJob(ctx context.Context, job *storage.Job) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("job_id", int64(job.ID)),
		zap.String("job_type", job.Type),
	)

	executor, ok := s.executors[JobType(job.Type)]
	if !ok {
		log.Error("no executor found for job type")
		errMsg := "no executor found for job type"
		if err := s.storage.UpdateJobState(ctx, int64(job.ID), storage.JobStateRunning, nil); err != nil {
			log.Errorw("failed to update job state to running", zap.Error(err))
			return
		}
		s.storage.UpdateJobState(ctx, int64(job.ID), storage.JobStateError, &errMsg)
		return
	}

	err := s.storage.UpdateJobState(ctx, int64(job.ID), storage.JobStateRunning, nil)
	if err != nil {
		log.Errorw("failed to update job state to running", zap.Error(err))
		return
	}

	jobCtx, cancel := context.WithCancel(logger.WithCtx(ctx, log))
	defer cancel()

	s.runningJobs.Set(int64(job.ID), cancel)

	defer func() {
		s.runningJobs.Delete(int64(job.ID))
	}()

	log.Info("executing job")

	err = executor(jobCtx, int64(job.ID))
	// states are recorded even when the scheduler itself is shutting down
	stateCtx := context.WithoutCancel(ctx)
	if err != nil {
		if errors.Is(jobCtx.Err(), context.Canceled) {
			log.Info("job cancelled")
			s.storage.UpdateJobState(stateCtx, int64(job.ID), storage.JobStateCancelled, nil)
			return
		}

		log.Errorw("job execution failed", zap.Error(err))
		errMsg := err.Error()
		s.storage.UpdateJobState(stateCtx, int64(job.ID), storage.JobStateError, &errMsg)
		return
	}

	err = s.storage.UpdateJobState(stateCtx, int64(job.ID), storage.JobStateDone, nil)
	if err != nil {
		log.Errorw("failed to update job state to done", zap.Error(err))
		return
	}

	log.Info("job completed successfully")
}

// CancelJob cancels a pending job or stops a running one and waits for it to finish
func (s *Scheduler) CancelJob(ctx context.Context, jobID int64) error {
	log := logger.FromCtx(ctx).With(zap.Int64("job_id", jobID))

	job, err := s.storage.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	if !job.Machine().Can(storage.JobStateCancelled) {
		log.Debugw("job can not be cancelled", zap.String("state", string(job.State)))
		return nil
	}

	if job.State == storage.JobStatePending {
		log.Debug("cancelling pending job")
		return s.storage.UpdateJobState(ctx, jobID, storage.JobStateCancelled, nil)
	}

	cancel, ok := s.runningJobs.Get(jobID)
	if !ok {
		log.Debug("job not found in running jobs map")
		return nil
	}

	log.Debug("cancelling running job")
	cancel()

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			log.Error("timeout waiting for job to complete cancellation")
			return nil
		case <-ticker.C:
			if _, exists := s.runningJobs.Get(jobID); !exists {
				log.Debug("job was cancelled")
				return nil
			}
		}
	}
}
