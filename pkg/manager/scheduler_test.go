package manager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kasuboski/mediastat/config"
	"github.com/kasuboski/mediastat/pkg/storage"
	mediaSqlite "github.com/kasuboski/mediastat/pkg/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initStore(t *testing.T, ctx context.Context) storage.Storage {
	t.Helper()

	store, err := mediaSqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, store.RunMigrations(ctx))
	return store
}

// finishJob moves a pending job through running to state
func finishJob(t *testing.T, ctx context.Context, store storage.Storage, id int64, state storage.JobState) {
	t.Helper()

	require.NoError(t, store.UpdateJobState(ctx, id, storage.JobStateRunning, nil))
	require.NoError(t, store.UpdateJobState(ctx, id, state, nil))
}

func TestScheduler_createPendingJob(t *testing.T) {
	t.Run("invalid job type", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)

		scheduler := NewScheduler(store, config.Manager{}, make(map[JobType]JobExecutor))
		id, err := scheduler.createPendingJob(ctx, "my-fake-job")

		assert.Equal(t, int64(0), id)
		assert.ErrorIs(t, err, ErrInvalidJobType)
	})

	t.Run("create job and duplicate pending job", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)

		scheduler := NewScheduler(store, config.Manager{}, make(map[JobType]JobExecutor))

		id, err := scheduler.createPendingJob(ctx, StatsCollect)
		require.NoError(t, err)
		assert.NotEqual(t, int64(0), id)

		jobs, err := scheduler.listPendingJobs(ctx)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, int32(id), jobs[0].ID)
		assert.Equal(t, string(StatsCollect), jobs[0].Type)
		assert.NotNil(t, jobs[0].CreatedAt)

		id, err = scheduler.createPendingJob(ctx, StatsCollect)
		assert.ErrorIs(t, err, storage.ErrJobAlreadyPending)
		assert.Equal(t, int64(0), id)

		_, err = scheduler.createPendingJob(ctx, StatsSnapshot)
		require.NoError(t, err)
	})
}

func TestScheduler_listPendingJobs(t *testing.T) {
	ctx := context.Background()
	store := initStore(t, ctx)
	scheduler := NewScheduler(store, config.Manager{}, make(map[JobType]JobExecutor))

	jobs, err := scheduler.listPendingJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	collectID, err := scheduler.createPendingJob(ctx, StatsCollect)
	require.NoError(t, err)
	require.NoError(t, store.UpdateJobState(ctx, collectID, storage.JobStateRunning, nil))

	snapshotID, err := scheduler.createPendingJob(ctx, StatsSnapshot)
	require.NoError(t, err)

	jobs, err = scheduler.listPendingJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, snapshotID, int64(jobs[0].ID))
	assert.Equal(t, string(StatsSnapshot), jobs[0].Type)
}

func TestScheduler_executeJob(t *testing.T) {
	t.Run("successful job execution", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)

		var calledWith int64
		executors := map[JobType]JobExecutor{
			StatsCollect: func(ctx context.Context, jobID int64) error {
				calledWith = jobID
				return nil
			},
		}
		scheduler := NewScheduler(store, config.Manager{}, executors)

		jobID, err := scheduler.createPendingJob(ctx, StatsCollect)
		require.NoError(t, err)

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)

		scheduler.executeJob(ctx, job)

		assert.Equal(t, jobID, calledWith)
		job, err = store.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, storage.JobStateDone, job.State)
		assert.Nil(t, job.Error)
		assert.Equal(t, 0, scheduler.runningJobs.Size())
	})

	t.Run("no executor found for job type", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)
		scheduler := NewScheduler(store, config.Manager{}, make(map[JobType]JobExecutor))

		jobID, err := scheduler.createPendingJob(ctx, StatsSnapshot)
		require.NoError(t, err)

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)

		scheduler.executeJob(ctx, job)

		job, err = store.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, storage.JobStateError, job.State)
		require.NotNil(t, job.Error)
		assert.Equal(t, "no executor found for job type", *job.Error)
	})

	t.Run("executor returns error", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)

		executors := map[JobType]JobExecutor{
			StatsCollect: func(ctx context.Context, jobID int64) error {
				return errors.New("plex unreachable")
			},
		}
		scheduler := NewScheduler(store, config.Manager{}, executors)

		jobID, err := scheduler.createPendingJob(ctx, StatsCollect)
		require.NoError(t, err)

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)

		scheduler.executeJob(ctx, job)

		job, err = store.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, storage.JobStateError, job.State)
		require.NotNil(t, job.Error)
		assert.Equal(t, "plex unreachable", *job.Error)
	})

	t.Run("job is tracked while running", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)

		var wasRunning bool
		var scheduler *Scheduler
		executors := map[JobType]JobExecutor{
			StatsCollect: func(ctx context.Context, jobID int64) error {
				_, wasRunning = scheduler.runningJobs.Get(jobID)
				return nil
			},
		}
		scheduler = NewScheduler(store, config.Manager{}, executors)

		jobID, err := scheduler.createPendingJob(ctx, StatsCollect)
		require.NoError(t, err)
		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)

		scheduler.executeJob(ctx, job)

		assert.True(t, wasRunning)
		_, stillRunning := scheduler.runningJobs.Get(jobID)
		assert.False(t, stillRunning)
	})
}

func TestScheduler_runPendingJobs(t *testing.T) {
	ctx := context.Background()
	store := initStore(t, ctx)

	var order []JobType
	executors := map[JobType]JobExecutor{
		StatsCollect: func(ctx context.Context, jobID int64) error {
			order = append(order, StatsCollect)
			return nil
		},
		StatsSnapshot: func(ctx context.Context, jobID int64) error {
			order = append(order, StatsSnapshot)
			return nil
		},
	}
	scheduler := NewScheduler(store, config.Manager{}, executors)

	_, err := scheduler.createPendingJob(ctx, StatsCollect)
	require.NoError(t, err)
	_, err = scheduler.createPendingJob(ctx, StatsSnapshot)
	require.NoError(t, err)

	scheduler.runPendingJobs(ctx)

	assert.Equal(t, []JobType{StatsCollect, StatsSnapshot}, order)

	pending, err := scheduler.listPendingJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestScheduler_CancelJob(t *testing.T) {
	t.Run("cancel pending job", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)
		scheduler := NewScheduler(store, config.Manager{}, make(map[JobType]JobExecutor))

		jobID, err := scheduler.createPendingJob(ctx, StatsCollect)
		require.NoError(t, err)

		require.NoError(t, scheduler.CancelJob(ctx, jobID))

		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, storage.JobStateCancelled, job.State)
	})

	t.Run("cancel running job", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)

		started := make(chan struct{})
		executors := map[JobType]JobExecutor{
			StatsCollect: func(ctx context.Context, jobID int64) error {
				close(started)
				<-ctx.Done()
				return ctx.Err()
			},
		}
		scheduler := NewScheduler(store, config.Manager{}, executors)

		jobID, err := scheduler.createPendingJob(ctx, StatsCollect)
		require.NoError(t, err)
		job, err := store.GetJob(ctx, jobID)
		require.NoError(t, err)

		done := make(chan struct{})
		go func() {
			defer close(done)
			scheduler.executeJob(ctx, job)
		}()

		select {
		case <-started:
		case <-time.After(5 * time.Second):
			t.Fatal("job did not start")
		}

		require.NoError(t, scheduler.CancelJob(ctx, jobID))
		<-done

		job, err = store.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, storage.JobStateCancelled, job.State)
	})

	t.Run("finished jobs are left alone", func(t *testing.T) {
		for _, state := range []storage.JobState{storage.JobStateDone, storage.JobStateError, storage.JobStateCancelled} {
			t.Run(string(state), func(t *testing.T) {
				ctx := context.Background()
				store := initStore(t, ctx)
				scheduler := NewScheduler(store, config.Manager{}, make(map[JobType]JobExecutor))

				jobID, err := scheduler.createPendingJob(ctx, StatsSnapshot)
				require.NoError(t, err)
				if state == storage.JobStateCancelled {
					require.NoError(t, store.UpdateJobState(ctx, jobID, state, nil))
				} else {
					finishJob(t, ctx, store, jobID, state)
				}

				require.NoError(t, scheduler.CancelJob(ctx, jobID))

				job, err := store.GetJob(ctx, jobID)
				require.NoError(t, err)
				assert.Equal(t, state, job.State)
			})
		}
	})

	t.Run("cancel non-existent job", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)
		scheduler := NewScheduler(store, config.Manager{}, make(map[JobType]JobExecutor))

		err := scheduler.CancelJob(ctx, 999)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestIsValidJobType(t *testing.T) {
	assert.True(t, isValidJobType(string(StatsCollect)))
	assert.True(t, isValidJobType(string(StatsSnapshot)))
	assert.False(t, isValidJobType(""))
	assert.False(t, isValidJobType("statscollect"))
	assert.False(t, isValidJobType("MovieIndex"))
}

func TestToJobResponse(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	t.Run("job with error", func(t *testing.T) {
		msg := "boom"
		job := &storage.Job{State: storage.JobStateError, Error: &msg, UpdatedAt: &now}
		job.ID = 4
		job.Type = string(StatsSnapshot)
		job.CreatedAt = &now

		resp := toJobResponse(job)
		assert.Equal(t, int64(4), resp.ID)
		assert.Equal(t, "StatsSnapshot", resp.Type)
		assert.Equal(t, "error", resp.State)
		assert.True(t, resp.Finished)
		assert.Equal(t, now, resp.CreatedAt)
		assert.Equal(t, now, resp.UpdatedAt)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "boom", *resp.Error)
	})

	t.Run("missing timestamps", func(t *testing.T) {
		resp := toJobResponse(&storage.Job{State: storage.JobStatePending})
		assert.False(t, resp.Finished)
		assert.True(t, resp.CreatedAt.IsZero())
		assert.True(t, resp.UpdatedAt.IsZero())
		assert.Nil(t, resp.Error)
	})
}

func TestScheduler_checkAndScheduleJob(t *testing.T) {
	t.Run("no previous jobs schedules immediately", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)
		scheduler := NewScheduler(store, config.Manager{}, make(map[JobType]JobExecutor))

		scheduler.checkAndScheduleJob(ctx, StatsCollect)

		jobs, err := scheduler.listPendingJobs(ctx)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, string(StatsCollect), jobs[0].Type)
	})

	t.Run("pending job is not duplicated", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)
		scheduler := NewScheduler(store, config.Manager{}, make(map[JobType]JobExecutor))

		scheduler.checkAndScheduleJob(ctx, StatsCollect)
		scheduler.checkAndScheduleJob(ctx, StatsCollect)

		jobs, err := store.ListJobs(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("interval elapsed schedules new job", func(t *testing.T) {
		for _, state := range []storage.JobState{storage.JobStateDone, storage.JobStateError} {
			t.Run(string(state), func(t *testing.T) {
				ctx := context.Background()
				store := initStore(t, ctx)
				cfg := config.Manager{Jobs: config.Jobs{StatsCollect: time.Hour}}
				scheduler := NewScheduler(store, cfg, make(map[JobType]JobExecutor))

				jobID, err := scheduler.createPendingJob(ctx, StatsCollect)
				require.NoError(t, err)
				finishJob(t, ctx, store, jobID, state)

				scheduler.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
				scheduler.checkAndScheduleJob(ctx, StatsCollect)

				jobs, err := scheduler.listPendingJobs(ctx)
				require.NoError(t, err)
				require.Len(t, jobs, 1)
				assert.NotEqual(t, jobID, int64(jobs[0].ID))
			})
		}
	})

	t.Run("interval not elapsed does not schedule", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)
		cfg := config.Manager{Jobs: config.Jobs{StatsSnapshot: 24 * time.Hour}}
		scheduler := NewScheduler(store, cfg, make(map[JobType]JobExecutor))

		jobID, err := scheduler.createPendingJob(ctx, StatsSnapshot)
		require.NoError(t, err)
		finishJob(t, ctx, store, jobID, storage.JobStateDone)

		scheduler.checkAndScheduleJob(ctx, StatsSnapshot)

		jobs, err := scheduler.listPendingJobs(ctx)
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("running job is not duplicated", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)
		scheduler := NewScheduler(store, config.Manager{}, make(map[JobType]JobExecutor))

		jobID, err := scheduler.createPendingJob(ctx, StatsCollect)
		require.NoError(t, err)
		require.NoError(t, store.UpdateJobState(ctx, jobID, storage.JobStateRunning, nil))

		scheduler.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
		scheduler.checkAndScheduleJob(ctx, StatsCollect)

		jobs, err := store.ListJobs(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})
}

func TestScheduler_pruneOldJobs(t *testing.T) {
	t.Run("retains minimum jobs per type", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)
		cfg := config.Manager{Jobs: config.Jobs{CleanupPeriod: time.Hour, MinJobsToKeep: 2}}
		scheduler := NewScheduler(store, cfg, make(map[JobType]JobExecutor))

		for range 5 {
			jobID, err := scheduler.createPendingJob(ctx, StatsCollect)
			require.NoError(t, err)
			finishJob(t, ctx, store, jobID, storage.JobStateDone)
		}
		snapshotID, err := scheduler.createPendingJob(ctx, StatsSnapshot)
		require.NoError(t, err)
		finishJob(t, ctx, store, snapshotID, storage.JobStateDone)

		scheduler.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		scheduler.pruneOldJobs(ctx)

		remaining, err := store.ListJobs(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, remaining, 3)
	})

	t.Run("recent jobs are kept", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)
		cfg := config.Manager{Jobs: config.Jobs{CleanupPeriod: time.Hour}}
		scheduler := NewScheduler(store, cfg, make(map[JobType]JobExecutor))

		for range 3 {
			jobID, err := scheduler.createPendingJob(ctx, StatsCollect)
			require.NoError(t, err)
			finishJob(t, ctx, store, jobID, storage.JobStateDone)
		}

		scheduler.pruneOldJobs(ctx)

		remaining, err := store.ListJobs(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, remaining, 3)
	})

	t.Run("unfinished jobs are kept", func(t *testing.T) {
		ctx := context.Background()
		store := initStore(t, ctx)
		cfg := config.Manager{Jobs: config.Jobs{CleanupPeriod: time.Hour}}
		scheduler := NewScheduler(store, cfg, make(map[JobType]JobExecutor))

		pendingID, err := scheduler.createPendingJob(ctx, StatsCollect)
		require.NoError(t, err)
		doneID, err := scheduler.createPendingJob(ctx, StatsSnapshot)
		require.NoError(t, err)
		finishJob(t, ctx, store, doneID, storage.JobStateDone)

		scheduler.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		scheduler.pruneOldJobs(ctx)

		remaining, err := store.ListJobs(ctx, 0, 0)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, pendingID, int64(remaining[0].ID))
	})
}

func TestScheduler_getIntervalForJobType(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		cfg := config.Manager{Jobs: config.Jobs{StatsCollect: time.Hour, StatsSnapshot: 12 * time.Hour}}
		scheduler := NewScheduler(nil, cfg, nil)

		assert.Equal(t, time.Hour, scheduler.getIntervalForJobType(StatsCollect))
		assert.Equal(t, 12*time.Hour, scheduler.getIntervalForJobType(StatsSnapshot))
	})

	t.Run("defaults", func(t *testing.T) {
		scheduler := NewScheduler(nil, config.Manager{}, nil)

		assert.Equal(t, 6*time.Hour, scheduler.getIntervalForJobType(StatsCollect))
		assert.Equal(t, 24*time.Hour, scheduler.getIntervalForJobType(StatsSnapshot))
		assert.Equal(t, 10*time.Minute, scheduler.getIntervalForJobType("unknown"))
	})
}
