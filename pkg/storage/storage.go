package storage

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/mediastat/pkg/machine"
	"github.com/kasuboski/mediastat/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")
var ErrJobAlreadyPending = errors.New("job of this type already pending")

type Storage interface {
	RunMigrations(ctx context.Context) error
	ServerStorage
	StatisticsStorage
	JobStorage
}

type ServerType string

const (
	ServerTypePlex     ServerType = "plex"
	ServerTypeJellyfin ServerType = "jellyfin"
	ServerTypeEmby     ServerType = "emby"
)

type ServerStorage interface {
	CreateMediaServer(ctx context.Context, server model.MediaServer) (int64, error)
	GetMediaServer(ctx context.Context, id int64) (*model.MediaServer, error)
	ListMediaServers(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.MediaServer, error)
	DeleteMediaServer(ctx context.Context, id int64) error
}

type JobState string

const (
	JobStateNew       JobState = ""
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateError     JobState = "error"
	JobStateDone      JobState = "done"
	JobStateCancelled JobState = "cancelled"
)

type Job struct {
	model.Job
	State     JobState   `alias:"job_transition.to_state" json:"state"`
	UpdatedAt *time.Time `alias:"job_transition.updated_at" json:"updatedAt"`
	Error     *string    `alias:"job_transition.error" json:"error"`
}

type JobTransition model.JobTransition

func (j Job) Machine() *machine.StateMachine[JobState] {
	return machine.New(j.State,
		machine.From(JobStateNew).To(JobStatePending),
		machine.From(JobStatePending).To(JobStateRunning, JobStateCancelled),
		machine.From(JobStateRunning).To(JobStateError, JobStateDone, JobStateCancelled),
	)
}

type JobStorage interface {
	CreateJob(ctx context.Context, job Job, initialState JobState) (int64, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	CountJobs(ctx context.Context, where ...sqlite.BoolExpression) (int, error)
	ListJobs(ctx context.Context, offset, limit int, where ...sqlite.BoolExpression) ([]*Job, error)
	UpdateJobState(ctx context.Context, id int64, state JobState, errorMsg *string) error
	DeleteJob(ctx context.Context, id int64) error
	DeleteJobs(ctx context.Context, where ...sqlite.BoolExpression) (int64, error)
}
