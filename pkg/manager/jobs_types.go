package manager

import (
	"time"

	"github.com/kasuboski/mediastat/pkg/pagination"
	"github.com/kasuboski/mediastat/pkg/storage"
)

// TriggerJobRequest represents the request to manually trigger a job
type TriggerJobRequest struct {
	Type string `json:"type" validate:"required"`
}

// JobResponse represents a single job in API responses
type JobResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	State     string    `json:"state"`
	Finished  bool      `json:"finished"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Error     *string   `json:"error,omitempty"`
}

// JobListResponse represents a page of jobs in API responses
type JobListResponse struct {
	Jobs       []JobResponse   `json:"jobs"`
	Count      int             `json:"count"`
	Pagination pagination.Meta `json:"pagination"`
}

// ListJobsFilter narrows a job listing. Empty fields match every job.
type ListJobsFilter struct {
	Type  string
	State string
}

// toJobResponse converts a storage.Job to a JobResponse
func toJobResponse(job *storage.Job) JobResponse {
	resp := JobResponse{
		ID:       int64(job.ID),
		Type:     job.Type,
		State:    string(job.State),
		Finished: job.Machine().Terminal(),
		Error:    job.Error,
	}

	if job.CreatedAt != nil {
		resp.CreatedAt = *job.CreatedAt
	}
	if job.UpdatedAt != nil {
		resp.UpdatedAt = *job.UpdatedAt
	}
	return resp
}

// isValidJobType validates that a job type string matches one of the defined JobType constants
func isValidJobType(jobType string) bool {
	switch JobType(jobType) {
	case StatsCollect, StatsSnapshot:
		return true
	default:
		return false
	}
}
