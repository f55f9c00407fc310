package server

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/pkg/manager"
	"go.uber.org/zap"
)

// ListJobs lists jobs, optionally filtered by type and state
func (s Server) ListJobs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		filter := manager.ListJobsFilter{
			Type:  r.URL.Query().Get("type"),
			State: r.URL.Query().Get("state"),
		}

		jobs, err := s.manager.ListJobs(r.Context(), filter, params)
		if err != nil {
			log.Errorw("failed to list jobs", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: jobs})
	}
}

// CreateJob manually triggers a job by type
func (s Server) CreateJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var request manager.TriggerJobRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		job, err := s.manager.CreateJob(r.Context(), request)
		if err != nil {
			log.Errorw("failed to create job", zap.String("type", request.Type), zap.Error(err))
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{Response: job})
	}
}

func (s Server) GetJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(mux.Vars(r)["id"])
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		job, err := s.manager.GetJob(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: job})
	}
}

// CancelJob cancels a pending or running job
func (s Server) CancelJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := parsePathID(mux.Vars(r)["id"])
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		job, err := s.manager.CancelJob(r.Context(), id)
		if err != nil {
			log.Errorw("failed to cancel job", zap.Int64("job_id", id), zap.Error(err))
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: job})
	}
}
