package server

import (
	"net/http"

	"github.com/kasuboski/mediastat/pkg/logger"
	"go.uber.org/zap"
)

// GetLibraryStatistics returns current statistics and their history. Read failures still
// answer 200 with a zeroed summary and the error message.
func (s Server) GetLibraryStatistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		serverID, err := parseServerID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		days, err := parseDays(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		summary, err := s.manager.GetLibraryStatistics(r.Context(), serverID, days)
		resp := GenericResponse{Response: summary}
		if err != nil {
			resp.Error = err.Error()
		}

		if err := writeResponse(w, http.StatusOK, resp); err != nil {
			log.Errorw("failed to write response", zap.Error(err))
		}
	}
}

// RefreshStatistics collects statistics for one server or all of them
func (s Server) RefreshStatistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		serverID, err := parseServerID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		results, err := s.manager.RefreshStatistics(r.Context(), serverID)
		if err != nil {
			log.Errorw("failed to refresh statistics", zap.Error(err))
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: results})
	}
}

// SnapshotStatistics records today's snapshot for one server or all of them
func (s Server) SnapshotStatistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		serverID, err := parseServerID(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		results, err := s.manager.SnapshotStatistics(r.Context(), serverID)
		if err != nil {
			log.Errorw("failed to snapshot statistics", zap.Error(err))
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: results})
	}
}
