package server

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/pkg/manager"
	"go.uber.org/zap"
)

// ListServers lists the registered media servers
func (s Server) ListServers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		servers, err := s.manager.ListServers(r.Context())
		if err != nil {
			log.Errorw("failed to list servers", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: servers})
	}
}

// AddServer registers a media server
func (s Server) AddServer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var request manager.AddServerRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Debugw("failed to decode add server request", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		server, err := s.manager.AddServer(r.Context(), request)
		if err != nil {
			log.Errorw("failed to add server", zap.Error(err))
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{Response: server})
	}
}

// DeleteServer removes a media server and everything collected for it
func (s Server) DeleteServer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := parsePathID(mux.Vars(r)["id"])
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		if err := s.manager.DeleteServer(r.Context(), id); err != nil {
			log.Errorw("failed to delete server", zap.Int64("server_id", id), zap.Error(err))
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: id})
	}
}
