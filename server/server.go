package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kasuboski/mediastat/pkg/manager"
	"github.com/kasuboski/mediastat/pkg/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies for the statistics api such as loggers and the manager
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.MediaManager
}

// New creates a new statistics server
func New(logger *zap.SugaredLogger, manager *manager.MediaManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// statusFor maps manager and storage errors to http status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, manager.ErrValidation), errors.Is(err, manager.ErrInvalidJobType):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrJobAlreadyPending):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Router builds the routes served by the api
func (s Server) Router() *mux.Router {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)
	rtr.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/servers", s.ListServers()).Methods(http.MethodGet)
	v1.HandleFunc("/servers", s.AddServer()).Methods(http.MethodPost)
	v1.HandleFunc("/servers/{id}", s.DeleteServer()).Methods(http.MethodDelete)

	v1.HandleFunc("/statistics/libraries", s.GetLibraryStatistics()).Methods(http.MethodGet)
	v1.HandleFunc("/statistics/refresh", s.RefreshStatistics()).Methods(http.MethodPost)
	v1.HandleFunc("/statistics/snapshot", s.SnapshotStatistics()).Methods(http.MethodPost)

	v1.HandleFunc("/jobs", s.ListJobs()).Methods(http.MethodGet)
	v1.HandleFunc("/jobs", s.CreateJob()).Methods(http.MethodPost)
	v1.HandleFunc("/jobs/{id}", s.GetJob()).Methods(http.MethodGet)
	v1.HandleFunc("/jobs/{id}/cancel", s.CancelJob()).Methods(http.MethodPost)

	return rtr
}

// Serve starts the http server and blocks until ctx is done
func (s Server) Serve(ctx context.Context, port int) error {
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(s.Router())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.baseLogger.Infow("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.baseLogger.Error(err.Error())
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
