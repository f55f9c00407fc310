package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kasuboski/mediastat/pkg/logger"
	"go.uber.org/zap"
)

func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New().String()
			log := s.baseLogger.With(
				zap.String("request_path", r.URL.Path),
				zap.String("method", r.Method),
				zap.String("id", id),
			)
			w.Header().Set("X-Request-Id", id)
			h.ServeHTTP(w, r.WithContext(logger.WithCtx(r.Context(), log)))
		})
	}
}
