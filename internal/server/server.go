package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.com/emarket/devoluciones/internal/devolucion"
	"gitlab.com/emarket/devoluciones/internal/storage"
)

type Server struct {
	orchestrator Orchestrator
	userRepo     storage.UserRepository
	logger       *zap.Logger
	server       *http.Server
}

func New(orchestrator Orchestrator, userRepo storage.UserRepository, logger *zap.Logger) *Server {
	return &Server{
		orchestrator: orchestrator,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (s *Server) Run(ctx context.Context, addr string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("HTTP server starting", zap.String("addr", addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("HTTP server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/devolucion").Subrouter()
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/{id}/historial", s.handleHistorial).Methods(http.MethodGet)
	api.HandleFunc("/{id}/aprobar", s.handleApprove).Methods(http.MethodPatch)
	api.HandleFunc("/{id}/rechazar", s.handleReject).Methods(http.MethodPatch)
	// Legacy direct-refund approval path kept for one existing client.
	api.HandleFunc("/{id}/approve", s.handleExecuteRefund).Methods(http.MethodPost)
	api.HandleFunc("/{id}/complete", s.handleComplete).Methods(http.MethodPatch)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps the orchestrator's error taxonomy onto status
// codes: NotFound -> 404, InvalidState / version races -> 409, rest -> 500.
func (s *Server) respondDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, devolucion.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, devolucion.ErrInvalidState), errors.Is(err, devolucion.ErrVersionConflict):
		respondError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("Operation failed", zap.String("operation", op), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
