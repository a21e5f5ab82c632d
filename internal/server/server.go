// Package server implements the portal's data server: it fronts the two
// static JSON resources (user directory and product catalog) over GET and
// turns an unreadable resource into a generic failure response instead of
// leaking filesystem detail.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"loginportal/internal/logging"
)

type Server struct {
	addr    string
	dataDir string
	log     logging.Logger
}

func New(addr, dataDir string, log logging.Logger) *Server {
	return &Server{addr: addr, dataDir: dataDir, log: log}
}

// Router builds the route table. The data files are exposed under the same
// names the original portal fetched them by.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogging)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/users.json", s.handleUsers).Methods(http.MethodGet)
	r.HandleFunc("/products.json", s.handleProducts).Methods(http.MethodGet)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info(ctx, "data server listening", "addr", s.addr, "data_dir", s.dataDir)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
