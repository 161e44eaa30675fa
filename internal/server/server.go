package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"vsixfetch/internal/catalog"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	contentTypeHeader        = "Content-Type"
	contentDispositionHeader = "Content-Disposition"

	jsonContentType        = "application/json"
	octetStreamContentType = "application/octet-stream"
)

// Server is a read-only HTTP mirror over the download catalog: it lists what
// was downloaded and serves the stored VSIX files.
type Server struct {
	catalog *catalog.Catalog
	router  *mux.Router
	server  *http.Server
	log     *logrus.Logger
}

func New(cat *catalog.Catalog, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{
		catalog: cat,
		router:  mux.NewRouter(),
		log:     log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	s.log.WithField("addr", addr).Info("starting mirror server")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/", s.handleRoot).Methods("GET")
	s.router.HandleFunc("/extensions", s.handleList).Methods("GET")
	s.router.HandleFunc("/extensions/{publisher}/{name}", s.handleGet).Methods("GET")
	s.router.HandleFunc("/vsix/{publisher}/{name}", s.handleVsix).Methods("GET")

	s.router.Use(s.loggingMiddleware)
	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Info("request")
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	total, err := s.catalog.Count()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, map[string]any{
		"service":    "vsixfetch mirror",
		"extensions": total,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.catalog.List()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if entries == nil {
		entries = []catalog.Entry{}
	}

	s.writeJSON(w, map[string]any{
		"extensions": entries,
		"total":      len(entries),
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	entry, err := s.lookupEntry(r)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if entry == nil {
		s.writeErrorMessage(w, http.StatusNotFound, "extension not found")
		return
	}

	s.writeJSON(w, entry)
}

func (s *Server) handleVsix(w http.ResponseWriter, r *http.Request) {
	entry, err := s.lookupEntry(r)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if entry == nil {
		s.writeErrorMessage(w, http.StatusNotFound, "extension not found")
		return
	}

	if _, err := os.Stat(entry.FilePath); err != nil {
		s.log.WithField("path", entry.FilePath).Warn("cataloged file missing on disk")
		s.writeErrorMessage(w, http.StatusNotFound, "package file not found")
		return
	}

	fileName := fmt.Sprintf("%s-%s.vsix", entry.ID, entry.Version)
	w.Header().Set(contentTypeHeader, octetStreamContentType)
	w.Header().Set(contentDispositionHeader, fmt.Sprintf("attachment; filename=%q", fileName))
	http.ServeFile(w, r, entry.FilePath)
}

func (s *Server) lookupEntry(r *http.Request) (*catalog.Entry, error) {
	vars := mux.Vars(r)
	id := fmt.Sprintf("%s.%s", vars["publisher"], vars["name"])
	return s.catalog.Get(id)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Info("not found")
	s.writeErrorMessage(w, http.StatusNotFound, "not found")
}

func (s *Server) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set(contentTypeHeader, jsonContentType)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.WithError(err).Error("request failed")
	s.writeErrorMessage(w, status, err.Error())
}

func (s *Server) writeErrorMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set(contentTypeHeader, jsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
