// Package sorter serves a single-page drag and drop UI for putting
// the songbook into its final order. Rows show the page count so
// facing pages can be balanced by hand; dragging changes only the
// order, saving writes it back to the catalog.
package sorter

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/jvesely/go-songtex/internal/catalog"
)

// ErrBadOrder marks a save request the server cannot apply.
var ErrBadOrder = errors.New("invalid order payload")

//go:embed sorter.html.tmpl
var templateFS embed.FS

var page = template.Must(template.ParseFS(templateFS, "sorter.html.tmpl"))

// placement is one row of the order posted back by the UI.
type placement struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// Server hosts the sorting UI over a catalog.
type Server struct {
	store *catalog.Store
	http  *http.Server
}

// New creates a Server listening on addr.
func New(store *catalog.Store, addr string) *Server {
	s := &Server{store: store}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /save", s.handleSave)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Serve blocks serving the UI until the listener fails or Shutdown is
// called.
func (s *Server) Serve(ln net.Listener) error {
	err := s.http.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ListenAndServe listens on the configured address and serves until
// Shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.All(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, entries); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var placements []placement
	if err := json.NewDecoder(r.Body).Decode(&placements); err != nil {
		http.Error(w, fmt.Sprintf("%v: %v", ErrBadOrder, err), http.StatusBadRequest)
		return
	}

	ids := make([]string, len(placements))
	seen := make(map[string]bool, len(placements))
	for _, p := range placements {
		if p.ID == "" || seen[p.ID] {
			http.Error(w, fmt.Sprintf("%v: ids must be unique and non-empty", ErrBadOrder), http.StatusBadRequest)
			return
		}
		if p.Order < 0 || p.Order >= len(placements) || ids[p.Order] != "" {
			http.Error(w, fmt.Sprintf("%v: order values must be a permutation", ErrBadOrder), http.StatusBadRequest)
			return
		}
		seen[p.ID] = true
		ids[p.Order] = p.ID
	}

	if err := s.store.SetOrder(r.Context(), ids); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
