// Package server exposes one trie over HTTP. The engine has no
// internal locking, so a single mutex serializes every operation.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/rskv-p/trie/pkg/x_log"
	"github.com/rskv-p/trie/pkg/x_trie"
)

type Server struct {
	mu   sync.Mutex
	trie x_trie.Trie
	log  zerolog.Logger
}

func New(t x_trie.Trie) *Server {
	return &Server{
		trie: t,
		log:  x_log.New("server"),
	}
}

// Router builds the HTTP surface.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/api/healthz", s.handleHealth)
	r.Get("/api/contains", s.handleContains)
	r.Get("/api/dump", s.handleDump)
	r.Post("/api/insert", s.handleInsert)
	r.Post("/api/delete", s.handleDelete)
	return r
}

// ListenAndServe starts the HTTP facade on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info().Str("addr", addr).Str("variant", s.trie.Kind().String()).Msg("listening")
	return http.ListenAndServe(addr, s.Router())
}

//---------------------
// Handlers
//---------------------

type wordRequest struct {
	Word string `json:"word"`
}

type opResponse struct {
	Result bool `json:"result"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"variant": s.trie.Kind().String(),
	})
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, s.trie.Insert)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, s.trie.Delete)
}

// mutate runs a body-supplied word through op under the engine lock.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, op func([]byte) (bool, error)) {
	var req wordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.mu.Lock()
	ok, err := op(x_trie.Terminated(req.Word))
	s.mu.Unlock()

	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, opResponse{Result: ok})
}

func (s *Server) handleContains(w http.ResponseWriter, r *http.Request) {
	word, present := wordParam(r)
	if !present {
		writeError(w, http.StatusBadRequest, "missing word parameter")
		return
	}

	s.mu.Lock()
	ok, err := s.trie.Contains(x_trie.Terminated(word))
	s.mu.Unlock()

	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, opResponse{Result: ok})
}

func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	s.mu.Lock()
	s.trie.Dump(&buf)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

//---------------------
// Helpers
//---------------------

// wordParam distinguishes an absent parameter from the empty word,
// which is a legal (terminator-only) lookup.
func wordParam(r *http.Request) (string, bool) {
	values := r.URL.Query()
	if _, ok := values["word"]; !ok {
		return "", false
	}
	return values.Get("word"), true
}

func statusFor(err error) int {
	if errors.Is(err, x_trie.ErrNotInAlphabet) || errors.Is(err, x_trie.ErrEmptyWord) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
