package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	lexicon "github.com/doctoryoo/Lexicon"
)

// Server exposes a dictionary over HTTP.
type Server struct {
	dict        lexicon.Dictionary
	server      *http.Server
	maxDistance int
}

// NewServer wires the query and mutation routes for dict on addr.
// maxDistance is the suggest endpoint's default substitution distance.
func NewServer(addr string, dict lexicon.Dictionary, maxDistance int) *Server {
	s := &Server{dict: dict, maxDistance: maxDistance}

	r := mux.NewRouter()

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			log.Debug().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		})
	})

	r.HandleFunc("/words", s.listWords).Methods(http.MethodGet)
	r.HandleFunc("/words/{word}", s.containsWord).Methods(http.MethodGet)
	r.HandleFunc("/words/{word}", s.addWord).Methods(http.MethodPut)
	r.HandleFunc("/words/{word}", s.removeWord).Methods(http.MethodDelete)
	r.HandleFunc("/prefix/{prefix}", s.containsPrefix).Methods(http.MethodGet)
	r.HandleFunc("/suggest/{word}", s.suggest).Methods(http.MethodGet)
	r.HandleFunc("/match", s.match).Methods(http.MethodGet)
	r.HandleFunc("/stats", s.stats).Methods(http.MethodGet)

	s.server = &http.Server{Addr: addr, Handler: r}
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves requests until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("lexd listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type wordsResponse struct {
	Words []string `json:"words"`
	Count int      `json:"count"`
}

type presenceResponse struct {
	Present bool `json:"present"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	words := s.dict.Words()
	writeJSON(w, http.StatusOK, wordsResponse{Words: words, Count: len(words)})
}

func (s *Server) containsWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if !s.dict.Contains(word) {
		writeJSON(w, http.StatusNotFound, presenceResponse{Present: false})
		return
	}
	writeJSON(w, http.StatusOK, presenceResponse{Present: true})
}

func (s *Server) addWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if s.dict.Add(word) {
		log.Info().Str("word", word).Msg("word added")
		writeJSON(w, http.StatusCreated, map[string]bool{"added": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"added": false})
}

func (s *Server) removeWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if !s.dict.Remove(word) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "word not found"})
		return
	}
	log.Info().Str("word", word).Msg("word removed")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) containsPrefix(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]
	writeJSON(w, http.StatusOK, presenceResponse{Present: s.dict.ContainsPrefix(prefix)})
}

func (s *Server) suggest(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	distance := s.maxDistance
	if q := r.URL.Query().Get("d"); q != "" {
		d, err := strconv.Atoi(q)
		if err != nil || d < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid distance"})
			return
		}
		distance = d
	}
	words := s.dict.Suggest(word, distance)
	writeJSON(w, http.StatusOK, wordsResponse{Words: words, Count: len(words)})
}

func (s *Server) match(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "pattern is required"})
		return
	}
	words := s.dict.Match(pattern)
	writeJSON(w, http.StatusOK, wordsResponse{Words: words, Count: len(words)})
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"words": s.dict.Len()})
}
