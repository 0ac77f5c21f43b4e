// internal/httpserver/server.go
//
// Optional HTTP surface for the game engine.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess.
//
// Sessions live in the store.Store passed at construction; there are no
// accounts and nothing is persisted beyond the process.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"wordlecli/internal/game"
	"wordlecli/internal/store"
	"wordlecli/internal/words"
)

// Server bundles the router, session store, and word source.
type Server struct {
	r        *chi.Mux
	store    store.Store
	src      words.Source
	attempts int
	strict   bool
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, src words.Source, attempts int, strict bool) *Server {
	s := &Server{r: chi.NewRouter(), store: st, src: src, attempts: attempts, strict: strict}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordlecli","endpoints":["/health","POST /game/new","POST /game/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID   string `json:"gameId"`
	Attempts int    `json:"attempts"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	word := req.Answer
	if word == "" {
		var err error
		word, err = s.src.Word()
		if err != nil {
			log.Error().Err(err).Msg("pick answer")
			http.Error(w, `{"error":"no_word_source"}`, http.StatusInternalServerError)
			return
		}
	}
	secret, err := game.NewSecret(word)
	if err != nil {
		http.Error(w, `{"error":"invalid_word_length"}`, http.StatusBadRequest)
		return
	}

	var allowed func(string) bool
	if s.strict {
		allowed = words.IsAllowed
	}
	sess := game.NewSession(secret, s.attempts, allowed)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID, Attempts: sess.Attempts})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks  game.Feedback `json:"marks"`
	State  string        `json:"state"`            // "playing" | "won" | "lost"
	Answer string        `json:"answer,omitempty"` // disclosed once lost
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	marks, state, err := sess.ApplyGuess(req.Guess)
	if err != nil {
		http.Error(w, `{"error":`+jsonString(rejectionCode(err))+`}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	res := guessRes{Marks: marks, State: state}
	if state == "lost" {
		res.Answer = sess.Secret().Reveal()
	}
	_ = json.NewEncoder(w).Encode(res)
}

// rejectionCode maps engine errors to stable API error codes.
func rejectionCode(err error) string {
	var lenErr *game.InvalidWordLengthError
	switch {
	case errors.As(err, &lenErr):
		return "invalid_length"
	case errors.Is(err, game.ErrNotAlphabetic):
		return "not_alphabetic"
	case errors.Is(err, game.ErrNotAllowed):
		return "not_in_word_list"
	case errors.Is(err, game.ErrGameFinished):
		return "game_finished"
	default:
		return "invalid_guess"
	}
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
