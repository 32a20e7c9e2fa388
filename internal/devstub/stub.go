// Package devstub is an in-process stand-in for the CarbonTrail backend,
// used by integration tests and for local development of the client. It
// implements just enough of the contract the client depends on: a login
// endpoint issuing short-lived JWTs, bearer verification answering 401,
// and canned marketplace data. Real business rules live in the actual
// backend and are not reproduced here.
package devstub

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/carbontrail/carbontrail/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Server is the stub backend. Zero-value is not usable; construct with New.
type Server struct {
	secret   []byte
	tokenTTL time.Duration
	users    map[string]stubUser
	mux      *http.ServeMux

	now func() time.Time
}

// New builds a stub signing tokens with secret, valid for ttl.
func New(secret []byte, ttl time.Duration) *Server {
	s := &Server{
		secret:   secret,
		tokenTTL: ttl,
		users:    seedUsers(),
		now:      time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	mux.Handle("GET /api/v1/projects", s.authenticated(listOf(stubProjects)))
	mux.Handle("GET /api/v1/species", s.authenticated(listOf(stubSpecies)))
	mux.Handle("GET /api/v1/farms", s.authenticated(listOf(stubFarms)))
	mux.Handle("GET /api/v1/contracts", s.authenticated(listOf(stubContracts)))
	mux.Handle("GET /api/v1/credits", s.authenticated(listOf(stubCredits)))
	mux.Handle("GET /api/v1/payments", s.authenticated(listOf(stubPayments)))
	mux.Handle("GET /api/v1/partners", s.authenticated(listOf(stubPartners)))
	mux.Handle("POST /api/v1/credits/purchase", s.authenticated(http.HandlerFunc(s.handlePurchase)))
	mux.Handle("POST /api/v1/credits/allocate", s.authenticated(http.HandlerFunc(s.handleAllocate)))
	mux.Handle("POST /api/v1/chat", s.authenticated(http.HandlerFunc(s.handleChat)))
	s.mux = mux
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// SetClock overrides the time source, letting tests expire tokens.
func (s *Server) SetClock(now func() time.Time) {
	s.now = now
}

type claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, ok := s.users[strings.ToLower(req.Email)]
	if !ok || !u.checkPassword(req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name: u.Name,
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": signed,
		"user": map[string]string{
			"id":   u.ID,
			"name": u.Name,
			"role": u.Role,
		},
	})
}

// authenticated rejects requests without a valid, unexpired bearer token.
func (s *Server) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			writeError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		var c claims
		_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(s.now))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	var req models.TreePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "invalid purchase request")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleAllocate(w http.ResponseWriter, r *http.Request) {
	var req models.CreditAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Tonnes <= 0 {
		writeError(w, http.StatusBadRequest, "invalid allocation request")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid chat request")
		return
	}
	writeJSON(w, http.StatusOK, models.ChatMessage{
		Role:    "assistant",
		Content: "stub assistant: " + req.Message,
	})
}

func listOf[T any](items []T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, items)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
