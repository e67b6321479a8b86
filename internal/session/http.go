package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"DesignerMe/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20

	loginLimitPerMin    = 5
	registerLimitPerMin = 3
	limitWindow         = time.Minute

	defaultTokenTTL = 15 * time.Minute
)

type Server struct {
	Log      *zap.Logger
	Store    *Store
	JWT      *TokenMaker
	TokenTTL time.Duration
}

func (s *Server) Register(r chi.Router) {
	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, limitWindow)
	registerLimiter := kit.NewIPRateLimiter(registerLimitPerMin, limitWindow)

	r.Route("/auth", func(rr chi.Router) {
		rr.With(loginLimiter.Middleware).Post("/login", s.handleLogin)
		rr.With(registerLimiter.Middleware).Post("/vendors", s.handleRegisterVendor)
		rr.Post("/logout", s.handleLogout)
		rr.Get("/session", s.handleSession)
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string    `json:"access_token"`
	Principal   Principal `json:"principal"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	// The mock credential check is an exact, case-sensitive match, so
	// no normalization happens here.
	if req.Email == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/password required", nil)
		return
	}

	p, err := s.Store.Login(req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	if err != nil {
		s.Log.Error("login failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	tok, err := s.JWT.New(p, ttl)
	if err != nil {
		s.Log.Error("token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{AccessToken: tok, Principal: p})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.Store.Logout()
	kit.WriteNoContent(w)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Store.Current()
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

type registerVendorResp struct {
	VendorID string `json:"vendor_id"`
}

func (s *Server) handleRegisterVendor(w http.ResponseWriter, r *http.Request) {
	var reg VendorRegistration
	if err := decodeBody(w, r, &reg); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)
	if reg.Username == "" || reg.Email == "" || reg.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "username/email/password required", nil)
		return
	}

	id, err := s.Store.RegisterVendor(reg)
	if err != nil {
		s.Log.Error("vendor registration failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, registerVendorResp{VendorID: id})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
