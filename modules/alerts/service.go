package alerts

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thunderguard-ph/thunderguard/pkg/dispatch"
	"github.com/thunderguard-ph/thunderguard/pkg/logger"
	"github.com/thunderguard-ph/thunderguard/pkg/presence"
	"github.com/thunderguard-ph/thunderguard/pkg/userstore"
)

// Service exposes the registration, login, and alert-trigger API.
//
// It is the boundary between the web layer and the broadcast engine:
// login is the only place presence is mutated, and the trigger endpoint
// forwards to the dispatcher and relays its acknowledgment untouched.
type Service struct {
	store      *userstore.Store
	registry   *presence.Registry
	dispatcher *dispatch.Dispatcher
	log        *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService wires the API against its collaborators.
func NewService(store *userstore.Store, registry *presence.Registry, dispatcher *dispatch.Dispatcher, opts ...Option) *Service {
	s := &Service{
		store:      store,
		registry:   registry,
		dispatcher: dispatcher,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the module router, mountable under the API root.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/register", s.register)
	r.Post("/login", s.login)
	r.Post("/logout", s.logout)
	r.Post("/trigger-alert", s.triggerAlert)
	return r
}

func (s *Service) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.store.Register(r.Context(), userstore.RegisterParams{
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case errors.Is(err, userstore.ErrInvalidParams):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, userstore.ErrAlreadyRegistered):
		writeError(w, http.StatusConflict, "phone number already registered")
		return
	case err != nil:
		s.log.LogAttrs(r.Context(), slog.LevelError, "registration failed",
			logger.Component("alerts"), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	s.log.LogAttrs(r.Context(), slog.LevelInfo, "user registered",
		logger.Component("alerts"), logger.UserID(user.ID))
	writeJSON(w, http.StatusOK, registerResponse{
		Status:  "success",
		Message: "User registered successfully!",
	})
}

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.store.Authenticate(r.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, userstore.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.log.LogAttrs(r.Context(), slog.LevelError, "login failed",
			logger.Component("alerts"), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	// Successful authentication is what makes a user reachable for
	// broadcasts until logout or process restart.
	s.registry.MarkReachable(user.ID)

	s.log.LogAttrs(r.Context(), slog.LevelInfo, "user logged in",
		logger.Component("alerts"), logger.UserID(user.ID))
	writeJSON(w, http.StatusOK, loginResponse{
		Status: "success",
		User:   user.Name,
		Role:   user.Role,
	})
}

func (s *Service) logout(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// There is no session layer, so logout proves identity the same way
	// login does before revoking reachability.
	user, err := s.store.Authenticate(r.Context(), req.Phone, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	s.registry.MarkUnreachable(user.ID)
	writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

func (s *Service) triggerAlert(w http.ResponseWriter, r *http.Request) {
	var trig dispatch.Trigger
	if err := decodeJSON(r, &trig); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.dispatcher.Broadcast(r.Context(), trig)
	if err != nil {
		s.log.LogAttrs(r.Context(), slog.LevelError, "broadcast failed",
			logger.Component("alerts"), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "broadcast failed")
		return
	}

	// The wire contract: count is present on success (including zero)
	// and absent on ignored.
	if result.Status == dispatch.StatusIgnored {
		writeJSON(w, http.StatusOK, statusResponse{Status: string(dispatch.StatusIgnored)})
		return
	}
	writeJSON(w, http.StatusOK, triggerResponse{
		Status: string(dispatch.StatusSuccess),
		Count:  result.Count,
	})
}

// Shutdown drains the dispatcher; called by main during process exit.
func (s *Service) Shutdown(ctx context.Context) error {
	return s.dispatcher.Shutdown(ctx)
}
