package session

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/socfin/societyctl/internal/api"
	apperrors "github.com/socfin/societyctl/internal/errors"
	"github.com/socfin/societyctl/internal/log"
)

// Reason explains an authentication transition to observers
type Reason int

const (
	// ReasonLogin means credentials were just established
	ReasonLogin Reason = iota
	// ReasonLogout means the user logged out deliberately
	ReasonLogout
	// ReasonExpired means the backend rejected the token
	ReasonExpired
)

// Event is delivered synchronously to observers on every transition
type Event struct {
	Authenticated bool
	Reason        Reason
}

// Observer receives authentication transitions
type Observer func(Event)

// Result reports a login or registration outcome. Failures are values, not
// panics: the message is the backend's detail text or a generic fallback.
type Result struct {
	OK  bool
	Err string
}

// Service owns the session lifecycle: login, registration, logout, and
// teardown on token invalidation. It initializes before the society
// service, which subscribes to it.
type Service struct {
	store  *Store
	client *api.Client
	logger *log.Logger

	mu        sync.Mutex
	observers []Observer
}

// NewService creates the session service and wires the client's token
// source and 401 teardown hook to this session.
func NewService(store *Store, client *api.Client, logger *log.Logger) *Service {
	s := &Service{
		store:  store,
		client: client,
		logger: logger,
	}
	client.Tokens = store
	client.OnUnauthorized = s.Expire
	return s
}

// Subscribe registers an observer for authentication transitions.
// Notification is synchronous.
func (s *Service) Subscribe(obs Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

func (s *Service) notify(event Event) {
	s.mu.Lock()
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, obs := range observers {
		obs(event)
	}
}

// Authenticated reports whether a token is present
func (s *Service) Authenticated() bool {
	return s.store.Token() != ""
}

// CurrentUser returns the persisted user identity, or nil without a session
func (s *Service) CurrentUser() *api.User {
	creds, err := s.store.Load()
	if err != nil || creds == nil {
		return nil
	}
	user := creds.User
	return &user
}

// Login authenticates and persists the session. Failures are reported via
// the result and never propagate as errors.
func (s *Service) Login(ctx context.Context, email, password string) Result {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return failure(err, "Login failed")
	}

	if err := s.store.Save(&Credentials{AccessToken: resp.AccessToken, User: resp.User}); err != nil {
		s.logger.WithError(err).Error("failed to persist session")
		return Result{Err: "Login succeeded but saving the session failed"}
	}

	s.logger.Debug("session established", "user", resp.User.Email)
	s.notify(Event{Authenticated: true, Reason: ReasonLogin})
	return Result{OK: true}
}

// Register creates an account and establishes a session, same contract
// as Login.
func (s *Service) Register(ctx context.Context, name, email, phone, password string) Result {
	resp, err := s.client.Register(ctx, name, email, phone, password)
	if err != nil {
		return failure(err, "Registration failed")
	}

	if err := s.store.Save(&Credentials{AccessToken: resp.AccessToken, User: resp.User}); err != nil {
		s.logger.WithError(err).Error("failed to persist session")
		return Result{Err: "Registration succeeded but saving the session failed"}
	}

	s.logger.Debug("account registered", "user", resp.User.Email)
	s.notify(Event{Authenticated: true, Reason: ReasonLogin})
	return Result{OK: true}
}

// Logout clears the persisted session synchronously. The society service
// observes the transition and drops its selection, so logging out never
// leaves a stale society behind for the next session on this machine.
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.notify(Event{Authenticated: false, Reason: ReasonLogout})
	return nil
}

// Expire tears down the session after the backend rejected the token.
// Unlike Logout it leaves the society selection in place; the next login
// reconciles it against fresh memberships.
func (s *Service) Expire() {
	if err := s.store.Clear(); err != nil {
		s.logger.WithError(err).Warn("failed to clear rejected credentials")
	}
	s.notify(Event{Authenticated: false, Reason: ReasonExpired})
}

// failure extracts the human-readable message from a backend error,
// falling back to the generic message
func failure(err error, fallback string) Result {
	var socErr *apperrors.SocietyError
	if stderrors.As(err, &socErr) && socErr.Message != "" {
		return Result{Err: socErr.Message}
	}
	return Result{Err: fallback}
}
