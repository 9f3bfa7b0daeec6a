package society

import (
	"context"
	"sync"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/errors"
	"github.com/socfin/societyctl/internal/log"
	"github.com/socfin/societyctl/internal/session"
)

// Observer is notified after the membership set or selection changed
type Observer func()

// Service owns the membership set and the current-society selection.
// It initializes after the session service and subscribes to it: becoming
// authenticated triggers a refresh, logout drops the selection, a rejected
// token keeps the persisted selection for the next login to reconcile.
//
// All writes to the selection go through Select or the reconciliation in
// Refresh; views only read.
type Service struct {
	store   *Store
	client  *api.Client
	session *session.Service
	logger  *log.Logger

	mu        sync.Mutex
	societies []api.Society
	current   *api.Society
	observers []Observer
}

// NewService creates the society service, restores the persisted selection,
// and subscribes to the session service
func NewService(store *Store, client *api.Client, sess *session.Service, logger *log.Logger) *Service {
	s := &Service{
		store:   store,
		client:  client,
		session: sess,
		logger:  logger,
	}

	if current, err := store.Load(); err != nil {
		logger.WithError(err).Warn("dropping unreadable society selection")
	} else {
		s.current = current
	}

	sess.Subscribe(s.onSessionEvent)
	return s
}

func (s *Service) onSessionEvent(event session.Event) {
	if event.Authenticated {
		if err := s.Refresh(context.Background()); err != nil {
			s.logger.WithError(err).Warn("failed to refresh societies after login")
		}
		return
	}

	s.mu.Lock()
	s.societies = nil
	if event.Reason == session.ReasonLogout {
		s.current = nil
		if err := s.store.Clear(); err != nil {
			s.logger.WithError(err).Warn("failed to clear society selection")
		}
	}
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers an observer; notification is synchronous
func (s *Service) Subscribe(obs Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

func (s *Service) notify() {
	s.mu.Lock()
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, obs := range observers {
		obs()
	}
}

// Refresh fetches the caller's memberships and reconciles the selection.
// It is a no-op when unauthenticated. On failure the previous set is kept,
// stale but consistent, so a flaky network does not strand the user
// without a society.
func (s *Service) Refresh(ctx context.Context) error {
	if !s.session.Authenticated() {
		return nil
	}

	societies, err := s.client.ListSocieties(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("failed to fetch societies, keeping previous set")
		return errors.Wrap(errors.ErrCodeSocietyRefresh, "failed to refresh societies", err)
	}

	s.mu.Lock()
	s.societies = societies
	s.reconcileLocked()
	s.mu.Unlock()

	s.notify()
	return nil
}

// reconcileLocked applies the selection invariant against the fresh set:
// a surviving id keeps its (updated) membership, a vanished id falls back
// to the first available membership or to none, and a singleton set with
// no prior selection is auto-selected.
func (s *Service) reconcileLocked() {
	if s.current != nil {
		for i := range s.societies {
			if s.societies[i].ID == s.current.ID {
				s.selectLocked(&s.societies[i])
				return
			}
		}
		if len(s.societies) > 0 {
			s.logger.Warn("selected society no longer available, switching",
				"previous", s.current.ID, "next", s.societies[0].ID)
			s.selectLocked(&s.societies[0])
			return
		}
		s.current = nil
		if err := s.store.Clear(); err != nil {
			s.logger.WithError(err).Warn("failed to clear society selection")
		}
		return
	}

	if len(s.societies) == 1 {
		s.selectLocked(&s.societies[0])
	}
}

func (s *Service) selectLocked(soc *api.Society) {
	copied := *soc
	s.current = &copied
	if err := s.store.Save(&copied); err != nil {
		s.logger.WithError(err).Warn("failed to persist society selection")
	}
}

// Select sets and persists the current society
func (s *Service) Select(soc api.Society) {
	s.mu.Lock()
	s.selectLocked(&soc)
	s.mu.Unlock()
	s.notify()
}

// Current returns a copy of the current selection, or nil
func (s *Service) Current() *api.Society {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Societies returns the last fetched membership set
func (s *Service) Societies() []api.Society {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]api.Society(nil), s.societies...)
}

// HasSelection reports whether a society is currently selected
func (s *Service) HasSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Role returns the current selection's role, defaulting to member
func (s *Service) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return api.RoleMember
	}
	return s.current.Role
}

// IsManager reports whether the current role is manager
func (s *Service) IsManager() bool { return s.Role() == api.RoleManager }

// IsCommittee reports whether the current role is committee
func (s *Service) IsCommittee() bool { return s.Role() == api.RoleCommittee }

// IsAuditor reports whether the current role is auditor
func (s *Service) IsAuditor() bool { return s.Role() == api.RoleAuditor }
