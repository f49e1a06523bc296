package auth

import (
	"context"
	"sync"

	"tiffin-finder/storefront/internal/model"

	"github.com/sirupsen/logrus"
)

// Namespace is the snapshot key the session is persisted under.
const Namespace = "auth-storage"

// Backend is the part of the backend client the auth store drives.
type Backend interface {
	SignIn(ctx context.Context, email, password string) (*model.AuthResult, error)
	SignUp(ctx context.Context, email, password string, profile model.UserMetadata) (*model.AuthResult, error)
	SignOut(ctx context.Context) error
	GetSession(ctx context.Context) (*model.AuthResult, error)
	RestoreSession(session *model.Session)
	SubscribeAuthEvents() (<-chan model.AuthEvent, func())
}

type Persister interface {
	Load(ctx context.Context, namespace string, v interface{}) (bool, error)
	Save(ctx context.Context, namespace string, v interface{}) error
}

type snapshot struct {
	User    *model.UserSession `json:"user"`
	Session *model.Session     `json:"session"`
}

// Store mirrors the backend session locally. Completions of its own calls
// and events pushed by the backend are applied under one lock in arrival
// order, so the latest one wins.
type Store struct {
	mu      sync.RWMutex
	user    *model.UserSession
	session *model.Session
	loading bool
	err     string

	backend   Backend
	persister Persister
	log       logrus.FieldLogger

	unsubscribe func()
	done        chan struct{}
	wg          sync.WaitGroup
	closeOnce   sync.Once
}

func NewStore(ctx context.Context, backend Backend, persister Persister, log logrus.FieldLogger) *Store {
	s := &Store{
		backend:   backend,
		persister: persister,
		log:       log,
		done:      make(chan struct{}),
	}

	if persister != nil {
		var snap snapshot
		found, err := persister.Load(ctx, Namespace, &snap)
		if err != nil {
			log.WithError(err).Warn("failed to restore session")
		} else if found {
			s.user = snap.User
			s.session = snap.Session
		}
	}
	if s.session != nil {
		backend.RestoreSession(s.session)
	}

	events, unsubscribe := backend.SubscribeAuthEvents()
	s.unsubscribe = unsubscribe
	s.wg.Add(1)
	go s.watch(events)

	return s
}

// Close stops listening for backend auth events.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.unsubscribe()
		s.wg.Wait()
	})
}

func (s *Store) watch(events <-chan model.AuthEvent) {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			s.apply(event)
		}
	}
}

func (s *Store) apply(event model.AuthEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Type {
	case model.EventSignedIn, model.EventUserUpdated:
		if event.User != nil {
			s.user = Normalize(event.User)
		}
		if event.Session != nil {
			s.session = event.Session
		}
	case model.EventSignedOut:
		s.user = nil
		s.session = nil
	case model.EventTokenRefreshed:
		if event.Session != nil {
			s.session = event.Session
		}
	default:
		return
	}
	s.log.WithField("event", event.Type).Debug("auth state changed")
	s.persistLocked()
}

func (s *Store) SignIn(ctx context.Context, email, password string) error {
	s.begin()
	result, err := s.backend.SignIn(ctx, email, password)
	return s.finish(result, err, "Failed to sign in")
}

func (s *Store) SignUp(ctx context.Context, email, password string, profile model.UserMetadata) error {
	s.begin()
	result, err := s.backend.SignUp(ctx, email, password, profile)
	return s.finish(result, err, "Failed to sign up")
}

func (s *Store) SignOut(ctx context.Context) error {
	s.begin()
	err := s.backend.SignOut(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = messageOr(err, "Failed to sign out")
		return err
	}
	s.user = nil
	s.session = nil
	s.persistLocked()
	return nil
}

// CheckAuth syncs the local record with the backend session. Any failure
// is treated as having no session.
func (s *Store) CheckAuth(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	result, err := s.backend.GetSession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil || result == nil || result.Session == nil || result.User == nil {
		if err != nil {
			s.log.WithError(err).Debug("no active session")
		}
		s.user = nil
		s.session = nil
	} else {
		s.user = Normalize(result.User)
		s.session = result.Session
	}
	s.persistLocked()
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func (s *Store) User() (model.UserSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.UserSession{}, false
	}
	return *s.user, true
}

func (s *Store) Session() (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return model.Session{}, false
	}
	return *s.session, true
}

// Err returns the message of the last failed call, or "" when cleared.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) finish(result *model.AuthResult, err error, fallback string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	if err != nil {
		s.err = messageOr(err, fallback)
		return err
	}
	if result != nil && result.User != nil {
		s.user = Normalize(result.User)
		s.session = result.Session
		s.persistLocked()
	}
	return nil
}

func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(context.Background(), Namespace, snapshot{User: s.user, Session: s.session}); err != nil {
		s.log.WithError(err).Warn("failed to persist session")
	}
}

// Normalize maps a backend principal to a session record, filling in the
// defaults for fields the backend may omit.
func Normalize(p *model.Principal) *model.UserSession {
	role := p.Metadata.Role
	if role == "" {
		role = model.RoleFoodSeeker
	}
	updatedAt := p.CreatedAt
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}
	return &model.UserSession{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Metadata.Name,
		Phone:     p.Metadata.Phone,
		Role:      role,
		Address:   p.Metadata.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func messageOr(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
