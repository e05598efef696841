package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	models "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

// ProfileSource is the slice of the profile repository the session manager
// needs: resolve the signed-in user's profile and create one on sign-up.
type ProfileSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Create(ctx context.Context, p *models.Profile) error
}

// Manager holds the session context that the rest of the module receives by
// injection. It is explicitly constructed and torn down; there is no
// package-level session state.
type Manager struct {
	provider Provider
	profiles ProfileSource
	logger   logger.Logger

	mu      sync.RWMutex
	session *Session
	profile *models.Profile

	stop     chan struct{}
	stopOnce sync.Once
}

func NewManager(provider Provider, profiles ProfileSource, log logger.Logger) *Manager {
	return &Manager{
		provider: provider,
		profiles: profiles,
		logger:   log,
		stop:     make(chan struct{}),
	}
}

// Init resolves any existing session, loads its profile, and starts
// following the provider's change stream.
func (m *Manager) Init(ctx context.Context) error {
	session, err := m.provider.CurrentSession(ctx)
	if err != nil {
		m.logger.Error("failed to resolve session", "err", err)
		return errors.Wrap(errors.CodeUnauthenticated, "session lookup failed", err)
	}
	if session != nil {
		m.setSession(ctx, session)
	}

	go m.follow()
	return nil
}

func (m *Manager) follow() {
	changes := m.provider.Changes()
	for {
		select {
		case <-m.stop:
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			switch change.Kind {
			case SignedIn:
				m.setSession(context.Background(), change.Session)
			case SignedOut:
				m.clearSession()
			case TokenRefreshed:
				m.mu.Lock()
				m.session = change.Session
				m.mu.Unlock()
			}
		}
	}
}

func (m *Manager) setSession(ctx context.Context, s *Session) {
	profile, err := m.profiles.GetByID(ctx, s.UserID)
	if err != nil {
		m.logger.Error("failed to load profile for session", "user_id", s.UserID, "err", err)
		profile = nil
	}
	m.mu.Lock()
	m.session = s
	m.profile = profile
	m.mu.Unlock()
}

func (m *Manager) clearSession() {
	m.mu.Lock()
	m.session = nil
	m.profile = nil
	m.mu.Unlock()
}

// Close stops the change listener. Idempotent.
func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Session returns the current session, or nil when signed out.
func (m *Manager) Session() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Profile returns the cached profile for the current session. It is the
// authority consulted for role/ban/mute checks.
func (m *Manager) Profile() *models.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

// RefreshProfile re-reads the profile row, e.g. after a moderation action
// against the current user.
func (m *Manager) RefreshProfile(ctx context.Context) error {
	m.mu.RLock()
	session := m.session
	m.mu.RUnlock()
	if session == nil {
		return errors.ErrSessionMissing
	}

	profile, err := m.profiles.GetByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.profile = profile
	m.mu.Unlock()
	return nil
}

// SignUp registers with the provider and creates the profile row. The
// profile insert may race a backend trigger doing the same; a duplicate is
// not an error.
func (m *Manager) SignUp(ctx context.Context, email, password, username string) (*Session, error) {
	session, err := m.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, errors.Wrap(errors.CodeUnauthenticated, "sign up failed", err)
	}

	p := &models.Profile{
		ID:          session.UserID,
		Username:    username,
		DisplayName: username,
		Role:        models.RoleUser,
	}
	if err := m.profiles.Create(ctx, p); err != nil {
		if !errors.IsCode(err, errors.CodeAlreadyExists) {
			m.logger.Warn("profile creation on sign-up failed", "user_id", session.UserID, "err", err)
		}
	}

	m.setSession(ctx, session)
	return session, nil
}

func (m *Manager) SignIn(ctx context.Context, email, password string) (*Session, error) {
	session, err := m.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, errors.Wrap(errors.CodeUnauthenticated, "sign in failed", err)
	}
	m.setSession(ctx, session)
	return session, nil
}

func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.provider.SignOut(ctx); err != nil {
		return errors.Wrap(errors.CodeInternal, "sign out failed", err)
	}
	m.clearSession()
	return nil
}
