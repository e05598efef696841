package auth

import (
	"context"

	"github.com/google/uuid"
)

// Session is the identity handed over by the external auth collaborator.
type Session struct {
	UserID uuid.UUID
	Email  string
}

type ChangeKind string

const (
	SignedIn       ChangeKind = "signed_in"
	SignedOut      ChangeKind = "signed_out"
	TokenRefreshed ChangeKind = "token_refreshed"
)

// Change is one entry of the provider's session-changed stream.
type Change struct {
	Kind    ChangeKind
	Session *Session
}

// Provider abstracts the hosted authentication service. The core never
// talks to it directly beyond this surface; the Profile row remains the
// authority for role/ban/mute state.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error

	// CurrentSession returns nil without error when nobody is signed in.
	CurrentSession(ctx context.Context) (*Session, error)

	// Changes delivers session transitions until the provider shuts down.
	Changes() <-chan Change
}
