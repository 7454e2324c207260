package session

import (
	"errors"

	"recipely/internal/common"
)

// Session is the explicit per-sign-in context object. It is created on
// sign-in, passed to constructors that need the current user identity,
// and destroyed on sign-out; nothing reads ambient global state.
type Session struct {
	UserID      string
	Username    string
	DisplayName string
}

// New builds a session from an already-verified user snapshot.
func New(snapshot common.UserSnapshot) (*Session, error) {
	if err := common.ValidateUserID(snapshot.UserID); err != nil {
		return nil, err
	}
	return &Session{
		UserID:      snapshot.UserID,
		Username:    snapshot.Username,
		DisplayName: snapshot.DisplayName,
	}, nil
}

// FromToken builds a session from a signed session token.
func FromToken(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, errors.New("session token required")
	}
	claims, err := common.ValidToken(tokenString)
	if err != nil {
		return nil, err
	}
	return New(common.UserSnapshot{
		UserID:      claims.UserID,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
	})
}

// Snapshot returns the session identity as a user snapshot for
// denormalizing onto outgoing requests.
func (s *Session) Snapshot() common.UserSnapshot {
	return common.UserSnapshot{
		UserID:      s.UserID,
		Username:    s.Username,
		DisplayName: s.DisplayName,
	}
}
