package users

import (
	"context"
	"strings"

	"animal-rescue-portal/internal/ports/auth"
)

// SessionVerifier implementa auth.AuthVerifier contra las sesiones guardadas.
type SessionVerifier struct {
	svc *Service
}

func NewSessionVerifier(svc *Service) *SessionVerifier {
	return &SessionVerifier{svc: svc}
}

func (v *SessionVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrNotFound
	}

	sess, err := v.svc.sessions.GetSession(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}
	if sess.Expired(v.svc.now()) {
		return auth.Claims{}, ErrSessionExpired
	}

	u, err := v.svc.repo.GetByID(ctx, sess.UserID)
	if err != nil {
		return auth.Claims{}, err
	}

	return auth.Claims{
		UserID:    u.ID,
		Username:  u.Username,
		SessionID: sess.ID,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}
