package auth

import "time"

// Claims representa al usuario autenticado de un request.
type Claims struct {
	UserID    string
	Username  string
	SessionID string
	ExpiresAt time.Time
}
