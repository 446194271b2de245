package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"animal-rescue-portal/internal/domain/users"
)

// UserRepo guarda usuarios y sesiones; implementa users.Repository y
// users.SessionRepository.
type UserRepo struct {
	mu       sync.RWMutex
	byID     map[string]users.User
	sessions map[string]users.Session
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:     make(map[string]users.User),
		sessions: make(map[string]users.Session),
	}
}

func (r *UserRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	for _, existing := range r.byID {
		if existing.Username == u.Username || existing.Email == u.Email {
			return users.ErrUserExists
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *UserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepo) CreateSession(ctx context.Context, s users.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	if _, ok := r.byID[s.UserID]; !ok {
		return users.ErrNotFound
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *UserRepo) GetSession(ctx context.Context, id string) (users.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return users.Session{}, users.ErrNotFound
	}
	return s, nil
}

func (r *UserRepo) DeleteSession(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return users.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *UserRepo) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, s := range r.sessions {
		if s.Expired(before) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
