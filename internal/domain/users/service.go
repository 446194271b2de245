package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-rescue-portal/internal/platform/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserExists         = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
)

const (
	MinPasswordLength = 6
	DefaultSessionTTL = 7 * 24 * time.Hour
)

type Service struct {
	repo     Repository
	sessions SessionRepository
	now      func() time.Time
	ttl      time.Duration
	hashCost int
}

func NewService(repo Repository, sessions SessionRepository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		repo:     repo,
		sessions: sessions,
		now:      time.Now,
		ttl:      ttl,
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *Service) SessionTTL() time.Duration { return s.ttl }

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register valida en orden y corta en la primera regla que falla.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	var msg string
	switch {
	case username == "":
		msg = "Username is required."
	case email == "":
		msg = "Email is required."
	case in.Password == "":
		msg = "Password is required."
	case len(in.Password) < MinPasswordLength:
		msg = "Password must be at least 6 characters."
	case in.Password != in.ConfirmPassword:
		msg = "Passwords do not match."
	}
	if msg != "" {
		return User{}, validate.Errors{msg}
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return User{}, err
	}
	if exists {
		return User{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login verifica credenciales y abre una sesión nueva.
func (s *Service) Login(ctx context.Context, username, password string) (User, Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, Session{}, validate.Errors{"Username/Password required."}
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, Session{}, ErrInvalidCredentials
		}
		return User{}, Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, Session{}, ErrInvalidCredentials
	}

	now := s.now()
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.CreateSession(ctx, sess); err != nil {
		return User{}, Session{}, err
	}
	return u, sess, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// PurgeExpiredSessions borra sesiones vencidas; lo llama el serve loop.
func (s *Service) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpiredSessions(ctx, s.now())
}
