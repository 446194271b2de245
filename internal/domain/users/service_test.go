package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"animal-rescue-portal/internal/platform/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID     map[string]User
	sessions map[string]Session
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}, sessions: map[string]Session{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, u := range r.byID {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *testRepo) CreateSession(ctx context.Context, s Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *testRepo) GetSession(ctx context.Context, id string) (Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) DeleteSession(ctx context.Context, id string) error {
	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *testRepo) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	for id, s := range r.sessions {
		if !before.Before(s.ExpiresAt) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func newTestService(t *testing.T) (*Service, *testRepo) {
	t.Helper()
	repo := newTestRepo()
	svc := NewService(repo, repo, time.Hour)
	svc.hashCost = bcrypt.MinCost
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_FirstFailingRuleWins(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name string
		in   RegisterInput
		want string
	}{
		{"username", RegisterInput{Email: "a@b.c", Password: "secret1", ConfirmPassword: "secret1"}, "Username is required."},
		{"email", RegisterInput{Username: "ana", Password: "x"}, "Email is required."},
		{"password", RegisterInput{Username: "ana", Email: "a@b.c"}, "Password is required."},
		{"short", RegisterInput{Username: "ana", Email: "a@b.c", Password: "12345", ConfirmPassword: "12345"}, "Password must be at least 6 characters."},
		{"mismatch", RegisterInput{Username: "ana", Email: "a@b.c", Password: "123456", ConfirmPassword: "654321"}, "Passwords do not match."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.in)
			msgs, ok := validate.Messages(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, []string{tc.want}, msgs)
		})
	}
}

func TestService_Register_HashesPassword_AndRejectsDuplicates(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Username: " ana ", Email: "ana@example.org", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)
	assert.NotEqual(t, "secret1", repo.byID[u.ID].PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.byID[u.ID].PasswordHash), []byte("secret1")))

	_, err = svc.Register(ctx, RegisterInput{Username: "other", Email: "ana@example.org", Password: "secret1", ConfirmPassword: "secret1"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestService_Login_CreatesSession_AndVerifierResolvesIt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "ana@example.org", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ana", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "", "")
	_, isValidation := validate.Messages(err)
	assert.True(t, isValidation)

	u, sess, err := svc.Login(ctx, "ana", "secret1")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), sess.ExpiresAt)

	v := NewSessionVerifier(svc)
	claims, err := v.Verify(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, sess.ID, claims.SessionID)

	// Vencida
	svc.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = v.Verify(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionExpired)

	n, err := svc.PurgeExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestService_Logout_IsIdempotent(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "ana@example.org", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	_, sess, err := svc.Login(ctx, "ana", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.ID))
	assert.Empty(t, repo.sessions)
	require.NoError(t, svc.Logout(ctx, sess.ID))
	require.NoError(t, svc.Logout(ctx, ""))

	_, err = NewSessionVerifier(svc).Verify(ctx, sess.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
