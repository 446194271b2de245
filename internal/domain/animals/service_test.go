package animals

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"animal-rescue-portal/internal/platform/uploads"
	"animal-rescue-portal/internal/platform/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID      map[string]Animal
	createErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListByStatus(ctx context.Context, status Status) ([]Animal, error) {
	return r.filter(func(a Animal) bool { return a.Status == status }), nil
}

func (r *testRepo) ListByOwner(ctx context.Context, userID string) ([]Animal, error) {
	return r.filter(func(a Animal) bool { return a.UserID == userID }), nil
}

func (r *testRepo) filter(keep func(Animal) bool) []Animal {
	out := make([]Animal, 0)
	for _, a := range r.byID {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DatePosted.After(out[j].DatePosted) })
	return out
}

func newTestService(t *testing.T) (*Service, *testRepo, string) {
	t.Helper()
	dir := t.TempDir()
	repo := newTestRepo()
	return NewService(repo, uploads.NewStore(dir), "/static/uploads"), repo, dir
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func TestService_Post_CollectsAllValidationErrors(t *testing.T) {
	svc, repo, dir := newTestService(t)

	_, err := svc.Post(context.Background(), "u1", PostInput{
		Age:   "abc",
		Image: uploads.FromBytes("notes.txt", []byte("x")),
	})
	msgs, ok := validate.Messages(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Equal(t, []string{
		"Name is required.",
		"Type is required.",
		"Invalid age format. Must be a number (e.g., 2, 1.5).",
		"Description is required.",
		"Invalid image file type (PNG, JPG, GIF allowed).",
	}, msgs)
	assert.Empty(t, repo.byID)
	assert.Empty(t, listFiles(t, filepath.Join(dir, "animals")))
}

func TestService_Post_AgeRules(t *testing.T) {
	svc, _, _ := newTestService(t)

	cases := map[string]string{
		"":     "Age is required.",
		"-1":   "Age cannot be negative.",
		"NaN":  "Invalid age format. Must be a number (e.g., 2, 1.5).",
		"+Inf": "Invalid age format. Must be a number (e.g., 2, 1.5).",
	}
	for age, want := range cases {
		_, err := svc.Post(context.Background(), "u1", PostInput{Name: "Milo", Type: "Dog", Age: age, Description: "friendly"})
		msgs, ok := validate.Messages(err)
		require.True(t, ok, "age %q", age)
		assert.Equal(t, []string{want}, msgs, "age %q", age)
	}
}

func TestService_Post_SavesImage_AndBuildsURL(t *testing.T) {
	svc, repo, dir := newTestService(t)

	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a, err := svc.Post(context.Background(), "u1", PostInput{
		Name:        " Milo ",
		Type:        "Dog",
		Age:         "1.5",
		Description: "friendly",
		Image:       uploads.FromBytes("my dog.PNG", []byte("png-bytes")),
	})
	require.NoError(t, err)

	assert.Equal(t, "Milo", a.Name)
	assert.Equal(t, 1.5, a.Age)
	assert.Equal(t, StatusAvailable, a.Status)
	assert.Equal(t, now, a.DatePosted)
	require.NotNil(t, a.ImageFilename)
	assert.True(t, strings.HasPrefix(*a.ImageFilename, "uploads/animals/animal_u1_"))
	assert.True(t, strings.HasSuffix(*a.ImageFilename, "_my_dog.PNG"))

	files := listFiles(t, filepath.Join(dir, "animals"))
	require.Len(t, files, 1)
	assert.Equal(t, "/static/uploads/animals/"+files[0], svc.ImageURL(a))
	assert.Contains(t, repo.byID, a.ID)
}

func TestService_Post_RemovesImageWhenInsertFails(t *testing.T) {
	svc, repo, dir := newTestService(t)
	repo.createErr = errors.New("db down")

	_, err := svc.Post(context.Background(), "u1", PostInput{
		Name:        "Milo",
		Type:        "Dog",
		Age:         "2",
		Description: "friendly",
		Image:       uploads.FromBytes("milo.jpg", []byte("jpg")),
	})
	require.Error(t, err)
	_, isValidation := validate.Messages(err)
	assert.False(t, isValidation)
	assert.Empty(t, listFiles(t, filepath.Join(dir, "animals")))
}

func TestService_Post_WithoutImage(t *testing.T) {
	svc, _, _ := newTestService(t)

	a, err := svc.Post(context.Background(), "u1", PostInput{Name: "Tom", Type: "Cat", Age: "0", Description: "calm"})
	require.NoError(t, err)
	assert.Nil(t, a.ImageFilename)
	assert.Equal(t, "", svc.ImageURL(a))
}

func TestService_ListAvailable_NewestFirst(t *testing.T) {
	svc, repo, _ := newTestService(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.byID["a"] = Animal{ID: "a", Status: StatusAvailable, DatePosted: base}
	repo.byID["b"] = Animal{ID: "b", Status: StatusAvailable, DatePosted: base.Add(time.Hour)}
	repo.byID["c"] = Animal{ID: "c", Status: StatusAdopted, DatePosted: base.Add(2 * time.Hour)}

	items, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
}
