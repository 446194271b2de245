package contact

import (
	"context"
	"testing"

	"animal-rescue-portal/internal/platform/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items []Message
}

func (r *testRepo) Create(ctx context.Context, m Message) error {
	r.items = append(r.items, m)
	return nil
}

func TestService_Send(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Send(context.Background(), SendInput{Name: " ", Email: "ana-at-example", Message: "\n"})
	msgs, ok := validate.Messages(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"Name is required.",
		"Please enter a valid email address.",
		"Subject is required.",
		"Message cannot be empty.",
	}, msgs)
	assert.Empty(t, repo.items)

	m, err := svc.Send(context.Background(), SendInput{Name: " Ana ", Email: "ana@example.org", Subject: "Hi", Message: " Hello there "})
	require.NoError(t, err)
	assert.Equal(t, "Ana", m.Name)
	assert.Equal(t, "Hello there", m.Body)
	assert.Len(t, repo.items, 1)
}
