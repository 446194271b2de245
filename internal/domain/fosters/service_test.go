package fosters

import (
	"context"
	"testing"

	"animal-rescue-portal/internal/platform/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byEmail map[string]Foster
}

func (r *testRepo) Create(ctx context.Context, f Foster) error {
	if _, ok := r.byEmail[f.Email]; ok {
		return ErrDuplicateEmail
	}
	r.byEmail[f.Email] = f
	return nil
}

func validInput() ApplyInput {
	return ApplyInput{
		Name:         "Ana",
		Email:        "ana@example.org",
		Phone:        "555-0101",
		Address:      "1 Main St",
		HomeType:     "House",
		HasYard:      "Yes",
		YardFenced:   "Partial",
		CanTransport: "No",
		Why:          "Space and time",
	}
}

func TestService_Apply_Validation(t *testing.T) {
	svc := NewService(&testRepo{byEmail: map[string]Foster{}})

	_, err := svc.Apply(context.Background(), ApplyInput{Email: "x", HomeType: "Boat", HasYard: "Maybe"})
	msgs, ok := validate.Messages(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"Name is required.",
		"Please enter a valid email address.",
		"Phone number is required.",
		"Address is required.",
		"Valid home type is required.",
		"Please specify if you have a yard (Yes, No, or Partial).",
		"Please indicate if you can provide transport.",
		"Please tell us why you'd like to foster.",
	}, msgs)

	in := validInput()
	in.YardFenced = ""
	_, err = svc.Apply(context.Background(), in)
	msgs, _ = validate.Messages(err)
	assert.Equal(t, []string{"Please specify if your yard is fenced, not fenced, or partially fenced."}, msgs)
}

func TestService_Apply_YardFencedOnlyWithYard(t *testing.T) {
	repo := &testRepo{byEmail: map[string]Foster{}}
	svc := NewService(repo)

	f, err := svc.Apply(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, f.YardFenced)
	assert.Equal(t, "Partial", *f.YardFenced)

	in := validInput()
	in.Email = "other@example.org"
	in.HasYard = "No"
	in.YardFenced = "Yes"
	in.PreferredAnimal = []string{"Cats", " ", "Kittens"}
	f, err = svc.Apply(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, f.YardFenced)
	require.NotNil(t, f.PreferredAnimal)
	assert.Equal(t, "Cats, Kittens", *f.PreferredAnimal)
	assert.Equal(t, StatusPending, f.Status)

	_, err = svc.Apply(context.Background(), in)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
