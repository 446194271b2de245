package volunteers

import (
	"context"
	"testing"
	"time"

	"animal-rescue-portal/internal/platform/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byEmail map[string]Volunteer
}

func (r *testRepo) Create(ctx context.Context, v Volunteer) error {
	if _, ok := r.byEmail[v.Email]; ok {
		return ErrDuplicateEmail
	}
	r.byEmail[v.Email] = v
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{byEmail: map[string]Volunteer{}}
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC) }
	return svc, repo
}

func validInput() ApplyInput {
	return ApplyInput{
		Name:         "Ana",
		Email:        "ana@example.org",
		Availability: "Weekends",
		Interests:    []string{"Dog walking", "Events"},
		Why:          "I love animals",
	}
}

func TestService_Apply_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Apply(context.Background(), ApplyInput{Email: "not-an-email", Interests: []string{" "}})
	msgs, ok := validate.Messages(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"Name is required.",
		"Please enter a valid email address.",
		"Availability information is required.",
		"Please select at least one area of interest.",
		"Please tell us why you'd like to volunteer.",
	}, msgs)
}

func TestService_Apply_DateOfBirth(t *testing.T) {
	svc, _ := newTestService()

	cases := map[string]string{
		"17/10/2000": "Invalid Date of Birth format. Please use YYYY-MM-DD.",
		"2008-10-18": "You must be at least 18 years old to volunteer with us.",
	}
	for dob, want := range cases {
		in := validInput()
		in.DateOfBirth = dob
		_, err := svc.Apply(context.Background(), in)
		msgs, ok := validate.Messages(err)
		require.True(t, ok, dob)
		assert.Equal(t, []string{want}, msgs, dob)
	}

	// Cumple 18 justo hoy.
	in := validInput()
	in.DateOfBirth = "2008-10-17"
	v, err := svc.Apply(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, v.DateOfBirth)
	assert.Equal(t, "2008-10-17", v.DateOfBirth.Format(validate.DateLayout))
}

func TestService_Apply_JoinsInterests_AndDetectsDuplicates(t *testing.T) {
	svc, repo := newTestService()

	v, err := svc.Apply(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "Dog walking, Events", v.AreasOfInterest)
	assert.Equal(t, StatusPending, v.Status)
	assert.Nil(t, v.Phone)
	assert.Len(t, repo.byEmail, 1)

	_, err = svc.Apply(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
