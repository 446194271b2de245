package vaccinations

import (
	"context"
	"errors"
	"testing"
	"time"

	"animal-rescue-portal/internal/platform/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items []Appointment
	err   error
}

func (r *testRepo) Create(ctx context.Context, a Appointment) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, a)
	return nil
}

func newTestService(repo *testRepo) *Service {
	svc := NewService(repo)
	// 23:30 UTC: "hoy" sigue siendo el 17.
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC) }
	return svc
}

func TestService_Schedule_Validation(t *testing.T) {
	svc := newTestService(&testRepo{})

	cases := []struct {
		name string
		in   ScheduleInput
		want []string
	}{
		{
			name: "empty",
			in:   ScheduleInput{},
			want: []string{
				"Owner name is required.",
				"Pet name is required.",
				"Pet type is required.",
				"Appointment date is required.",
				"Appointment time slot is required.",
			},
		},
		{
			name: "bad format",
			in:   ScheduleInput{OwnerName: "Ana", PetName: "Milo", PetType: "Dog", Date: "10/20/2026", TimeSlot: "09:00 - 11:00"},
			want: []string{"Invalid date format. Please use YYYY-MM-DD."},
		},
		{
			name: "yesterday",
			in:   ScheduleInput{OwnerName: "Ana", PetName: "Milo", PetType: "Dog", Date: "2026-10-16", TimeSlot: "09:00 - 11:00"},
			want: []string{"Appointment date cannot be in the past."},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Schedule(context.Background(), tc.in)
			msgs, ok := validate.Messages(err)
			require.True(t, ok)
			assert.Equal(t, tc.want, msgs)
		})
	}
}

func TestService_Schedule_TodayIsAllowed(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo)

	a, err := svc.Schedule(context.Background(), ScheduleInput{
		OwnerName: "Ana", PetName: "Milo", PetType: "Dog", Date: "2026-10-17", TimeSlot: "16:00 - 18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, a.Status)
	assert.Len(t, repo.items, 1)
	assert.Equal(t,
		"Appointment requested for Milo on 2026-10-17 (16:00 - 18:00). We will contact you to confirm.",
		a.Confirmation())
}

func TestService_Schedule_RepoError(t *testing.T) {
	boom := errors.New("db down")
	svc := newTestService(&testRepo{err: boom})

	_, err := svc.Schedule(context.Background(), ScheduleInput{
		OwnerName: "Ana", PetName: "Milo", PetType: "Dog", Date: "2026-12-01", TimeSlot: "09:00 - 11:00",
	})
	assert.ErrorIs(t, err, boom)
}
