package validate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_ErrAndJoin(t *testing.T) {
	var errs Errors
	require.NoError(t, errs.Err())

	errs.Add("Name is required.")
	errs.AddIf(false, "never")
	errs.AddIf(true, "Age is required.")

	err := errs.Err()
	require.Error(t, err)
	assert.Equal(t, "Name is required. Age is required.", err.Error())

	msgs, ok := Messages(fmt.Errorf("wrapped: %w", err))
	require.True(t, ok)
	assert.Equal(t, []string{"Name is required.", "Age is required."}, msgs)

	_, ok = Messages(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("a@b.org"))
	assert.False(t, Email("ab.org"))
	assert.False(t, Email("a@borg"))
}

func TestAgeOn(t *testing.T) {
	on := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 18, AgeOn(time.Date(2008, 10, 17, 0, 0, 0, 0, time.UTC), on))
	assert.Equal(t, 17, AgeOn(time.Date(2008, 10, 18, 0, 0, 0, 0, time.UTC), on))
	assert.Equal(t, 17, AgeOn(time.Date(2008, 11, 1, 0, 0, 0, 0, time.UTC), on))
}

func TestToday_UsesCalendarDateOfInput(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2026, 10, 17, 22, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), Today(now))
}

func TestNilIfBlank(t *testing.T) {
	assert.Nil(t, NilIfBlank("   "))
	require.NotNil(t, NilIfBlank(" x "))
	assert.Equal(t, "x", *NilIfBlank(" x "))
}
