package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"animal-rescue-portal/internal/domain/adoptions"
	"animal-rescue-portal/internal/domain/animals"
	"animal-rescue-portal/internal/domain/donations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeAnimals struct {
	items []animals.Animal
	err   error
}

func (f fakeAnimals) ListByOwner(ctx context.Context, userID string) ([]animals.Animal, error) {
	return f.items, f.err
}

func (f fakeAnimals) ImageURL(a animals.Animal) string {
	if a.ImageFilename == nil {
		return ""
	}
	return "/static/" + *a.ImageFilename
}

type fakeAdoptions struct {
	pending    map[string][]adoptions.Adoption
	pendingErr map[string]error
	mine       []adoptions.Adoption
	mineErr    error
}

func (f fakeAdoptions) ListPendingByAnimal(ctx context.Context, animalID string) ([]adoptions.Adoption, error) {
	if err := f.pendingErr[animalID]; err != nil {
		return nil, err
	}
	return f.pending[animalID], nil
}

func (f fakeAdoptions) ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error) {
	return f.mine, f.mineErr
}

type fakeDonations struct {
	items []donations.Donation
	err   error
}

func (f fakeDonations) ListByUser(ctx context.Context, userID string) ([]donations.Donation, error) {
	return f.items, f.err
}

func TestService_Load_AttachesPendingOnlyToAvailable(t *testing.T) {
	img := "uploads/animals/milo.png"
	an := fakeAnimals{items: []animals.Animal{
		{ID: "milo", Status: animals.StatusAvailable, ImageFilename: &img},
		{ID: "tom", Status: animals.StatusAdopted},
	}}
	ad := fakeAdoptions{
		pending: map[string][]adoptions.Adoption{
			"milo": {{ID: "r1"}, {ID: "r2"}},
			"tom":  {{ID: "should-not-load"}},
		},
		mine: []adoptions.Adoption{{ID: "mine"}},
	}
	dn := fakeDonations{items: []donations.Donation{{ID: "d1"}}}

	d, err := NewService(an, ad, dn).Load(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, d.Animals, 2)
	assert.Equal(t, "/static/uploads/animals/milo.png", d.Animals[0].ImageURL)
	assert.Len(t, d.Animals[0].PendingRequests, 2)
	assert.Empty(t, d.Animals[1].PendingRequests)
	assert.Len(t, d.Requests, 1)
	assert.Len(t, d.Donations, 1)
}

func TestService_Load_PartialFailureKeepsTheRest(t *testing.T) {
	boom := errors.New("db down")
	an := fakeAnimals{items: []animals.Animal{
		{ID: "a1", Status: animals.StatusAvailable},
		{ID: "a2", Status: animals.StatusAvailable},
	}}
	ad := fakeAdoptions{
		pending:    map[string][]adoptions.Adoption{"a2": {{ID: "r1"}}},
		pendingErr: map[string]error{"a1": boom},
		mine:       []adoptions.Adoption{{ID: "mine", AdoptionDate: time.Now()}},
	}
	dn := fakeDonations{err: boom}

	d, err := NewService(an, ad, dn).Load(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "pending requests for animal a1")
	assert.Contains(t, err.Error(), "donations")

	require.Len(t, d.Animals, 2)
	assert.Empty(t, d.Animals[0].PendingRequests)
	assert.Len(t, d.Animals[1].PendingRequests, 1)
	assert.Len(t, d.Requests, 1)
	assert.Empty(t, d.Donations)
}

func TestService_Load_ManyAnimals(t *testing.T) {
	items := make([]animals.Animal, 0, 20)
	pending := map[string][]adoptions.Adoption{}
	for i := 0; i < 20; i++ {
		id := string(rune('a' + i))
		items = append(items, animals.Animal{ID: id, Status: animals.StatusAvailable})
		pending[id] = []adoptions.Adoption{{ID: "req-" + id}}
	}

	d, err := NewService(fakeAnimals{items: items}, fakeAdoptions{pending: pending}, fakeDonations{}).Load(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, d.Animals, 20)
	for _, a := range d.Animals {
		require.Len(t, a.PendingRequests, 1)
		assert.Equal(t, "req-"+a.ID, a.PendingRequests[0].ID)
	}
}
