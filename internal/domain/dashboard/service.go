// Package dashboard arma la vista del usuario logueado: animales publicados
// con sus solicitudes pendientes, sus propias solicitudes y sus donaciones.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"animal-rescue-portal/internal/domain/adoptions"
	"animal-rescue-portal/internal/domain/animals"
	"animal-rescue-portal/internal/domain/donations"

	"golang.org/x/sync/errgroup"
)

// maxPendingFetches limita las lecturas concurrentes de solicitudes por animal.
const maxPendingFetches = 4

type AnimalSource interface {
	ListByOwner(ctx context.Context, userID string) ([]animals.Animal, error)
	ImageURL(a animals.Animal) string
}

type AdoptionSource interface {
	ListPendingByAnimal(ctx context.Context, animalID string) ([]adoptions.Adoption, error)
	ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error)
}

type DonationSource interface {
	ListByUser(ctx context.Context, userID string) ([]donations.Donation, error)
}

type PostedAnimal struct {
	animals.Animal
	ImageURL        string
	PendingRequests []adoptions.Adoption
}

type Dashboard struct {
	Animals   []PostedAnimal
	Requests  []adoptions.Adoption
	Donations []donations.Donation
}

type Service struct {
	animals   AnimalSource
	adoptions AdoptionSource
	donations DonationSource
}

func NewService(an AnimalSource, ad AdoptionSource, dn DonationSource) *Service {
	return &Service{animals: an, adoptions: ad, donations: dn}
}

// Load hace las tres lecturas en paralelo. Si alguna falla devuelve lo que
// sí cargó junto con el error (errors.Join de todas las fallas).
func (s *Service) Load(ctx context.Context, userID string) (Dashboard, error) {
	var d Dashboard
	var animalsErr, requestsErr, donationsErr error
	var g errgroup.Group

	g.Go(func() error {
		d.Animals, animalsErr = s.loadAnimals(ctx, userID)
		return nil
	})
	g.Go(func() error {
		d.Requests, requestsErr = s.adoptions.ListByUser(ctx, userID)
		if requestsErr != nil {
			requestsErr = fmt.Errorf("adoption requests: %w", requestsErr)
		}
		return nil
	})
	g.Go(func() error {
		d.Donations, donationsErr = s.donations.ListByUser(ctx, userID)
		if donationsErr != nil {
			donationsErr = fmt.Errorf("donations: %w", donationsErr)
		}
		return nil
	})
	_ = g.Wait()

	return d, errors.Join(animalsErr, requestsErr, donationsErr)
}

// loadAnimals trae los animales del usuario y, para los Available, sus
// solicitudes pendientes. Una falla en un animal no descarta el resto.
func (s *Service) loadAnimals(ctx context.Context, userID string) ([]PostedAnimal, error) {
	items, err := s.animals.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("posted animals: %w", err)
	}

	out := make([]PostedAnimal, len(items))
	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	g.SetLimit(maxPendingFetches)

	for i, a := range items {
		out[i] = PostedAnimal{Animal: a, ImageURL: s.animals.ImageURL(a)}
		if !a.Available() {
			continue
		}
		g.Go(func() error {
			reqs, err := s.adoptions.ListPendingByAnimal(ctx, a.ID)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("pending requests for animal %s: %w", a.ID, err))
				mu.Unlock()
				return nil
			}
			out[i].PendingRequests = reqs
			return nil
		})
	}
	_ = g.Wait()

	return out, errors.Join(errs...)
}
