package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"animal-rescue-portal/internal/domain/adoptions"
	"animal-rescue-portal/internal/domain/animals"
)

// AdoptionRepo comparte estado con AnimalRepo para Accept.
// Orden de locks: animals.mu y después r.mu.
type AdoptionRepo struct {
	mu      sync.RWMutex
	byID    map[string]adoptions.Adoption
	animals *AnimalRepo
}

func NewAdoptionRepo(animalRepo *AnimalRepo) *AdoptionRepo {
	return &AdoptionRepo{
		byID:    make(map[string]adoptions.Adoption),
		animals: animalRepo,
	}
}

// Create sólo inserta si el animal sigue Available, chequeado bajo el mismo
// lock que usa Accept.
func (r *AdoptionRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	r.animals.mu.RLock()
	defer r.animals.mu.RUnlock()
	r.mu.Lock()
	defer r.mu.Unlock()

	animal, ok := r.animals.byID[a.AnimalID]
	if !ok {
		return adoptions.ErrAnimalNotFound
	}
	if animal.Status != animals.StatusAvailable {
		return &adoptions.AnimalStatusError{Status: animal.Status}
	}

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adoption id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("adoption already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *AdoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, nil
}

func (r *AdoptionRepo) ListPendingByAnimal(ctx context.Context, animalID string) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, 0)
	for _, a := range r.byID {
		if a.AnimalID == animalID && a.Status == adoptions.StatusPending {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AdoptionDate.Before(out[j].AdoptionDate)
	})
	return out, nil
}

func (r *AdoptionRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AdoptionDate.After(out[j].AdoptionDate)
	})
	return out, nil
}

func (r *AdoptionRepo) Accept(ctx context.Context, adoptionID, animalID string) error {
	r.animals.mu.Lock()
	defer r.animals.mu.Unlock()
	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.byID[adoptionID]
	if !ok || target.AnimalID != animalID {
		return adoptions.ErrNotFound
	}
	animal, ok := r.animals.byID[animalID]
	if !ok {
		return adoptions.ErrAnimalNotFound
	}
	if animal.Status != animals.StatusAvailable {
		return &adoptions.AnimalStatusError{Status: animal.Status}
	}
	for _, a := range r.byID {
		if a.AnimalID == animalID && a.Status == adoptions.StatusAccepted {
			return adoptions.ErrAlreadyAccepted
		}
	}

	for id, a := range r.byID {
		if a.AnimalID != animalID {
			continue
		}
		switch {
		case id == adoptionID:
			a.Status = adoptions.StatusAccepted
		case a.Status == adoptions.StatusPending:
			a.Status = adoptions.StatusUnavailable
		default:
			continue
		}
		r.byID[id] = a
	}

	animal.Status = animals.StatusAdopted
	r.animals.byID[animalID] = animal
	return nil
}

func (r *AdoptionRepo) Reject(ctx context.Context, adoptionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[adoptionID]
	if !ok {
		return adoptions.ErrNotFound
	}
	if a.Status != adoptions.StatusPending {
		return adoptions.ErrNotPending
	}
	a.Status = adoptions.StatusRejected
	r.byID[adoptionID] = a
	return nil
}
