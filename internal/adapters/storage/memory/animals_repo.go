package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"animal-rescue-portal/internal/domain/animals"
)

// AnimalRepo es exportado porque AdoptionRepo necesita su lock para
// aceptar solicitudes de forma atómica.
type AnimalRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func NewAnimalRepo() *AnimalRepo {
	return &AnimalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *AnimalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *AnimalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *AnimalRepo) ListByStatus(ctx context.Context, status animals.Status) ([]animals.Animal, error) {
	return r.list(func(a animals.Animal) bool { return a.Status == status }), nil
}

func (r *AnimalRepo) ListByOwner(ctx context.Context, userID string) ([]animals.Animal, error) {
	return r.list(func(a animals.Animal) bool { return a.UserID == userID }), nil
}

func (r *AnimalRepo) list(keep func(animals.Animal) bool) []animals.Animal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if keep(a) {
			out = append(out, a)
		}
	}

	// Más nuevos primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].DatePosted.After(out[j].DatePosted)
	})
	return out
}
