package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-rescue-portal/internal/domain/animals"
	"animal-rescue-portal/internal/platform/uploads"
	"animal-rescue-portal/internal/platform/validate"

	"github.com/google/uuid"
)

// AnimalReader es lo que este módulo necesita de animals.
type AnimalReader interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
}

type Service struct {
	repo    Repository
	animals AnimalReader
	files   *uploads.Store
	now     func() time.Time
}

func NewService(repo Repository, animalsReader AnimalReader, files *uploads.Store) *Service {
	return &Service{
		repo:    repo,
		animals: animalsReader,
		files:   files,
		now:     time.Now,
	}
}

type SubmitInput struct {
	AdopterName  string
	AdopterEmail string
	Photo        *uploads.File
	IDProof      *uploads.File
}

// Submit valida el formulario y el estado del animal antes de tocar disco.
// Si falla algo después de guardar archivos, los borra.
func (s *Service) Submit(ctx context.Context, userID, animalID string, in SubmitInput) (Adoption, error) {
	if strings.TrimSpace(userID) == "" {
		return Adoption{}, ErrInvalidInput
	}

	name := strings.TrimSpace(in.AdopterName)
	email := strings.TrimSpace(in.AdopterEmail)

	var errs validate.Errors
	errs.AddIf(name == "", "Your full name is required.")
	errs.AddIf(email == "", "Your email address is required.")
	errs.AddIf(!in.Photo.Present(), "Your photo upload is required.")
	errs.AddIf(!in.IDProof.Present(), "Your ID proof upload is required.")

	if in.Photo.Present() && !uploads.Allowed(in.Photo.Name, uploads.ImageExtensions) {
		errs.Add("Invalid photo file type. Only images (PNG, JPG, GIF) allowed.")
	}
	if in.IDProof.Present() && !uploads.Allowed(in.IDProof.Name, uploads.DocumentExtensions) {
		errs.Add("Invalid ID proof file type. Only images (PNG, JPG, GIF) or PDF allowed.")
	}

	kind := ErrInvalidInput
	var animal animals.Animal
	a, err := s.animals.GetByID(ctx, animalID)
	switch {
	case errors.Is(err, animals.ErrNotFound):
		errs.Add("Animal not found.")
		kind = ErrAnimalNotFound
	case err != nil:
		errs.Add("Could not verify animal status.")
	case !a.Available():
		errs.Add("This animal is no longer available for adoption.")
		kind = ErrAnimalUnavailable
	default:
		animal = a
	}

	if len(errs) > 0 {
		return Adoption{}, &RequestError{Kind: kind, Problems: errs}
	}

	ts := s.files.Timestamp()
	photo, err := s.files.Save(uploads.CategoryAdoptions, fmt.Sprintf("photo_%s_%s", userID, ts), in.Photo)
	if err != nil {
		return Adoption{}, fmt.Errorf("%w: photo: %v", ErrFileStorage, err)
	}
	idProof, err := s.files.Save(uploads.CategoryAdoptions, fmt.Sprintf("id_%s_%s", userID, ts), in.IDProof)
	if err != nil {
		return Adoption{}, errors.Join(fmt.Errorf("%w: id proof: %v", ErrFileStorage, err), s.files.Remove(photo))
	}

	ad := Adoption{
		ID:           uuid.NewString(),
		AnimalID:     animal.ID,
		AnimalName:   animal.Name,
		AdopterName:  name,
		AdopterEmail: email,
		PhotoPath:    photo.RelPath,
		IDProofPath:  idProof.RelPath,
		UserID:       userID,
		Status:       StatusPending,
		AdoptionDate: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, ad); err != nil {
		removeErr := s.files.Remove(photo, idProof)
		switch {
		case errors.Is(err, ErrAnimalUnavailable):
			// Aceptaron otra solicitud entre el chequeo y el insert.
			err = &RequestError{Kind: ErrAnimalUnavailable, Problems: validate.Errors{"This animal is no longer available for adoption."}}
		case errors.Is(err, ErrAnimalNotFound):
			err = &RequestError{Kind: ErrAnimalNotFound, Problems: validate.Errors{"Animal not found."}}
		}
		return Adoption{}, errors.Join(err, removeErr)
	}
	return ad, nil
}

// Process acepta o rechaza una solicitud. Sólo el que publicó el animal puede.
func (s *Service) Process(ctx context.Context, posterUserID, adoptionID string, action Action) error {
	adoptionID = strings.TrimSpace(adoptionID)
	if strings.TrimSpace(posterUserID) == "" || adoptionID == "" {
		return ErrInvalidInput
	}
	if action != ActionAccept && action != ActionReject {
		return ErrInvalidInput
	}

	ad, err := s.repo.GetByID(ctx, adoptionID)
	if err != nil {
		return err
	}

	animal, err := s.animals.GetByID(ctx, ad.AnimalID)
	if err != nil {
		if errors.Is(err, animals.ErrNotFound) {
			return ErrAnimalNotFound
		}
		return err
	}
	if animal.UserID != posterUserID {
		return ErrForbidden
	}

	if action == ActionReject {
		return s.repo.Reject(ctx, ad.ID)
	}

	// Chequeo rápido; el repo lo repite bajo lock.
	if !animal.Available() {
		return &AnimalStatusError{Status: animal.Status}
	}
	return s.repo.Accept(ctx, ad.ID, animal.ID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPendingByAnimal(ctx context.Context, animalID string) ([]Adoption, error) {
	return s.repo.ListPendingByAnimal(ctx, animalID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Adoption, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, nil
	}
	return s.repo.ListByUser(ctx, userID)
}
