package animals

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"animal-rescue-portal/internal/platform/uploads"
	"animal-rescue-portal/internal/platform/validate"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrImageUpload = errors.New("image upload failed")
)

type Service struct {
	repo      Repository
	files     *uploads.Store
	urlPrefix string
	now       func() time.Time
}

// NewService recibe el store de archivos y el prefijo público con el que se
// sirven (p.ej. "/static/uploads").
func NewService(repo Repository, files *uploads.Store, urlPrefix string) *Service {
	return &Service{
		repo:      repo,
		files:     files,
		urlPrefix: urlPrefix,
		now:       time.Now,
	}
}

type PostInput struct {
	Name        string
	Type        string
	Age         string
	Description string
	Image       *uploads.File // opcional
}

// Post valida todo el formulario (junta todos los errores), guarda la imagen
// sólo si no hubo errores y publica el animal como Available.
func (s *Service) Post(ctx context.Context, userID string, in PostInput) (Animal, error) {
	if strings.TrimSpace(userID) == "" {
		return Animal{}, errors.New("animals: user id required")
	}

	name := strings.TrimSpace(in.Name)
	typ := strings.TrimSpace(in.Type)
	desc := strings.TrimSpace(in.Description)

	var errs validate.Errors
	errs.AddIf(name == "", "Name is required.")
	errs.AddIf(typ == "", "Type is required.")

	var age float64
	if validate.Blank(in.Age) {
		errs.Add("Age is required.")
	} else {
		v, err := validate.ParseFloat(in.Age)
		switch {
		case err != nil || math.IsNaN(v) || math.IsInf(v, 0):
			errs.Add("Invalid age format. Must be a number (e.g., 2, 1.5).")
		case v < 0:
			errs.Add("Age cannot be negative.")
		default:
			age = v
		}
	}

	errs.AddIf(desc == "", "Description is required.")

	hasImage := in.Image.Present()
	if hasImage && !uploads.Allowed(in.Image.Name, uploads.ImageExtensions) {
		errs.Add("Invalid image file type (PNG, JPG, GIF allowed).")
	}
	if err := errs.Err(); err != nil {
		return Animal{}, err
	}

	var saved uploads.Saved
	if hasImage {
		prefix := fmt.Sprintf("animal_%s_%s", userID, s.files.Timestamp())
		sv, err := s.files.Save(uploads.CategoryAnimals, prefix, in.Image)
		if err != nil {
			return Animal{}, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		saved = sv
	}

	a := Animal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Type:        typ,
		Age:         age,
		Description: desc,
		Status:      StatusAvailable,
		DatePosted:  s.now().UTC(),
	}
	if hasImage {
		rel := saved.RelPath
		a.ImageFilename = &rel
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if hasImage {
			err = errors.Join(err, s.files.Remove(saved))
		}
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListAvailable devuelve los animales en adopción, más nuevos primero.
func (s *Service) ListAvailable(ctx context.Context) ([]Animal, error) {
	return s.repo.ListByStatus(ctx, StatusAvailable)
}

func (s *Service) ListByOwner(ctx context.Context, userID string) ([]Animal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, nil
	}
	return s.repo.ListByOwner(ctx, userID)
}

// ImageURL arma la URL pública de la imagen, "" si no tiene.
func (s *Service) ImageURL(a Animal) string {
	if a.ImageFilename == nil {
		return ""
	}
	return uploads.PublicURL(s.urlPrefix, *a.ImageFilename)
}
