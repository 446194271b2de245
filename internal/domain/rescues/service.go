package rescues

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-rescue-portal/internal/platform/uploads"
	"animal-rescue-portal/internal/platform/validate"

	"github.com/google/uuid"
)

var ErrImageUpload = errors.New("rescue image upload failed")

type Service struct {
	repo  Repository
	files *uploads.Store
	now   func() time.Time
}

func NewService(repo Repository, files *uploads.Store) *Service {
	return &Service{
		repo:  repo,
		files: files,
		now:   time.Now,
	}
}

type ReportInput struct {
	AnimalType       string
	OtherAnimalType  string
	Location         string
	ConditionDetails string
	Image            *uploads.File
}

// Report registra un avistamiento. reporterUserID vacío = anónimo.
func (s *Service) Report(ctx context.Context, reporterUserID string, in ReportInput) (Rescue, error) {
	animalType := strings.TrimSpace(in.AnimalType)
	location := strings.TrimSpace(in.Location)

	var errs validate.Errors
	switch {
	case animalType == OtherType:
		other := strings.TrimSpace(in.OtherAnimalType)
		if other == "" {
			errs.Add(`Please specify the type of animal if selecting "Other".`)
		}
		animalType = other
	case animalType == "":
		errs.Add("Animal type is required.")
	}

	errs.AddIf(location == "", "Location is required.")

	if !in.Image.Present() {
		errs.Add("An image upload is required.")
	} else if !uploads.Allowed(in.Image.Name, uploads.ImageExtensions) {
		errs.Add(fmt.Sprintf("Invalid image file type (%s allowed).", strings.Join(uploads.ImageExtensions, ", ")))
	}

	if err := errs.Err(); err != nil {
		return Rescue{}, err
	}

	who := "anon"
	if strings.TrimSpace(reporterUserID) != "" {
		who = reporterUserID
	}
	saved, err := s.files.Save(uploads.CategoryRescues, fmt.Sprintf("rescue_%s_%s", who, s.files.Timestamp()), in.Image)
	if err != nil {
		return Rescue{}, fmt.Errorf("%w: %v", ErrImageUpload, err)
	}

	rs := Rescue{
		ID:               uuid.NewString(),
		AnimalType:       animalType,
		Location:         location,
		ConditionDetails: validate.NilIfBlank(in.ConditionDetails),
		ImageFilename:    saved.RelPath,
		ReporterUserID:   validate.NilIfBlank(reporterUserID),
		Status:           StatusReported,
		ReportedAt:       s.now().UTC(),
	}
	if err := s.repo.Create(ctx, rs); err != nil {
		return Rescue{}, errors.Join(err, s.files.Remove(saved))
	}
	return rs, nil
}
