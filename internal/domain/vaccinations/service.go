package vaccinations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"animal-rescue-portal/internal/platform/validate"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type ScheduleInput struct {
	OwnerName string
	PetName   string
	PetType   string
	Date      string // YYYY-MM-DD
	TimeSlot  string
}

// Schedule pide un turno; la fecha no puede ser anterior a hoy.
func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (Appointment, error) {
	a := Appointment{
		OwnerName: strings.TrimSpace(in.OwnerName),
		PetName:   strings.TrimSpace(in.PetName),
		PetType:   strings.TrimSpace(in.PetType),
		TimeSlot:  strings.TrimSpace(in.TimeSlot),
	}

	var errs validate.Errors
	errs.AddIf(a.OwnerName == "", "Owner name is required.")
	errs.AddIf(a.PetName == "", "Pet name is required.")
	errs.AddIf(a.PetType == "", "Pet type is required.")

	now := s.now()
	if validate.Blank(in.Date) {
		errs.Add("Appointment date is required.")
	} else if d, err := validate.ParseDate(in.Date); err != nil {
		errs.Add("Invalid date format. Please use YYYY-MM-DD.")
	} else if d.Before(validate.Today(now)) {
		errs.Add("Appointment date cannot be in the past.")
	} else {
		a.Date = d
	}

	errs.AddIf(a.TimeSlot == "", "Appointment time slot is required.")

	if err := errs.Err(); err != nil {
		return Appointment{}, err
	}

	a.ID = uuid.NewString()
	a.Status = StatusPending
	a.CreatedAt = now.UTC()

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// Confirmation es el mensaje que ve el usuario tras pedir el turno.
func (a Appointment) Confirmation() string {
	return fmt.Sprintf("Appointment requested for %s on %s (%s). We will contact you to confirm.",
		a.PetName, a.Date.Format(validate.DateLayout), a.TimeSlot)
}
