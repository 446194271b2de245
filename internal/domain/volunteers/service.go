package volunteers

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-rescue-portal/internal/platform/validate"

	"github.com/google/uuid"
)

var ErrDuplicateEmail = errors.New("volunteer email already registered")

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

type ApplyInput struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	DateOfBirth  string // YYYY-MM-DD, opcional
	Availability string
	Interests    []string
	Experience   string
	Why          string
}

func (s *Service) Apply(ctx context.Context, in ApplyInput) (Volunteer, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	availability := strings.TrimSpace(in.Availability)
	why := strings.TrimSpace(in.Why)

	interests := make([]string, 0, len(in.Interests))
	for _, i := range in.Interests {
		if i = strings.TrimSpace(i); i != "" {
			interests = append(interests, i)
		}
	}

	var errs validate.Errors
	errs.AddIf(name == "", "Name is required.")
	if email == "" {
		errs.Add("Email is required.")
	} else if !validate.Email(email) {
		errs.Add("Please enter a valid email address.")
	}
	errs.AddIf(availability == "", "Availability information is required.")
	errs.AddIf(len(interests) == 0, "Please select at least one area of interest.")
	errs.AddIf(why == "", "Please tell us why you'd like to volunteer.")

	now := s.now()
	var dob *time.Time
	if !validate.Blank(in.DateOfBirth) {
		d, err := validate.ParseDate(in.DateOfBirth)
		if err != nil {
			errs.Add("Invalid Date of Birth format. Please use YYYY-MM-DD.")
		} else {
			if validate.AgeOn(d, validate.Today(now)) < MinAge {
				errs.Add("You must be at least 18 years old to volunteer with us.")
			}
			dob = &d
		}
	}

	if err := errs.Err(); err != nil {
		return Volunteer{}, err
	}

	v := Volunteer{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		Phone:           validate.NilIfBlank(in.Phone),
		Address:         validate.NilIfBlank(in.Address),
		DateOfBirth:     dob,
		Availability:    availability,
		AreasOfInterest: strings.Join(interests, ", "),
		Experience:      validate.NilIfBlank(in.Experience),
		WhyVolunteer:    why,
		Status:          StatusPending,
		CreatedAt:       now.UTC(),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return Volunteer{}, err
	}
	return v, nil
}
