package fosters

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-rescue-portal/internal/platform/validate"

	"github.com/google/uuid"
)

var ErrDuplicateEmail = errors.New("foster email already registered")

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
	Name            string
	Email           string
	Phone           string
	Address         string
	HouseholdInfo   string
	HomeType        string
	HasYard         string
	YardFenced      string
	CanTransport    string
	PreferredAnimal []string
	Experience      string
	Why             string
}

func (s *Service) Apply(ctx context.Context, in ApplyInput) (Foster, error) {
	f := Foster{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		HomeType:     strings.TrimSpace(in.HomeType),
		HasYard:      strings.TrimSpace(in.HasYard),
		CanTransport: strings.TrimSpace(in.CanTransport),
		WhyFoster:    strings.TrimSpace(in.Why),
	}
	fenced := strings.TrimSpace(in.YardFenced)

	var errs validate.Errors
	errs.AddIf(f.Name == "", "Name is required.")
	if f.Email == "" {
		errs.Add("Email is required.")
	} else if !validate.Email(f.Email) {
		errs.Add("Please enter a valid email address.")
	}
	errs.AddIf(f.Phone == "", "Phone number is required.")
	errs.AddIf(f.Address == "", "Address is required.")
	errs.AddIf(!validate.OneOf(f.HomeType, HomeTypes...), "Valid home type is required.")

	if !validate.OneOf(f.HasYard, YardOptions...) {
		errs.Add("Please specify if you have a yard (Yes, No, or Partial).")
	} else if f.HasSomeYard() && !validate.OneOf(fenced, FenceOptions...) {
		errs.Add("Please specify if your yard is fenced, not fenced, or partially fenced.")
	}

	errs.AddIf(!validate.OneOf(f.CanTransport, TransportOpts...), "Please indicate if you can provide transport.")
	errs.AddIf(f.WhyFoster == "", "Please tell us why you'd like to foster.")

	if err := errs.Err(); err != nil {
		return Foster{}, err
	}

	if f.HasSomeYard() {
		f.YardFenced = &fenced
	}

	preferred := make([]string, 0, len(in.PreferredAnimal))
	for _, p := range in.PreferredAnimal {
		if p = strings.TrimSpace(p); p != "" {
			preferred = append(preferred, p)
		}
	}
	f.PreferredAnimal = validate.NilIfBlank(strings.Join(preferred, ", "))

	f.ID = uuid.NewString()
	f.HouseholdInfo = validate.NilIfBlank(in.HouseholdInfo)
	f.FosterExperience = validate.NilIfBlank(in.Experience)
	f.Status = StatusPending
	f.CreatedAt = s.now().UTC()

	if err := s.repo.Create(ctx, f); err != nil {
		return Foster{}, err
	}
	return f, nil
}
