package donations

import (
	"context"
	"math"
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

type DonateInput struct {
	DonorName      string
	DonorEmail     string
	DonorPhone     string
	Type           string
	Amount         string
	PaymentMethod  string
	ProductDetails string
}

// Donate registra una donación. userID vacío = anónima.
func (s *Service) Donate(ctx context.Context, userID string, in DonateInput) (Donation, error) {
	name := strings.TrimSpace(in.DonorName)
	email := strings.TrimSpace(in.DonorEmail)
	typ := Type(strings.TrimSpace(in.Type))

	var errs validate.Errors
	errs.AddIf(name == "", "Your name is required.")
	errs.AddIf(email == "", "Your email is required.")

	var amount float64
	switch typ {
	case "":
		errs.Add("Please select a donation type.")
	case TypeMoney:
		if validate.Blank(in.Amount) {
			errs.Add("Amount is required for monetary donations.")
		} else {
			v, err := validate.ParseFloat(in.Amount)
			switch {
			case err != nil || math.IsNaN(v) || math.IsInf(v, 0):
				errs.Add("Invalid amount format. Must be a number.")
			case v <= 0:
				errs.Add("Donation amount must be positive.")
			default:
				amount = v
			}
		}
		errs.AddIf(validate.Blank(in.PaymentMethod), "Payment method is required for monetary donations.")
	case TypeProducts:
		errs.AddIf(validate.Blank(in.ProductDetails), "Product details are required for product donations.")
	default:
		errs.Add("Please select a valid donation type.")
	}

	if err := errs.Err(); err != nil {
		return Donation{}, err
	}

	d := Donation{
		ID:           uuid.NewString(),
		UserID:       validate.NilIfBlank(userID),
		DonorName:    name,
		DonorEmail:   email,
		DonorPhone:   validate.NilIfBlank(in.DonorPhone),
		Type:         typ,
		DonationDate: s.now().UTC(),
	}
	if typ == TypeMoney {
		d.Amount = &amount
		d.PaymentMethod = validate.NilIfBlank(in.PaymentMethod)
		d.Status = StatusCompleted
	} else {
		d.ProductDetails = validate.NilIfBlank(in.ProductDetails)
		d.Status = StatusReceived
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Donation{}, err
	}
	return d, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Donation, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, nil
	}
	return s.repo.ListByUser(ctx, userID)
}
