package donations

import "context"

type Repository interface {
	Create(ctx context.Context, d Donation) error
	// ListByUser ordena por donation_date desc.
	ListByUser(ctx context.Context, userID string) ([]Donation, error)
}
