package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"animal-rescue-portal/internal/domain/contact"
	"animal-rescue-portal/internal/domain/donations"
	"animal-rescue-portal/internal/domain/fosters"
	"animal-rescue-portal/internal/domain/rescues"
	"animal-rescue-portal/internal/domain/vaccinations"
	"animal-rescue-portal/internal/domain/volunteers"
)

// Repos de los formularios públicos: sólo insertan (y donations lista).

type DonationRepo struct {
	mu    sync.RWMutex
	items []donations.Donation
}

func NewDonationRepo() *DonationRepo { return &DonationRepo{} }

func (r *DonationRepo) Create(ctx context.Context, d donations.Donation) error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("donation id required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, d)
	return nil
}

func (r *DonationRepo) ListByUser(ctx context.Context, userID string) ([]donations.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]donations.Donation, 0)
	for _, d := range r.items {
		if d.UserID != nil && *d.UserID == userID {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DonationDate.After(out[j].DonationDate)
	})
	return out, nil
}

type RescueRepo struct {
	mu    sync.Mutex
	items []rescues.Rescue
}

func NewRescueRepo() *RescueRepo { return &RescueRepo{} }

func (r *RescueRepo) Create(ctx context.Context, rs rescues.Rescue) error {
	if strings.TrimSpace(rs.ID) == "" {
		return errors.New("rescue id required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, rs)
	return nil
}

// Len lo usan los tests.
func (r *RescueRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// VolunteerRepo aplica el unique de email como lo haría la tabla.
type VolunteerRepo struct {
	mu      sync.Mutex
	byEmail map[string]volunteers.Volunteer
}

func NewVolunteerRepo() *VolunteerRepo {
	return &VolunteerRepo{byEmail: make(map[string]volunteers.Volunteer)}
}

func (r *VolunteerRepo) Create(ctx context.Context, v volunteers.Volunteer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(v.Email)
	if _, exists := r.byEmail[key]; exists {
		return volunteers.ErrDuplicateEmail
	}
	r.byEmail[key] = v
	return nil
}

type FosterRepo struct {
	mu      sync.Mutex
	byEmail map[string]fosters.Foster
}

func NewFosterRepo() *FosterRepo {
	return &FosterRepo{byEmail: make(map[string]fosters.Foster)}
}

func (r *FosterRepo) Create(ctx context.Context, f fosters.Foster) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(f.Email)
	if _, exists := r.byEmail[key]; exists {
		return fosters.ErrDuplicateEmail
	}
	r.byEmail[key] = f
	return nil
}

type VaccinationRepo struct {
	mu    sync.Mutex
	items []vaccinations.Appointment
}

func NewVaccinationRepo() *VaccinationRepo { return &VaccinationRepo{} }

func (r *VaccinationRepo) Create(ctx context.Context, a vaccinations.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, a)
	return nil
}

type ContactRepo struct {
	mu    sync.Mutex
	items []contact.Message
}

func NewContactRepo() *ContactRepo { return &ContactRepo{} }

func (r *ContactRepo) Create(ctx context.Context, m contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, m)
	return nil
}
