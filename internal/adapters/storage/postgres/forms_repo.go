package postgres

import (
	"context"
	"database/sql"
	"strings"

	"animal-rescue-portal/internal/domain/contact"
	"animal-rescue-portal/internal/domain/donations"
	"animal-rescue-portal/internal/domain/fosters"
	"animal-rescue-portal/internal/domain/rescues"
	"animal-rescue-portal/internal/domain/vaccinations"
	"animal-rescue-portal/internal/domain/volunteers"
)

// -------------------------
// Donations
// -------------------------

type DonationsRepo struct {
	db *sql.DB
}

func NewDonationsRepo(db *sql.DB) *DonationsRepo {
	return &DonationsRepo{db: db}
}

func (r *DonationsRepo) Create(ctx context.Context, d donations.Donation) error {
	var amount sql.NullFloat64
	if d.Amount != nil {
		amount = sql.NullFloat64{Float64: *d.Amount, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO donations (
			id, user_id,
			donor_name, donor_email, donor_phone,
			donation_type, amount, payment_method, product_details,
			status, donation_date
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		d.ID,
		toNullString(d.UserID),
		d.DonorName,
		d.DonorEmail,
		toNullString(d.DonorPhone),
		string(d.Type),
		amount,
		toNullString(d.PaymentMethod),
		toNullString(d.ProductDetails),
		string(d.Status),
		d.DonationDate,
	)
	return err
}

func (r *DonationsRepo) ListByUser(ctx context.Context, userID string) ([]donations.Donation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, user_id,
			donor_name, donor_email, donor_phone,
			donation_type, amount, payment_method, product_details,
			status, donation_date
		FROM donations
		WHERE user_id = $1
		ORDER BY donation_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]donations.Donation, 0)
	for rows.Next() {
		var (
			d                            donations.Donation
			uid, phone, method, products sql.NullString
			amount                       sql.NullFloat64
		)
		if err := rows.Scan(
			&d.ID,
			&uid,
			&d.DonorName,
			&d.DonorEmail,
			&phone,
			&d.Type,
			&amount,
			&method,
			&products,
			&d.Status,
			&d.DonationDate,
		); err != nil {
			return nil, err
		}

		d.UserID = fromNullString(uid)
		d.DonorPhone = fromNullString(phone)
		d.PaymentMethod = fromNullString(method)
		d.ProductDetails = fromNullString(products)
		if amount.Valid {
			v := amount.Float64
			d.Amount = &v
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// -------------------------
// Rescues
// -------------------------

type RescuesRepo struct {
	db *sql.DB
}

func NewRescuesRepo(db *sql.DB) *RescuesRepo {
	return &RescuesRepo{db: db}
}

func (r *RescuesRepo) Create(ctx context.Context, rs rescues.Rescue) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rescues (
			id, animal_type, location, condition_details,
			image_filename, reporter_user_id, status, reported_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		rs.ID,
		rs.AnimalType,
		rs.Location,
		toNullString(rs.ConditionDetails),
		rs.ImageFilename,
		toNullString(rs.ReporterUserID),
		string(rs.Status),
		rs.ReportedAt,
	)
	return err
}

// -------------------------
// Volunteers
// -------------------------

type VolunteersRepo struct {
	db *sql.DB
}

func NewVolunteersRepo(db *sql.DB) *VolunteersRepo {
	return &VolunteersRepo{db: db}
}

func (r *VolunteersRepo) Create(ctx context.Context, v volunteers.Volunteer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO volunteers (
			id, name, email, phone, address, date_of_birth,
			availability, areas_of_interest, experience, why_volunteer,
			status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		v.ID,
		v.Name,
		v.Email,
		toNullString(v.Phone),
		toNullString(v.Address),
		toNullDate(v.DateOfBirth),
		v.Availability,
		v.AreasOfInterest,
		toNullString(v.Experience),
		v.WhyVolunteer,
		string(v.Status),
		v.CreatedAt,
	)
	if isUniqueViolation(err) {
		return volunteers.ErrDuplicateEmail
	}
	return err
}

// -------------------------
// Fosters
// -------------------------

type FostersRepo struct {
	db *sql.DB
}

func NewFostersRepo(db *sql.DB) *FostersRepo {
	return &FostersRepo{db: db}
}

func (r *FostersRepo) Create(ctx context.Context, f fosters.Foster) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO fosters (
			id, name, email, phone, address, household_info,
			home_type, has_yard, yard_fenced, can_transport,
			preferred_animal, foster_experience, why_foster,
			status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		f.ID,
		f.Name,
		f.Email,
		f.Phone,
		f.Address,
		toNullString(f.HouseholdInfo),
		f.HomeType,
		f.HasYard,
		toNullString(f.YardFenced),
		f.CanTransport,
		toNullString(f.PreferredAnimal),
		toNullString(f.FosterExperience),
		f.WhyFoster,
		string(f.Status),
		f.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fosters.ErrDuplicateEmail
	}
	return err
}

// -------------------------
// Vaccinations
// -------------------------

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

func (r *VaccinationsRepo) Create(ctx context.Context, a vaccinations.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccinations (
			id, owner_name, pet_name, pet_type,
			appointment_date, appointment_time, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		a.ID,
		a.OwnerName,
		a.PetName,
		a.PetType,
		toNullDate(&a.Date),
		a.TimeSlot,
		string(a.Status),
		a.CreatedAt,
	)
	return err
}

// -------------------------
// Contact
// -------------------------

type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

func (r *ContactRepo) Create(ctx context.Context, m contact.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, m.ID, m.Name, m.Email, m.Subject, m.Body, m.CreatedAt)
	return err
}
