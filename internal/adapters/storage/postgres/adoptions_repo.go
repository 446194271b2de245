package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"animal-rescue-portal/internal/domain/adoptions"
	"animal-rescue-portal/internal/domain/animals"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const adoptionColumns = `
	id, animal_id, animal_name, adopter_name, adopter_email,
	photo_path, id_proof_path, user_id, status, adoption_date
`

// Create inserta sólo si el animal sigue Available; si no, no hay fila y
// devuelve ErrAnimalUnavailable. FOR SHARE espera al FOR UPDATE de Accept y
// vuelve a evaluar el estado ya confirmado.
func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO adoptions (`+adoptionColumns+`)
		SELECT $1::text, $2::text, $3::text, $4::text, $5::text,
		       $6::text, $7::text, $8::text, $9::text, $10::timestamptz
		WHERE EXISTS (
			SELECT 1 FROM animals WHERE id = $2::text AND status = 'Available'
			FOR SHARE
		)
	`,
		a.ID,
		a.AnimalID,
		a.AnimalName,
		a.AdopterName,
		a.AdopterEmail,
		a.PhotoPath,
		a.IDProofPath,
		a.UserID,
		string(a.Status),
		a.AdoptionDate,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return adoptions.ErrAnimalUnavailable
	}
	return nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+adoptionColumns+` FROM adoptions WHERE id = $1`, id)
	a, err := scanAdoption(row)
	if errors.Is(err, sql.ErrNoRows) {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, err
}

func (r *AdoptionsRepo) ListPendingByAnimal(ctx context.Context, animalID string) ([]adoptions.Adoption, error) {
	return r.list(ctx, `
		SELECT `+adoptionColumns+` FROM adoptions
		WHERE animal_id = $1 AND status = 'Pending'
		ORDER BY adoption_date ASC
	`, animalID)
}

func (r *AdoptionsRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error) {
	return r.list(ctx, `
		SELECT `+adoptionColumns+` FROM adoptions
		WHERE user_id = $1
		ORDER BY adoption_date DESC
	`, userID)
}

// Accept corre en una transacción que toma el lock de la fila del animal,
// así dos aceptaciones concurrentes del mismo animal se serializan y la
// segunda ve el animal ya Adopted.
func (r *AdoptionsRepo) Accept(ctx context.Context, adoptionID, animalID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var status string
	err = tx.QueryRowContext(ctx, `SELECT status FROM animals WHERE id = $1 FOR UPDATE`, animalID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return adoptions.ErrAnimalNotFound
	}
	if err != nil {
		return err
	}

	var belongs bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM adoptions WHERE id = $1 AND animal_id = $2)
	`, adoptionID, animalID).Scan(&belongs); err != nil {
		return err
	}
	if !belongs {
		return adoptions.ErrNotFound
	}

	if animals.Status(status) != animals.StatusAvailable {
		return &adoptions.AnimalStatusError{Status: animals.Status(status)}
	}

	var accepted bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM adoptions WHERE animal_id = $1 AND status = 'Accepted')
	`, animalID).Scan(&accepted); err != nil {
		return err
	}
	if accepted {
		return adoptions.ErrAlreadyAccepted
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE adoptions SET status = 'Accepted' WHERE id = $1
	`, adoptionID); err != nil {
		if isUniqueViolation(err) {
			return adoptions.ErrAlreadyAccepted
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE adoptions SET status = 'Unavailable'
		WHERE animal_id = $1 AND id <> $2 AND status = 'Pending'
	`, animalID, adoptionID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE animals SET status = 'Adopted' WHERE id = $1
	`, animalID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *AdoptionsRepo) Reject(ctx context.Context, adoptionID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoptions SET status = 'Rejected'
		WHERE id = $1 AND status = 'Pending'
	`, adoptionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	// 0 filas: no existe o ya no está Pending
	var exists bool
	if err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM adoptions WHERE id = $1)
	`, adoptionID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return adoptions.ErrNotFound
	}
	return adoptions.ErrNotPending
}

func (r *AdoptionsRepo) list(ctx context.Context, query string, arg string) ([]adoptions.Adoption, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAdoption(s rowScanner) (adoptions.Adoption, error) {
	var a adoptions.Adoption
	err := s.Scan(
		&a.ID,
		&a.AnimalID,
		&a.AnimalName,
		&a.AdopterName,
		&a.AdopterEmail,
		&a.PhotoPath,
		&a.IDProofPath,
		&a.UserID,
		&a.Status,
		&a.AdoptionDate,
	)
	return a, err
}
