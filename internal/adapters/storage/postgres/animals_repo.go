package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"animal-rescue-portal/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, user_id, name, type, age, description,
	image_filename, status, date_posted
`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID,
		a.UserID,
		a.Name,
		a.Type,
		a.Age,
		a.Description,
		toNullString(a.ImageFilename),
		string(a.Status),
		a.DatePosted,
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
	a, err := scanAnimal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, err
}

func (r *AnimalsRepo) ListByStatus(ctx context.Context, status animals.Status) ([]animals.Animal, error) {
	return r.list(ctx, `
		SELECT `+animalColumns+` FROM animals
		WHERE status = $1
		ORDER BY date_posted DESC
	`, string(status))
}

func (r *AnimalsRepo) ListByOwner(ctx context.Context, userID string) ([]animals.Animal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}
	return r.list(ctx, `
		SELECT `+animalColumns+` FROM animals
		WHERE user_id = $1
		ORDER BY date_posted DESC
	`, userID)
}

func (r *AnimalsRepo) list(ctx context.Context, query string, arg string) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// rowScanner lo cumplen *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var img sql.NullString
	if err := s.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Type,
		&a.Age,
		&a.Description,
		&img,
		&a.Status,
		&a.DatePosted,
	); err != nil {
		return animals.Animal{}, err
	}
	a.ImageFilename = fromNullString(img)
	return a, nil
}
