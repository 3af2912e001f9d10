package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption-portal/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, name, species, breed, size, gender, age_category, description,
	image_url, activity_level, needs_yard, good_for_first_time,
	needs_experienced, time_requirement, good_with, special_needs,
	status, date_added
`

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	// Orden por date_added asc: mismo orden de inserción que las colecciones
	// en archivo (importa para el desempate del quiz).
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY date_added ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	goodWith, err := toJSON(p.GoodWith)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		p.ID, p.Name, p.Species, p.Breed, p.Size, p.Gender, p.AgeCategory,
		p.Description, p.ImageURL, p.ActivityLevel, p.NeedsYard,
		p.GoodForFirstTime, p.NeedsExperienced, p.TimeRequirement,
		goodWith, p.SpecialNeeds, string(p.Status), p.DateAdded,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	goodWith, err := toJSON(p.GoodWith)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets SET
			name = $2, species = $3, breed = $4, size = $5, gender = $6,
			age_category = $7, description = $8, image_url = $9,
			activity_level = $10, needs_yard = $11, good_for_first_time = $12,
			needs_experienced = $13, time_requirement = $14, good_with = $15,
			special_needs = $16, status = $17
		WHERE id = $1
	`,
		p.ID, p.Name, p.Species, p.Breed, p.Size, p.Gender, p.AgeCategory,
		p.Description, p.ImageURL, p.ActivityLevel, p.NeedsYard,
		p.GoodForFirstTime, p.NeedsExperienced, p.TimeRequirement,
		goodWith, p.SpecialNeeds, string(p.Status),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var (
		p        pets.Pet
		status   string
		goodWith []byte
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Species, &p.Breed, &p.Size, &p.Gender,
		&p.AgeCategory, &p.Description, &p.ImageURL, &p.ActivityLevel,
		&p.NeedsYard, &p.GoodForFirstTime, &p.NeedsExperienced,
		&p.TimeRequirement, &goodWith, &p.SpecialNeeds, &status, &p.DateAdded,
	)
	if err != nil {
		return pets.Pet{}, err
	}
	p.Status = pets.Status(status)
	if err := fromJSON(goodWith, &p.GoodWith); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}
