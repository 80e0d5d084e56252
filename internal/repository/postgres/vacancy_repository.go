package postgres

import (
	"context"
	"errors"

	"go-dreamjob/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type vacancyRepository struct {
	db *pgxpool.Pool
}

func NewVacancyRepository(db *pgxpool.Pool) domain.VacancyRepository {
	return &vacancyRepository{db: db}
}

func (r *vacancyRepository) Save(ctx context.Context, vacancy *domain.Vacancy) error {
	query := `
		INSERT INTO vacancies (title, description, creation_date, visible, city_id, file_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		vacancy.Title, vacancy.Description, vacancy.CreationDate,
		vacancy.Visible, vacancy.CityID, vacancy.FileID,
	).Scan(&vacancy.ID)
}

func (r *vacancyRepository) FindByID(ctx context.Context, id int) (*domain.Vacancy, error) {
	query := `
		SELECT id, title, description, creation_date, visible, city_id, file_id
		FROM vacancies WHERE id = $1`

	var v domain.Vacancy
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Title, &v.Description, &v.CreationDate, &v.Visible, &v.CityID, &v.FileID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *vacancyRepository) FindAll(ctx context.Context) ([]domain.Vacancy, error) {
	query := `
		SELECT id, title, description, creation_date, visible, city_id, file_id
		FROM vacancies ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacancies []domain.Vacancy
	for rows.Next() {
		var v domain.Vacancy
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.CreationDate, &v.Visible, &v.CityID, &v.FileID); err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}

func (r *vacancyRepository) Update(ctx context.Context, vacancy *domain.Vacancy) (bool, error) {
	query := `
		UPDATE vacancies
		SET title = $2, description = $3, visible = $4, city_id = $5, file_id = $6
		WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query,
		vacancy.ID, vacancy.Title, vacancy.Description,
		vacancy.Visible, vacancy.CityID, vacancy.FileID,
	)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *vacancyRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
