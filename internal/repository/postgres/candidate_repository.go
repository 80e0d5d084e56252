package postgres

import (
	"context"
	"errors"

	"go-dreamjob/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Save(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (name, description, creation_date, city_id, file_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		candidate.Name, candidate.Description, candidate.CreationDate,
		candidate.CityID, candidate.FileID,
	).Scan(&candidate.ID)
}

func (r *candidateRepository) FindByID(ctx context.Context, id int) (*domain.Candidate, error) {
	query := `
		SELECT id, name, description, creation_date, city_id, file_id
		FROM candidates WHERE id = $1`

	var c domain.Candidate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreationDate, &c.CityID, &c.FileID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) FindAll(ctx context.Context) ([]domain.Candidate, error) {
	query := `
		SELECT id, name, description, creation_date, city_id, file_id
		FROM candidates ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreationDate, &c.CityID, &c.FileID); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) (bool, error) {
	query := `
		UPDATE candidates
		SET name = $2, description = $3, city_id = $4, file_id = $5
		WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.Name, candidate.Description,
		candidate.CityID, candidate.FileID,
	)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *candidateRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
