package postgres

import (
	"context"
	"errors"

	"go-dreamjob/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type fileRepository struct {
	db *pgxpool.Pool
}

func NewFileRepository(db *pgxpool.Pool) domain.FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Save(ctx context.Context, file *domain.File) error {
	query := `INSERT INTO files (name, path) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRow(ctx, query, file.Name, file.Path).Scan(&file.ID)
}

func (r *fileRepository) FindByID(ctx context.Context, id int) (*domain.File, error) {
	query := `SELECT id, name, path FROM files WHERE id = $1`
	var f domain.File
	err := r.db.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.Path)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *fileRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
