package postgres

import (
	"context"

	"go-dreamjob/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type cityRepository struct {
	db *pgxpool.Pool
}

func NewCityRepository(db *pgxpool.Pool) domain.CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) FindAll(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM cities ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}
