package postgres

import (
	"context"
	"errors"

	"go-dreamjob/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const pgUniqueViolation = "23505"

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepository{db: db}
}

// Save inserts the user. A unique violation on the email column is not an
// error: it reports "already taken" as a nil result so the caller can
// surface the duplicate without unwrapping driver errors.
func (r *userRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, name, password)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, user.Email, user.Name, user.Password).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, name, password FROM users WHERE email = $1`
	var u domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmailAndPassword(ctx context.Context, email, password string) (*domain.User, error) {
	query := `SELECT id, email, name, password FROM users WHERE email = $1 AND password = $2`
	var u domain.User
	err := r.db.QueryRow(ctx, query, email, password).Scan(&u.ID, &u.Email, &u.Name, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
