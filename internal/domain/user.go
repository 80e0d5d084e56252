package domain

import "context"

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Password string `json:"-" validate:"required"`
}

type UserRepository interface {
	// Save inserts the user and returns nil, nil when the email is
	// already taken.
	Save(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (*User, error)
}

type UserUsecase interface {
	Save(ctx context.Context, user *User) (*User, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (*User, error)
}
