package usecase

import (
	"context"

	"go-dreamjob/internal/domain"
	"go-dreamjob/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	repo     domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(repo domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{repo: repo, validate: validate}
}

// Save registers the user, rejecting duplicate emails. The pre-check
// covers the common case with a readable error; the unique constraint in
// the repository closes the race between two concurrent registrations.
func (u *userUsecase) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := u.validate.Struct(user); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	existing, err := u.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict(domain.MsgUserEmailExists)
	}

	saved, err := u.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, apperror.Conflict(domain.MsgUserEmailExists)
	}
	return saved, nil
}

func (u *userUsecase) FindByEmailAndPassword(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := u.repo.FindByEmailAndPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound(domain.MsgBadCredentials)
	}
	return user, nil
}
