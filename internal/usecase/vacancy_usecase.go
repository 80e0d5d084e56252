package usecase

import (
	"context"
	"time"

	"go-dreamjob/internal/domain"
	"go-dreamjob/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type vacancyUsecase struct {
	repo     domain.VacancyRepository
	files    domain.FileUsecase
	validate *validator.Validate
}

func NewVacancyUsecase(repo domain.VacancyRepository, files domain.FileUsecase, validate *validator.Validate) domain.VacancyUsecase {
	return &vacancyUsecase{
		repo:     repo,
		files:    files,
		validate: validate,
	}
}

func (u *vacancyUsecase) Save(ctx context.Context, vacancy *domain.Vacancy, file domain.FileDto) (*domain.Vacancy, error) {
	if err := u.validate.Struct(vacancy); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	stored, err := u.files.Save(ctx, file)
	if err != nil {
		return nil, err
	}
	vacancy.FileID = stored.ID
	vacancy.CreationDate = time.Now()

	if err := u.repo.Save(ctx, vacancy); err != nil {
		_ = u.files.DeleteByID(ctx, stored.ID)
		return nil, err
	}
	return vacancy, nil
}

func (u *vacancyUsecase) FindByID(ctx context.Context, id int) (*domain.Vacancy, error) {
	vacancy, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, apperror.NotFound(domain.MsgVacancyNotFound)
	}
	return vacancy, nil
}

func (u *vacancyUsecase) FindAll(ctx context.Context) ([]domain.Vacancy, error) {
	return u.repo.FindAll(ctx)
}

func (u *vacancyUsecase) Update(ctx context.Context, vacancy *domain.Vacancy, file domain.FileDto) (bool, error) {
	stored, err := u.files.Save(ctx, file)
	if err != nil {
		return false, err
	}
	vacancy.FileID = stored.ID

	ok, err := u.repo.Update(ctx, vacancy)
	if err != nil || !ok {
		_ = u.files.DeleteByID(ctx, stored.ID)
		return false, err
	}
	return true, nil
}

func (u *vacancyUsecase) DeleteByID(ctx context.Context, id int) (bool, error) {
	vacancy, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if vacancy == nil {
		return false, nil
	}

	ok, err := u.repo.DeleteByID(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	if err := u.files.DeleteByID(ctx, vacancy.FileID); err != nil {
		return false, err
	}
	return true, nil
}
