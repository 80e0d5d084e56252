package usecase

import (
	"context"

	"go-dreamjob/internal/domain"
)

type cityUsecase struct {
	repo domain.CityRepository
}

func NewCityUsecase(repo domain.CityRepository) domain.CityUsecase {
	return &cityUsecase{repo: repo}
}

func (u *cityUsecase) FindAll(ctx context.Context) ([]domain.City, error) {
	return u.repo.FindAll(ctx)
}
