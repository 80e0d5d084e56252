package domain

import (
	"context"
	"time"
)

type Vacancy struct {
	ID           int       `json:"id"`
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creation_date"`
	Visible      bool      `json:"visible"`
	CityID       int       `json:"city_id"`
	FileID       int       `json:"file_id"`
}

type VacancyRepository interface {
	Save(ctx context.Context, vacancy *Vacancy) error
	FindByID(ctx context.Context, id int) (*Vacancy, error)
	FindAll(ctx context.Context) ([]Vacancy, error)
	Update(ctx context.Context, vacancy *Vacancy) (bool, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

type VacancyUsecase interface {
	Save(ctx context.Context, vacancy *Vacancy, file FileDto) (*Vacancy, error)
	FindByID(ctx context.Context, id int) (*Vacancy, error)
	FindAll(ctx context.Context) ([]Vacancy, error)
	Update(ctx context.Context, vacancy *Vacancy, file FileDto) (bool, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}
