package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID           int       `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creation_date"`
	CityID       int       `json:"city_id"`
	FileID       int       `json:"file_id"`
}

type CandidateRepository interface {
	Save(ctx context.Context, candidate *Candidate) error
	FindByID(ctx context.Context, id int) (*Candidate, error)
	FindAll(ctx context.Context) ([]Candidate, error)
	Update(ctx context.Context, candidate *Candidate) (bool, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

type CandidateUsecase interface {
	Save(ctx context.Context, candidate *Candidate, file FileDto) (*Candidate, error)
	FindByID(ctx context.Context, id int) (*Candidate, error)
	FindAll(ctx context.Context) ([]Candidate, error)
	Update(ctx context.Context, candidate *Candidate, file FileDto) (bool, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}
