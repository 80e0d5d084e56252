package domain

import "context"

// City is read-only reference data used to populate selection lists.
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CityRepository interface {
	FindAll(ctx context.Context) ([]City, error)
}

type CityUsecase interface {
	FindAll(ctx context.Context) ([]City, error)
}
