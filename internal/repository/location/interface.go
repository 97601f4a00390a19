package location_repository

import (
	"context"

	"blogicum-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, location *model.Location) (*model.Location, error)
	GetByID(ctx context.Context, id int64) (*model.Location, error)
	Update(ctx context.Context, id int64, update *model.UpdateLocationDTO) (*model.Location, error)
	Delete(ctx context.Context, id int64) error
}
