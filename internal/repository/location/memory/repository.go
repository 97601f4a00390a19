package memory

import (
	"context"
	"log/slog"
	"sync"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
)

type LocationRepository struct {
	log       *logger.Logger
	mu        sync.RWMutex
	locations map[int64]*model.Location
	nextID    int64
}

func NewLocationRepository(log *logger.Logger) *LocationRepository {
	return &LocationRepository{
		log:       log,
		locations: make(map[int64]*model.Location),
		nextID:    1,
	}
}

func (l *LocationRepository) Create(ctx context.Context, location *model.Location) (*model.Location, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	newLocation := &model.Location{
		ID:          l.nextID,
		Name:        location.Name,
		IsPublished: location.IsPublished,
	}
	l.nextID++

	l.locations[newLocation.ID] = newLocation

	result := *newLocation
	return &result, nil
}

func (l *LocationRepository) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	location, exists := l.locations[id]
	if !exists {
		l.log.Debug("Location not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrLocationNotFound
	}

	result := *location
	return &result, nil
}

func (l *LocationRepository) Update(ctx context.Context, id int64, update *model.UpdateLocationDTO) (*model.Location, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	location, exists := l.locations[id]
	if !exists {
		return nil, custom_errors.ErrLocationNotFound
	}

	if update.Name != nil {
		location.Name = *update.Name
	}
	if update.IsPublished != nil {
		location.IsPublished = *update.IsPublished
	}

	result := *location
	return &result, nil
}

func (l *LocationRepository) Delete(ctx context.Context, id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.locations[id]; !exists {
		return custom_errors.ErrLocationNotFound
	}

	delete(l.locations, id)
	return nil
}
