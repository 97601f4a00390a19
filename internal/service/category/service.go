package category_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
	category_repository "blogicum-service/internal/repository/category"
	location_repository "blogicum-service/internal/repository/location"
	"blogicum-service/internal/repository/postgres"
)

type CategoryService struct {
	categoryRepo category_repository.Repository
	locationRepo location_repository.Repository
	uow          postgres.UnitOfWork
	log          *logger.Logger
}

func NewCategoryService(
	categoryRepo category_repository.Repository,
	locationRepo location_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		uow:          uow,
		log:          log,
	}
}

func (s *CategoryService) rollback(ctx context.Context, tx postgres.Transaction, committed *bool) {
	if *committed || tx == nil {
		return
	}
	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
		} else {
			s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
		}
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, dto *model.CreateCategoryDTO) (*model.Category, error) {
	category := &model.Category{
		Title:       dto.Title,
		Slug:        dto.Slug,
		Description: dto.Description,
		IsPublished: dto.IsPublished,
	}

	created, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategorySlugExists) {
			s.log.Debug("Category slug already exists", slog.String("slug", dto.Slug))
			return nil, custom_errors.ErrCategorySlugExists
		}
		s.log.Error("Failed to create category", slog.String("error", err.Error()), slog.String("slug", dto.Slug))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return created, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			return nil, custom_errors.ErrCategoryNotFound
		}
		s.log.Error("Failed to get category", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, dto *model.UpdateCategoryDTO) (*model.Category, error) {
	updated, err := s.categoryRepo.Update(ctx, id, dto)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			return nil, custom_errors.ErrCategoryNotFound
		}
		if errors.Is(err, custom_errors.ErrCategorySlugExists) {
			return nil, custom_errors.ErrCategorySlugExists
		}
		if errors.Is(err, custom_errors.ErrNoUpdateRows) {
			return nil, custom_errors.ErrNoUpdateRows
		}
		s.log.Error("Failed to update category", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return updated, nil
}

// DeleteCategory removes a category and detaches its posts in one
// transaction; posts survive with a null category and drop out of the
// public feed until re-categorized.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer s.rollback(ctx, tx, &txCommitted)

	categoryRepo := tx.CategoryRepository()

	if _, err := categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			s.log.Debug("Category not found for delete", slog.Int64("id", id))
			return custom_errors.ErrCategoryNotFound
		}
		s.log.Error("Failed to get category for delete", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err := tx.PostRepository().ClearCategory(ctx, id); err != nil {
		s.log.Error("Failed to detach posts from category", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err := categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			return custom_errors.ErrCategoryNotFound
		}
		s.log.Error("Failed to delete category", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return nil
}

func (s *CategoryService) CreateLocation(ctx context.Context, dto *model.CreateLocationDTO) (*model.Location, error) {
	location := &model.Location{
		Name:        dto.Name,
		IsPublished: dto.IsPublished,
	}

	created, err := s.locationRepo.Create(ctx, location)
	if err != nil {
		s.log.Error("Failed to create location", slog.String("error", err.Error()), slog.String("name", dto.Name))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return created, nil
}

func (s *CategoryService) GetLocation(ctx context.Context, id int64) (*model.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrLocationNotFound) {
			return nil, custom_errors.ErrLocationNotFound
		}
		s.log.Error("Failed to get location", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return location, nil
}

func (s *CategoryService) UpdateLocation(ctx context.Context, id int64, dto *model.UpdateLocationDTO) (*model.Location, error) {
	updated, err := s.locationRepo.Update(ctx, id, dto)
	if err != nil {
		if errors.Is(err, custom_errors.ErrLocationNotFound) {
			return nil, custom_errors.ErrLocationNotFound
		}
		if errors.Is(err, custom_errors.ErrNoUpdateRows) {
			return nil, custom_errors.ErrNoUpdateRows
		}
		s.log.Error("Failed to update location", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return updated, nil
}

// DeleteLocation mirrors DeleteCategory: detach posts, then delete.
// A post without a location stays fully visible.
func (s *CategoryService) DeleteLocation(ctx context.Context, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer s.rollback(ctx, tx, &txCommitted)

	locationRepo := tx.LocationRepository()

	if _, err := locationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrLocationNotFound) {
			s.log.Debug("Location not found for delete", slog.Int64("id", id))
			return custom_errors.ErrLocationNotFound
		}
		s.log.Error("Failed to get location for delete", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err := tx.PostRepository().ClearLocation(ctx, id); err != nil {
		s.log.Error("Failed to detach posts from location", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err := locationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrLocationNotFound) {
			return custom_errors.ErrLocationNotFound
		}
		s.log.Error("Failed to delete location", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return nil
}
