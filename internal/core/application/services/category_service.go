package services

import (
	"context"

	"ticketon/internal/core/domain/model/category"
	"ticketon/internal/core/domain/model/kernel"
)

// CategoryService exposes category reads and writes. Save intentionally
// skips identifier validation: a zero identifier means "let the store
// assign one" on the insert path.
type CategoryService struct {
	uowFactory CategoryUoWFactory
}

// NewCategoryService creates a category service.
func NewCategoryService(uowFactory CategoryUoWFactory) CategoryService {
	return CategoryService{uowFactory: uowFactory}
}

// GetByID retrieves a category by identifier.
func (s CategoryService) GetByID(ctx context.Context, id int64) (category.Category, error) {
	if err := validateID(id); err != nil {
		return category.Category{}, err
	}

	return s.uowFactory.Create().CategoryRepository().Get(ctx, id)
}

// GetByName retrieves categories whose title contains name, ignoring case.
func (s CategoryService) GetByName(ctx context.Context, name string) ([]category.Category, error) {
	return s.uowFactory.Create().CategoryRepository().GetByName(ctx, name)
}

// FindAll retrieves categories sliced and ordered by the page descriptor.
func (s CategoryService) FindAll(ctx context.Context, page *kernel.Page) ([]category.Category, error) {
	return s.uowFactory.Create().CategoryRepository().FindAll(ctx, page)
}

// Save upserts the category inside a transaction, serializing the
// duplicate-title check with the write.
func (s CategoryService) Save(ctx context.Context, c category.Category) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CategoryRepository().Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// Delete removes the category by identifier.
func (s CategoryService) Delete(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CategoryRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
