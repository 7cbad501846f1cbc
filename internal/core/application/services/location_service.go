package services

import (
	"context"

	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/core/domain/model/location"
)

// LocationService exposes location reads and writes.
type LocationService struct {
	uowFactory LocationUoWFactory
}

// NewLocationService creates a location service.
func NewLocationService(uowFactory LocationUoWFactory) LocationService {
	return LocationService{uowFactory: uowFactory}
}

// GetByID retrieves a location by identifier.
func (s LocationService) GetByID(ctx context.Context, id int64) (location.Location, error) {
	if err := validateID(id); err != nil {
		return location.Location{}, err
	}

	return s.uowFactory.Create().LocationRepository().Get(ctx, id)
}

// FindAll retrieves locations sliced and ordered by the page descriptor.
func (s LocationService) FindAll(ctx context.Context, page *kernel.Page) ([]location.Location, error) {
	return s.uowFactory.Create().LocationRepository().FindAll(ctx, page)
}

// Save upserts the location by identifier.
func (s LocationService) Save(ctx context.Context, l location.Location) error {
	if err := validateID(l.ID); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LocationRepository().Save(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// Delete removes the location by identifier.
func (s LocationService) Delete(ctx context.Context, id int64) error {
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

	if err := uow.LocationRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
