package services

import (
	"context"

	"ticketon/internal/core/domain/model/event"
	"ticketon/internal/core/domain/model/kernel"
)

// EventService exposes event reads and writes, the category assignments and
// the detail-view composition.
type EventService struct {
	uowFactory EventUoWFactory
}

// NewEventService creates an event service.
func NewEventService(uowFactory EventUoWFactory) EventService {
	return EventService{uowFactory: uowFactory}
}

// GetByID retrieves an event by identifier.
func (s EventService) GetByID(ctx context.Context, id int64) (event.Event, error) {
	if err := validateID(id); err != nil {
		return event.Event{}, err
	}

	return s.uowFactory.Create().EventRepository().Get(ctx, id)
}

// FindAll retrieves events sliced and ordered by the page descriptor.
func (s EventService) FindAll(ctx context.Context, page *kernel.Page) ([]event.Event, error) {
	return s.uowFactory.Create().EventRepository().FindAll(ctx, page)
}

// Save upserts the event by identifier.
func (s EventService) Save(ctx context.Context, e event.Event) error {
	if err := validateID(e.ID); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.EventRepository().Save(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// Delete removes the event and its category assignments in one
// transaction.
func (s EventService) Delete(ctx context.Context, id int64) error {
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

	if err := uow.EventRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// GetAllCategoriesByEventID retrieves the titles of the categories assigned
// to the event.
func (s EventService) GetAllCategoriesByEventID(ctx context.Context, id int64) ([]string, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	return s.uowFactory.Create().EventRepository().GetCategoryNames(ctx, id)
}

// AddCategory assigns a category to the event.
func (s EventService) AddCategory(ctx context.Context, eventID, categoryID int64) error {
	if err := validateID(eventID); err != nil {
		return err
	}
	if err := validateID(categoryID); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.EventRepository().AssignCategory(ctx, eventID, categoryID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RemoveCategory unassigns a category from the event.
func (s EventService) RemoveCategory(ctx context.Context, eventID, categoryID int64) error {
	if err := validateID(eventID); err != nil {
		return err
	}
	if err := validateID(categoryID); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.EventRepository().RemoveCategory(ctx, eventID, categoryID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// GetEventWithDetails composes the event, its category names and its
// location into one detail view. Any failing sub-fetch aborts the whole
// composition; there is no partial view.
func (s EventService) GetEventWithDetails(ctx context.Context, id int64) (EventDetails, error) {
	if err := validateID(id); err != nil {
		return EventDetails{}, err
	}

	uow := s.uowFactory.Create()

	e, err := uow.EventRepository().Get(ctx, id)
	if err != nil {
		return EventDetails{}, err
	}

	categoryNames, err := uow.EventRepository().GetCategoryNames(ctx, id)
	if err != nil {
		return EventDetails{}, err
	}

	loc, err := uow.LocationRepository().Get(ctx, e.LocationID)
	if err != nil {
		return EventDetails{}, err
	}

	return NewEventDetails(e, categoryNames, loc), nil
}
