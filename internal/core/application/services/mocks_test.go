package services_test

import (
	"context"

	"ticketon/internal/core/application/services"
	"ticketon/internal/core/domain/model/category"
	"ticketon/internal/core/domain/model/event"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/core/domain/model/location"
	"ticketon/internal/core/domain/model/ticket"
	"ticketon/internal/core/domain/model/user"
	"ticketon/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock repositories and unit of work shared by the service tests.

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Get(ctx context.Context, id int64) (category.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(category.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(ctx context.Context, name string) ([]category.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, page *kernel.Page) ([]category.Category, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, c category.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Get(ctx context.Context, id int64) (event.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(event.Event), args.Error(1)
}

func (m *MockEventRepository) FindAll(ctx context.Context, page *kernel.Page) ([]event.Event, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]event.Event), args.Error(1)
}

func (m *MockEventRepository) Save(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) GetCategoryNames(ctx context.Context, eventID int64) ([]string, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEventRepository) AssignCategory(ctx context.Context, eventID, categoryID int64) error {
	args := m.Called(ctx, eventID, categoryID)
	return args.Error(0)
}

func (m *MockEventRepository) RemoveCategory(ctx context.Context, eventID, categoryID int64) error {
	args := m.Called(ctx, eventID, categoryID)
	return args.Error(0)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Get(ctx context.Context, id int64) (location.Location, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(location.Location), args.Error(1)
}

func (m *MockLocationRepository) FindAll(ctx context.Context, page *kernel.Page) ([]location.Location, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]location.Location), args.Error(1)
}

func (m *MockLocationRepository) Save(ctx context.Context, l location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Get(ctx context.Context, id int64) (ticket.Ticket, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ticket.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindAll(ctx context.Context, page *kernel.Page) ([]ticket.Ticket, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]ticket.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Save(ctx context.Context, t ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) GetByLogin(ctx context.Context, login string) (user.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, page *kernel.Page) ([]user.User, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) GetEvents(ctx context.Context, userID int64, page *kernel.Page) ([]event.Event, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]event.Event), args.Error(1)
}

func (m *MockUserRepository) AssignEvent(ctx context.Context, userID, eventID int64) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveEvent(ctx context.Context, userID, eventID int64) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) PurgeOrphanedEventCategories(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMaintenanceRepository) PurgeOrphanedSubscriptions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every narrow unit-of-work interface of the services
// package.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}

func (m *MockUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) TicketRepository() ports.TicketRepository {
	args := m.Called()
	return args.Get(0).(ports.TicketRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) MaintenanceRepository() ports.MaintenanceRepository {
	args := m.Called()
	return args.Get(0).(ports.MaintenanceRepository)
}

// Function adapters turn a MockUoW into the factory shapes the services
// expect, the same way the composition root adapts the GORM factory.

type categoryUoWFactoryFunc func() services.CategoryUoW

func (f categoryUoWFactoryFunc) Create() services.CategoryUoW { return f() }

type eventUoWFactoryFunc func() services.EventUoW

func (f eventUoWFactoryFunc) Create() services.EventUoW { return f() }

type locationUoWFactoryFunc func() services.LocationUoW

func (f locationUoWFactoryFunc) Create() services.LocationUoW { return f() }

type ticketUoWFactoryFunc func() services.TicketUoW

func (f ticketUoWFactoryFunc) Create() services.TicketUoW { return f() }

type userUoWFactoryFunc func() services.UserUoW

func (f userUoWFactoryFunc) Create() services.UserUoW { return f() }

type maintenanceUoWFactoryFunc func() services.MaintenanceUoW

func (f maintenanceUoWFactoryFunc) Create() services.MaintenanceUoW { return f() }
