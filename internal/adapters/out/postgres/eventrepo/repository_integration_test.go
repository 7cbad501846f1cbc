package eventrepo_test

import (
	"context"
	"testing"
	"time"

	"ticketon/internal/adapters/out/postgres/categoryrepo"
	"ticketon/internal/adapters/out/postgres/eventrepo"
	"ticketon/internal/core/domain/model/category"
	"ticketon/internal/core/domain/model/event"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// EventRepositoryIntegrationTestSuite exercises the event repository and
// its category assignments against a real PostgreSQL container.
type EventRepositoryIntegrationTestSuite struct {
	suite.Suite
	container          *postgres.PostgresContainer
	db                 *gorm.DB
	eventRepository    *eventrepo.GormEventRepository
	categoryRepository *categoryrepo.GormCategoryRepository
}

func (suite *EventRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&eventrepo.EventDTO{},
		&eventrepo.EventCategoryDTO{},
		&categoryrepo.CategoryDTO{},
	))
}

func (suite *EventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE events_categories, events, categories RESTART IDENTITY").Error)
	suite.eventRepository = eventrepo.NewGormEventRepository(suite.db)
	suite.categoryRepository = categoryrepo.NewGormCategoryRepository(suite.db)
}

func (suite *EventRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func testEvent(id int64) event.Event {
	return event.Event{
		ID:          id,
		Title:       "Duck concert",
		Date:        time.Date(2026, time.September, 12, 19, 0, 0, 0, time.UTC),
		Price:       500,
		Status:      "actual",
		Description: "Lots of ducks",
		LocationID:  101,
	}
}

func (suite *EventRepositoryIntegrationTestSuite) TestSave_Insert_RoundTrips() {
	ctx := context.Background()
	e := testEvent(7)

	suite.Require().NoError(suite.eventRepository.Save(ctx, e))

	got, err := suite.eventRepository.Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(e.ID, got.ID)
	suite.Equal(e.Title, got.Title)
	suite.Equal(e.Price, got.Price)
	suite.Equal(e.Status, got.Status)
	suite.Equal(e.Description, got.Description)
	suite.Equal(e.LocationID, got.LocationID)
	suite.True(e.Date.Equal(got.Date))
}

func (suite *EventRepositoryIntegrationTestSuite) TestSave_SameID_Updates() {
	ctx := context.Background()
	suite.Require().NoError(suite.eventRepository.Save(ctx, testEvent(7)))

	changed := testEvent(7)
	changed.Title = "Duck concert, encore"
	changed.Price = 750
	suite.Require().NoError(suite.eventRepository.Save(ctx, changed))

	got, err := suite.eventRepository.Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal("Duck concert, encore", got.Title)
	suite.Equal(750, got.Price)
	suite.assertEventCount(1)
}

func (suite *EventRepositoryIntegrationTestSuite) TestGet_Absent_NotFound() {
	ctx := context.Background()

	_, err := suite.eventRepository.Get(ctx, 12345)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *EventRepositoryIntegrationTestSuite) TestFindAll_SortedByPrice() {
	ctx := context.Background()
	cheap := testEvent(1)
	cheap.Price = 100
	mid := testEvent(2)
	mid.Price = 300
	dear := testEvent(3)
	dear.Price = 900
	for _, e := range []event.Event{dear, cheap, mid} {
		suite.Require().NoError(suite.eventRepository.Save(ctx, e))
	}

	page, err := kernel.NewSortedPage(0, 10, "price", kernel.Desc)
	suite.Require().NoError(err)

	found, err := suite.eventRepository.FindAll(ctx, &page)
	suite.Require().NoError(err)
	suite.Require().Len(found, 3)
	suite.Equal(int64(3), found[0].ID)
	suite.Equal(int64(1), found[2].ID)
}

func (suite *EventRepositoryIntegrationTestSuite) TestFindAll_SortedByStatus() {
	ctx := context.Background()
	actual := testEvent(1)
	actual.Status = "actual"
	cancelled := testEvent(2)
	cancelled.Status = "cancelled"
	finished := testEvent(3)
	finished.Status = "finished"
	for _, e := range []event.Event{finished, actual, cancelled} {
		suite.Require().NoError(suite.eventRepository.Save(ctx, e))
	}

	page, err := kernel.NewSortedPage(0, 10, "status", kernel.Asc)
	suite.Require().NoError(err)

	found, err := suite.eventRepository.FindAll(ctx, &page)
	suite.Require().NoError(err)
	suite.Require().Len(found, 3)
	suite.Equal("actual", found[0].Status)
	suite.Equal("finished", found[2].Status)
}

func (suite *EventRepositoryIntegrationTestSuite) TestAssignCategory_NamesComeBackSorted() {
	ctx := context.Background()
	suite.Require().NoError(suite.eventRepository.Save(ctx, testEvent(7)))

	for _, title := range []string{"movie", "Art concert", "exhibition"} {
		suite.Require().NoError(suite.categoryRepository.Save(ctx, category.Category{Title: title}))
	}
	stored, err := suite.categoryRepository.FindAll(ctx, nil)
	suite.Require().NoError(err)
	for _, c := range stored {
		suite.Require().NoError(suite.eventRepository.AssignCategory(ctx, 7, c.ID))
	}

	names, err := suite.eventRepository.GetCategoryNames(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal([]string{"Art concert", "exhibition", "movie"}, names)
}

func (suite *EventRepositoryIntegrationTestSuite) TestRemoveCategory_DropsOneAssignment() {
	ctx := context.Background()
	suite.Require().NoError(suite.eventRepository.Save(ctx, testEvent(7)))
	suite.Require().NoError(suite.categoryRepository.Save(ctx, category.Category{Title: "exhibition"}))
	suite.Require().NoError(suite.categoryRepository.Save(ctx, category.Category{Title: "movie"}))

	stored, err := suite.categoryRepository.FindAll(ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)
	for _, c := range stored {
		suite.Require().NoError(suite.eventRepository.AssignCategory(ctx, 7, c.ID))
	}

	suite.Require().NoError(suite.eventRepository.RemoveCategory(ctx, 7, stored[0].ID))

	names, err := suite.eventRepository.GetCategoryNames(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(names, 1)
	suite.Equal(stored[1].Title, names[0])
}

func (suite *EventRepositoryIntegrationTestSuite) TestDelete_CascadesAssignments() {
	ctx := context.Background()
	suite.Require().NoError(suite.eventRepository.Save(ctx, testEvent(7)))
	suite.Require().NoError(suite.categoryRepository.Save(ctx, category.Category{Title: "exhibition"}))

	stored, err := suite.categoryRepository.FindAll(ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 1)
	suite.Require().NoError(suite.eventRepository.AssignCategory(ctx, 7, stored[0].ID))

	suite.Require().NoError(suite.eventRepository.Delete(ctx, 7))

	suite.assertEventCount(0)
	suite.assertAssignmentCount(0)
	// the category itself survives
	var categories int64
	suite.Require().NoError(suite.db.Model(&categoryrepo.CategoryDTO{}).Count(&categories).Error)
	suite.Equal(int64(1), categories)
}

func (suite *EventRepositoryIntegrationTestSuite) TestDelete_AbsentID_NoOp() {
	ctx := context.Background()
	suite.Require().NoError(suite.eventRepository.Save(ctx, testEvent(7)))

	suite.Require().NoError(suite.eventRepository.Delete(ctx, 12345))
	suite.assertEventCount(1)
}

func (suite *EventRepositoryIntegrationTestSuite) assertEventCount(expected int) {
	var count int64
	err := suite.db.Model(&eventrepo.EventDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *EventRepositoryIntegrationTestSuite) assertAssignmentCount(expected int) {
	var count int64
	err := suite.db.Model(&eventrepo.EventCategoryDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EventRepositoryIntegrationTestSuite))
}
