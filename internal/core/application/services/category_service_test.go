package services_test

import (
	"errors"
	"testing"

	"ticketon/internal/core/application/services"
	"ticketon/internal/core/domain/model/category"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_GetByID_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	want := category.Category{ID: 3, Title: "Art concert"}

	mockRepo := new(MockCategoryRepository)
	mockUoW := new(MockUoW)
	mock.InOrder(
		mockUoW.On("CategoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, int64(3)).Return(want, nil).Once(),
	)

	service := services.NewCategoryService(categoryUoWFactoryFunc(func() services.CategoryUoW {
		return mockUoW
	}))

	// Act
	got, err := service.GetByID(ctx, 3)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, want, got)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_GetByID_InvalidID(t *testing.T) {
	// Arrange
	ctx := t.Context()
	mockUoW := new(MockUoW)
	service := services.NewCategoryService(categoryUoWFactoryFunc(func() services.CategoryUoW {
		return mockUoW
	}))

	for _, id := range []int64{0, -1, -42} {
		// Act
		_, err := service.GetByID(ctx, id)

		// Assert
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "id can not be less or equals zero: value is invalid", err.Error())
	}
	mockUoW.AssertExpectations(t) // the store is never touched
}

func TestCategoryService_GetByID_NotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	notFound := errs.NewObjectNotFoundError("category_id", int64(99))

	mockRepo := new(MockCategoryRepository)
	mockUoW := new(MockUoW)
	mock.InOrder(
		mockUoW.On("CategoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, int64(99)).Return(category.Category{}, notFound).Once(),
	)

	service := services.NewCategoryService(categoryUoWFactoryFunc(func() services.CategoryUoW {
		return mockUoW
	}))

	// Act
	_, err := service.GetByID(ctx, 99)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_GetByName(t *testing.T) {
	// Arrange
	ctx := t.Context()
	want := []category.Category{{ID: 1, Title: "exhibition"}}

	mockRepo := new(MockCategoryRepository)
	mockUoW := new(MockUoW)
	mock.InOrder(
		mockUoW.On("CategoryRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByName", ctx, "hibi").Return(want, nil).Once(),
	)

	service := services.NewCategoryService(categoryUoWFactoryFunc(func() services.CategoryUoW {
		return mockUoW
	}))

	// Act
	got, err := service.GetByName(ctx, "hibi")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, want, got)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_FindAll_PassesPageThrough(t *testing.T) {
	// Arrange
	ctx := t.Context()
	page, err := kernel.NewSortedPage(0, 2, "title", kernel.Asc)
	require.NoError(t, err)
	want := []category.Category{{ID: 3, Title: "Art concert"}, {ID: 1, Title: "exhibition"}}

	mockRepo := new(MockCategoryRepository)
	mockUoW := new(MockUoW)
	mock.InOrder(
		mockUoW.On("CategoryRepository").Return(mockRepo).Once(),
		mockRepo.On("FindAll", ctx, &page).Return(want, nil).Once(),
	)

	service := services.NewCategoryService(categoryUoWFactoryFunc(func() services.CategoryUoW {
		return mockUoW
	}))

	// Act
	got, err := service.FindAll(ctx, &page)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, want, got)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Save_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	c := category.Category{Title: "exhibition"} // zero id: the store assigns one

	mockRepo := new(MockCategoryRepository)
	mockUoW := new(MockUoW)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CategoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Save", ctx, c).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	service := services.NewCategoryService(categoryUoWFactoryFunc(func() services.CategoryUoW {
		return mockUoW
	}))

	// Act
	err := service.Save(ctx, c)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Save_DuplicateTitle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	c := category.Category{Title: "exhibition"}
	duplicate := errs.NewValueAlreadyExistsError("name", "exhibition")

	mockRepo := new(MockCategoryRepository)
	mockUoW := new(MockUoW)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CategoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Save", ctx, c).Return(duplicate).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	service := services.NewCategoryService(categoryUoWFactoryFunc(func() services.CategoryUoW {
		return mockUoW
	}))

	// Act
	err := service.Save(ctx, c)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueAlreadyExists)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Save_BeginError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	expectedError := errors.New("begin transaction failed")

	mockUoW := new(MockUoW)
	mockUoW.On("Begin", ctx).Return(expectedError).Once()

	service := services.NewCategoryService(categoryUoWFactoryFunc(func() services.CategoryUoW {
		return mockUoW
	}))

	// Act
	err := service.Save(ctx, category.Category{Title: "Theatre"})

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
}

func TestCategoryService_Delete_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()

	mockRepo := new(MockCategoryRepository)
	mockUoW := new(MockUoW)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CategoryRepository").Return(mockRepo).Once(),
		mockRepo.On("Delete", ctx, int64(4)).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	service := services.NewCategoryService(categoryUoWFactoryFunc(func() services.CategoryUoW {
		return mockUoW
	}))

	// Act
	err := service.Delete(ctx, 4)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Delete_InvalidID(t *testing.T) {
	// Arrange
	ctx := t.Context()
	mockUoW := new(MockUoW)
	service := services.NewCategoryService(categoryUoWFactoryFunc(func() services.CategoryUoW {
		return mockUoW
	}))

	// Act
	err := service.Delete(ctx, 0)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	mockUoW.AssertExpectations(t)
}
