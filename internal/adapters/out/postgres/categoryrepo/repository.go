package categoryrepo

import (
	"context"
	"errors"

	"ticketon/internal/adapters/out/postgres/listquery"
	"ticketon/internal/core/domain/model/category"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/pkg/errs"

	"gorm.io/gorm"
)

var listSpec = listquery.Spec{
	Base:          "SELECT category_id, name FROM categories",
	DefaultColumn: "name",
	Sortable: map[string]string{
		"id":    "category_id",
		"title": "name",
	},
}

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Get retrieves a category by identifier.
func (r *GormCategoryRepository) Get(ctx context.Context, id int64) (category.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return category.Category{}, errs.NewObjectNotFoundError("category", id)
		}
		return category.Category{}, errs.NewStoreFailureError("getById", err)
	}

	return toDomain(dto), nil
}

// GetByName retrieves categories whose title contains name, ignoring case.
func (r *GormCategoryRepository) GetByName(ctx context.Context, name string) ([]category.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreFailureError("getByName", err)
	}

	categories := make([]category.Category, 0, len(dtos))
	for _, dto := range dtos {
		categories = append(categories, toDomain(dto))
	}
	return categories, nil
}

// FindAll retrieves categories sliced and ordered by the page descriptor.
func (r *GormCategoryRepository) FindAll(ctx context.Context, page *kernel.Page) ([]category.Category, error) {
	query, err := listSpec.Build(page)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, errs.NewStoreFailureError("findAll", err)
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		var dto CategoryDTO
		if err := rows.Scan(&dto.ID, &dto.Title); err != nil {
			return nil, errs.NewStoreFailureError("findAll", err)
		}
		categories = append(categories, toDomain(dto))
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewStoreFailureError("findAll", err)
	}

	return categories, nil
}

// Save upserts the category by identifier. The duplicate-title rule applies
// to the insert path only: an update may keep its own title. Callers run
// Save inside a unit-of-work transaction so the exists-check and the write
// cannot interleave with a concurrent Save for the same identifier.
func (r *GormCategoryRepository) Save(ctx context.Context, c category.Category) error {
	_, err := r.Get(ctx, c.ID)
	switch {
	case err == nil:
		return r.update(ctx, c)
	case errors.Is(err, errs.ErrObjectNotFound):
		return r.insert(ctx, c)
	default:
		return err
	}
}

func (r *GormCategoryRepository) insert(ctx context.Context, c category.Category) error {
	taken, err := r.titleTaken(ctx, c.Title)
	if err != nil {
		return err
	}
	if taken {
		return errs.NewValueAlreadyExistsError("title", c.Title)
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreFailureError("saveCategory", err)
	}
	return nil
}

func (r *GormCategoryRepository) update(ctx context.Context, c category.Category) error {
	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).
		Model(&CategoryDTO{}).
		Where("category_id = ?", dto.ID).
		Update("name", dto.Title).Error; err != nil {
		return errs.NewStoreFailureError("updateCategory", err)
	}
	return nil
}

// titleTaken reports whether another category already carries this exact
// title. The check is an exact match; the earlier data layer ran it as a
// substring LIKE, which also rejected titles merely contained in an
// existing one.
func (r *GormCategoryRepository) titleTaken(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&CategoryDTO{}).
		Where("name = ?", title).
		Count(&count).Error; err != nil {
		return false, errs.NewStoreFailureError("saveCategory", err)
	}
	return count > 0, nil
}

// Delete removes the category by identifier. Deleting an absent identifier
// is a no-op success.
func (r *GormCategoryRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "category_id = ?", id).Error; err != nil {
		return errs.NewStoreFailureError("delete", err)
	}
	return nil
}
