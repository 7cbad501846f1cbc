// Package categoryrepo persists categories. The DTO carries the exact
// legacy column names so the repository stays compatible with the existing
// schema.
package categoryrepo

import "ticketon/internal/core/domain/model/category"

// CategoryDTO is the database representation of a category.
type CategoryDTO struct {
	ID    int64  `gorm:"column:category_id;primaryKey"`
	Title string `gorm:"column:name;type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use the legacy table name.
func (CategoryDTO) TableName() string {
	return "categories"
}

func fromDomain(c category.Category) CategoryDTO {
	return CategoryDTO{
		ID:    c.ID,
		Title: c.Title,
	}
}

func toDomain(dto CategoryDTO) category.Category {
	return category.Category{
		ID:    dto.ID,
		Title: dto.Title,
	}
}
