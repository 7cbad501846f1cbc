// Package locationrepo persists locations with the legacy column names.
package locationrepo

import "ticketon/internal/core/domain/model/location"

// LocationDTO is the database representation of a location.
type LocationDTO struct {
	ID           int64  `gorm:"column:location_id;primaryKey"`
	Title        string `gorm:"column:name;type:varchar(255);not null"`
	WorkingHours string `gorm:"column:working_hours;type:varchar(255)"`
	Type         string `gorm:"column:type;type:varchar(255)"`
	Address      string `gorm:"column:address"`
	Description  string `gorm:"column:description"`
	Capacity     int    `gorm:"column:capacity_people"`
}

// TableName overrides GORM's default naming to use the legacy table name.
func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(l location.Location) LocationDTO {
	return LocationDTO{
		ID:           l.ID,
		Title:        l.Title,
		WorkingHours: l.WorkingHours,
		Type:         l.Type,
		Address:      l.Address,
		Description:  l.Description,
		Capacity:     l.Capacity,
	}
}

func toDomain(dto LocationDTO) location.Location {
	return location.Location{
		ID:           dto.ID,
		Title:        dto.Title,
		WorkingHours: dto.WorkingHours,
		Type:         dto.Type,
		Address:      dto.Address,
		Description:  dto.Description,
		Capacity:     dto.Capacity,
	}
}
