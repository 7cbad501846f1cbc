// Package userrepo persists users and their event subscriptions with the
// legacy column names.
package userrepo

import "ticketon/internal/core/domain/model/user"

// UserDTO is the database representation of a user. The password column
// holds a bcrypt hash.
type UserDTO struct {
	ID       int64  `gorm:"column:user_id;primaryKey"`
	Name     string `gorm:"column:name;type:varchar(255);not null"`
	Surname  string `gorm:"column:surname;type:varchar(255)"`
	Email    string `gorm:"column:email;type:varchar(255)"`
	Login    string `gorm:"column:login;type:varchar(255);not null"`
	Password string `gorm:"column:password;type:varchar(255)"`
	Type     string `gorm:"column:type;type:varchar(255)"`
}

// TableName overrides GORM's default naming to use the legacy table name.
func (UserDTO) TableName() string {
	return "users"
}

// SubscriptionDTO is one event_subscriptions join row. The pair of foreign
// keys is the whole identity.
type SubscriptionDTO struct {
	UserID  int64 `gorm:"column:user_id;primaryKey"`
	EventID int64 `gorm:"column:event_id;primaryKey"`
}

// TableName overrides GORM's default naming to use the legacy table name.
func (SubscriptionDTO) TableName() string {
	return "event_subscriptions"
}

func fromDomain(u user.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Name:     u.Name,
		Surname:  u.Surname,
		Email:    u.Email,
		Login:    u.Login,
		Password: u.Password,
		Type:     u.Type,
	}
}

func toDomain(dto UserDTO) user.User {
	return user.User{
		ID:       dto.ID,
		Name:     dto.Name,
		Surname:  dto.Surname,
		Email:    dto.Email,
		Login:    dto.Login,
		Password: dto.Password,
		Type:     dto.Type,
	}
}
