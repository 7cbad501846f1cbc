// Package user contains the User entity. Users subscribe to events through
// the event_subscriptions join relation.
package user

import "ticketon/internal/pkg/errs"

// Validation errors for User.
var (
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrLoginIsRequired = errs.NewValueIsRequiredError("login")
)

// User is an account holder. Password always carries a bcrypt hash once the
// user has passed through UserService.Save; the raw password never reaches
// the store.
type User struct {
	ID       int64
	Name     string
	Surname  string
	Email    string
	Login    string
	Password string
	Type     string
}

// New creates a validated user.
func New(id int64, name, surname, email, login, password, userType string) (User, error) {
	u := User{
		ID:       id,
		Name:     name,
		Surname:  surname,
		Email:    email,
		Login:    login,
		Password: password,
		Type:     userType,
	}
	if err := u.Validate(); err != nil {
		return User{}, err
	}
	return u, nil
}

// Validate checks the form-level rules.
func (u User) Validate() error {
	if u.Name == "" {
		return ErrNameIsRequired
	}
	if u.Login == "" {
		return ErrLoginIsRequired
	}
	return nil
}
