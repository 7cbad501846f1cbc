package services

import (
	"context"
	"errors"

	"ticketon/internal/core/domain/model/event"
	"ticketon/internal/core/domain/model/kernel"
	"ticketon/internal/core/domain/model/user"
	"ticketon/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned by Authenticate when the login is unknown
// or the password does not match. The two cases are indistinguishable on
// purpose.
var ErrBadCredentials = errs.NewValueIsInvalidError("login or password")

// UserService exposes user reads and writes, event subscriptions and
// authentication. Save treats the Password field as a plaintext credential
// and stores only its bcrypt hash.
type UserService struct {
	uowFactory UserUoWFactory
}

// NewUserService creates a user service.
func NewUserService(uowFactory UserUoWFactory) UserService {
	return UserService{uowFactory: uowFactory}
}

// GetByID retrieves a user by identifier.
func (s UserService) GetByID(ctx context.Context, id int64) (user.User, error) {
	if err := validateID(id); err != nil {
		return user.User{}, err
	}

	return s.uowFactory.Create().UserRepository().Get(ctx, id)
}

// FindAll retrieves users sliced and ordered by the page descriptor.
func (s UserService) FindAll(ctx context.Context, page *kernel.Page) ([]user.User, error) {
	return s.uowFactory.Create().UserRepository().FindAll(ctx, page)
}

// Save upserts the user by identifier. A non-empty Password is hashed
// before it reaches the store; the raw credential is never persisted. An
// empty Password travels to the store as-is, where the update keeps the
// stored hash untouched.
func (s UserService) Save(ctx context.Context, u user.User) error {
	if err := validateID(u.ID); err != nil {
		return err
	}

	if u.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("password", err)
		}
		u.Password = string(hash)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Save(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// Delete removes the user and its event subscriptions in one transaction.
func (s UserService) Delete(ctx context.Context, id int64) error {
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

	if err := uow.UserRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// GetAllEventsByUserID retrieves the events the user is subscribed to,
// sliced by the page descriptor.
func (s UserService) GetAllEventsByUserID(ctx context.Context, userID int64, page *kernel.Page) ([]event.Event, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}

	return s.uowFactory.Create().UserRepository().GetEvents(ctx, userID, page)
}

// AssignEvent subscribes the user to an event.
func (s UserService) AssignEvent(ctx context.Context, userID, eventID int64) error {
	if err := validateID(userID); err != nil {
		return err
	}
	if err := validateID(eventID); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().AssignEvent(ctx, userID, eventID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RemoveEvent unsubscribes the user from an event.
func (s UserService) RemoveEvent(ctx context.Context, userID, eventID int64) error {
	if err := validateID(userID); err != nil {
		return err
	}
	if err := validateID(eventID); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().RemoveEvent(ctx, userID, eventID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// Authenticate verifies a login/password pair and returns the matching
// user. Unknown logins and wrong passwords both fail with
// ErrBadCredentials.
func (s UserService) Authenticate(ctx context.Context, login, password string) (user.User, error) {
	if login == "" || password == "" {
		return user.User{}, ErrBadCredentials
	}

	u, err := s.uowFactory.Create().UserRepository().GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return user.User{}, ErrBadCredentials
		}
		return user.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return user.User{}, ErrBadCredentials
	}

	return u, nil
}
