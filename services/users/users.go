// Package users is the user directory: registration and lookups keyed
// by phone number.
package users

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/store"
)

type Service struct {
	users store.UserStore
}

func NewService(users store.UserStore) *Service {
	return &Service{users: users}
}

// Register inserts a new user. The requested role is ignored: every
// registration is stored with role USER. A phone number already on
// record rejects the call with DuplicateRecord.
func (s *Service) Register(ctx context.Context, user models.User) (*models.User, error) {
	slog.Info("saving user record", "phoneNo", user.PhoneNo)
	exists, err := s.users.ExistsByPhone(ctx, user.PhoneNo)
	if err != nil {
		return nil, err
	}
	if exists {
		slog.Warn("user already exists", "phoneNo", user.PhoneNo)
		return nil, apperr.Newf(apperr.DuplicateRecord, "User with phone number %d already exists", user.PhoneNo)
	}
	user.Role = models.RoleUser
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists reports whether the phone number maps to a registered user.
// It has no failure path beyond storage errors.
func (s *Service) Exists(ctx context.Context, phoneNo int64) (bool, error) {
	return s.users.ExistsByPhone(ctx, phoneNo)
}

// NameOf returns the display name for the phone number.
func (s *Service) NameOf(ctx context.Context, phoneNo int64) (string, error) {
	user, err := s.users.FindByPhone(ctx, phoneNo)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", apperr.New(apperr.UserNotFound, "User not found")
		}
		return "", err
	}
	return user.UserName, nil
}

// RoleOf returns the stored role. A user row with an unset role fails
// with RoleNotFound.
func (s *Service) RoleOf(ctx context.Context, phoneNo int64) (models.Role, error) {
	user, err := s.users.FindByPhone(ctx, phoneNo)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", apperr.New(apperr.UserNotFound, "User not found")
		}
		return "", err
	}
	if user.Role == "" {
		slog.Error("role not found for user", "phoneNo", phoneNo)
		return "", apperr.Newf(apperr.RoleNotFound, "Role not found for user with phone number: %d", phoneNo)
	}
	return user.Role, nil
}
