package users

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/store/gormstore"
)

func newTestService(t *testing.T) (*Service, *gormstore.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	st := gormstore.New(db)
	return NewService(st.Users), st
}

func TestRegisterForcesUserRole(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.Register(context.Background(), models.User{
		PhoneNo:   9999999999,
		UserName:  "Nivi",
		UserEmail: "nivi@example.com",
		Role:      models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if saved.Role != models.RoleUser {
		t.Errorf("role = %q, want %q", saved.Role, models.RoleUser)
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user := models.User{PhoneNo: 9999999999, UserName: "Nivi", UserEmail: "nivi@example.com"}
	if _, err := svc.Register(ctx, user); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	_, err := svc.Register(ctx, user)
	if apperr.KindOf(err) != apperr.DuplicateRecord {
		t.Fatalf("second Register error = %v, want DuplicateRecord", err)
	}
}

func TestExists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	exists, err := svc.Exists(ctx, 9999999999)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("Exists = true before registration")
	}

	if _, err := svc.Register(ctx, models.User{PhoneNo: 9999999999, UserName: "Nivi", UserEmail: "n@e.com"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	exists, err = svc.Exists(ctx, 9999999999)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("Exists = false after registration")
	}
}

func TestNameOf(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, models.User{PhoneNo: 1234567890, UserName: "Asha", UserEmail: "a@e.com"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	name, err := svc.NameOf(ctx, 1234567890)
	if err != nil {
		t.Fatalf("NameOf failed: %v", err)
	}
	if name != "Asha" {
		t.Errorf("NameOf = %q, want Asha", name)
	}

	_, err = svc.NameOf(ctx, 1111111111)
	if apperr.KindOf(err) != apperr.UserNotFound {
		t.Errorf("NameOf unknown user error = %v, want UserNotFound", err)
	}
}

func TestRoleOf(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, models.User{PhoneNo: 1234567890, UserName: "Asha", UserEmail: "a@e.com"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	role, err := svc.RoleOf(ctx, 1234567890)
	if err != nil {
		t.Fatalf("RoleOf failed: %v", err)
	}
	if role != models.RoleUser {
		t.Errorf("RoleOf = %q, want USER", role)
	}

	_, err = svc.RoleOf(ctx, 1111111111)
	if apperr.KindOf(err) != apperr.UserNotFound {
		t.Errorf("RoleOf unknown user error = %v, want UserNotFound", err)
	}

	// Row with an unset role reaches the store without going through
	// Register.
	if err := st.Users.Create(ctx, &models.User{PhoneNo: 2222222222, UserName: "NoRole", UserEmail: "x@e.com"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err = svc.RoleOf(ctx, 2222222222)
	if apperr.KindOf(err) != apperr.RoleNotFound {
		t.Errorf("RoleOf unset role error = %v, want RoleNotFound", err)
	}

	var target *apperr.Error
	if !errors.As(err, &target) {
		t.Error("RoleOf error is not an *apperr.Error")
	}
}
