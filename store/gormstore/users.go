package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nivedika-2001/Furlenco-backend/models"
)

// Users implements store.UserStore.
type Users struct {
	db *gorm.DB
}

func (s *Users) ExistsByPhone(ctx context.Context, phoneNo int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("phone_no = ?", phoneNo).
		Count(&count).Error
	return count > 0, err
}

func (s *Users) FindByPhone(ctx context.Context, phoneNo int64) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "phone_no = ?", phoneNo).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Users) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}
