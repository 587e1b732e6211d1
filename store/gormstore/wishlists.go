package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nivedika-2001/Furlenco-backend/models"
)

// Wishlists implements store.WishlistStore.
type Wishlists struct {
	db *gorm.DB
}

func (s *Wishlists) FindByUserAndProduct(ctx context.Context, phoneNo int64, productID uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", phoneNo, productID).
		First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *Wishlists) FindByUser(ctx context.Context, phoneNo int64) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", phoneNo).
		Find(&items).Error
	return items, err
}

func (s *Wishlists) Save(ctx context.Context, item *models.WishlistItem) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Wishlists) DeleteByID(ctx context.Context, wishlistID uint) error {
	return s.db.WithContext(ctx).Delete(&models.WishlistItem{}, "wishlist_id = ?", wishlistID).Error
}

func (s *Wishlists) DeleteByProduct(ctx context.Context, productID uint) error {
	return s.db.WithContext(ctx).Delete(&models.WishlistItem{}, "product_id = ?", productID).Error
}

func (s *Wishlists) ProductIDsByUser(ctx context.Context, phoneNo int64) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ?", phoneNo).
		Pluck("product_id", &ids).Error
	return ids, err
}

// CountByUserAndProduct reports presence as 0/1, matching the legacy
// existence query, not a row count.
func (s *Wishlists) CountByUserAndProduct(ctx context.Context, phoneNo int64, productID uint) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", phoneNo, productID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 1, nil
	}
	return 0, nil
}
