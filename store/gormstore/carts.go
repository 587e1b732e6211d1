package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/store"
)

// Carts implements store.CartStore.
type Carts struct {
	db *gorm.DB
}

func (s *Carts) FindByUserAndProduct(ctx context.Context, phoneNo int64, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", phoneNo, productID).
		First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *Carts) FindByUser(ctx context.Context, phoneNo int64) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", phoneNo).
		Find(&items).Error
	return items, err
}

func (s *Carts) Save(ctx context.Context, item *models.CartItem) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Carts) DeleteByID(ctx context.Context, cardID uint) error {
	return s.db.WithContext(ctx).Delete(&models.CartItem{}, "card_id = ?", cardID).Error
}

func (s *Carts) DeleteByProduct(ctx context.Context, productID uint) error {
	return s.db.WithContext(ctx).Delete(&models.CartItem{}, "product_id = ?", productID).Error
}

func (s *Carts) FindProductIDByCardID(ctx context.Context, cardID uint) (uint, error) {
	var productID uint
	tx := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Select("product_id").
		Where("card_id = ?", cardID).
		Scan(&productID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, store.ErrNotFound
	}
	return productID, nil
}

func (s *Carts) FindQuantityByCardAndProduct(ctx context.Context, cardID, productID uint) (int, error) {
	var quantity int
	tx := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Select("quantity").
		Where("card_id = ? AND product_id = ?", cardID, productID).
		Scan(&quantity)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, store.ErrNotFound
	}
	return quantity, nil
}
