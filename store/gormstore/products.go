package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/store"
)

// Products implements store.ProductStore.
type Products struct {
	db *gorm.DB
}

func (s *Products) FindByID(ctx context.Context, productID uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "product_id = ?", productID).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *Products) FindByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "product_name = ?", name).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// SearchByName lowercases both sides so the match is case-insensitive
// on Postgres and SQLite alike.
func (s *Products) SearchByName(ctx context.Context, fragment string) ([]models.Product, error) {
	var products []models.Product
	likePattern := "%" + fragment + "%"
	err := s.db.WithContext(ctx).
		Where("LOWER(product_name) LIKE LOWER(?)", likePattern).
		Find(&products).Error
	return products, err
}

func (s *Products) FindByType(ctx context.Context, productType string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Where("product_type = ?", productType).Find(&products).Error
	return products, err
}

func (s *Products) FindByTypeOrderedByName(ctx context.Context, productType string, descending bool) ([]models.Product, error) {
	order := "product_name"
	if descending {
		order = "product_name DESC"
	}
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("product_type = ?", productType).
		Order(order).
		Find(&products).Error
	return products, err
}

func (s *Products) FindByTypeOrderedByPrice(ctx context.Context, productType string, descending bool) ([]models.Product, error) {
	order := "product_price"
	if descending {
		order = "product_price DESC"
	}
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("product_type = ?", productType).
		Order(order).
		Find(&products).Error
	return products, err
}

func (s *Products) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (s *Products) Save(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

func (s *Products) Delete(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Delete(product).Error
}

func (s *Products) FindPriceByID(ctx context.Context, productID uint) (string, error) {
	var price string
	tx := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("product_price").
		Where("product_id = ?", productID).
		Scan(&price)
	if tx.Error != nil {
		return "", tx.Error
	}
	if tx.RowsAffected == 0 {
		return "", store.ErrNotFound
	}
	return price, nil
}
