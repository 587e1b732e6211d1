// Package store declares the persistence interfaces the domain
// services depend on. The services never see a concrete storage
// technology; gormstore provides the relational implementation.
package store

import (
	"context"
	"errors"

	"github.com/Nivedika-2001/Furlenco-backend/models"
)

// ErrNotFound is returned by any lookup that matches no row.
var ErrNotFound = errors.New("record not found")

// ProductStore covers the catalog queries.
type ProductStore interface {
	FindByID(ctx context.Context, productID uint) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	// SearchByName is a case-insensitive substring match on the name.
	SearchByName(ctx context.Context, fragment string) ([]models.Product, error)
	FindByType(ctx context.Context, productType string) ([]models.Product, error)
	FindByTypeOrderedByName(ctx context.Context, productType string, descending bool) ([]models.Product, error)
	// FindByTypeOrderedByPrice orders by the raw price text; callers
	// re-sort numerically after parsing.
	FindByTypeOrderedByPrice(ctx context.Context, productType string, descending bool) ([]models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	// Save inserts when the primary key is zero, updates otherwise.
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, product *models.Product) error
	// FindPriceByID reads only the price text column.
	FindPriceByID(ctx context.Context, productID uint) (string, error)
}

// UserStore covers the user directory queries.
type UserStore interface {
	ExistsByPhone(ctx context.Context, phoneNo int64) (bool, error)
	FindByPhone(ctx context.Context, phoneNo int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// CartStore covers the cart rows plus the narrow scalar lookups the
// total-price computation re-resolves through.
type CartStore interface {
	FindByUserAndProduct(ctx context.Context, phoneNo int64, productID uint) (*models.CartItem, error)
	FindByUser(ctx context.Context, phoneNo int64) ([]models.CartItem, error)
	Save(ctx context.Context, item *models.CartItem) error
	DeleteByID(ctx context.Context, cardID uint) error
	DeleteByProduct(ctx context.Context, productID uint) error
	FindProductIDByCardID(ctx context.Context, cardID uint) (uint, error)
	FindQuantityByCardAndProduct(ctx context.Context, cardID, productID uint) (int, error)
}

// WishlistStore covers the wishlist rows.
type WishlistStore interface {
	FindByUserAndProduct(ctx context.Context, phoneNo int64, productID uint) (*models.WishlistItem, error)
	FindByUser(ctx context.Context, phoneNo int64) ([]models.WishlistItem, error)
	Save(ctx context.Context, item *models.WishlistItem) error
	DeleteByID(ctx context.Context, wishlistID uint) error
	DeleteByProduct(ctx context.Context, productID uint) error
	ProductIDsByUser(ctx context.Context, phoneNo int64) ([]uint, error)
	CountByUserAndProduct(ctx context.Context, phoneNo int64, productID uint) (int, error)
}
