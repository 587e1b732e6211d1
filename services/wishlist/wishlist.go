// Package wishlist owns the per-(user, product) saved-interest records.
package wishlist

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/store"
)

type Service struct {
	wishlists store.WishlistStore
	products  store.ProductStore
	users     store.UserStore
}

func NewService(wishlists store.WishlistStore, products store.ProductStore, users store.UserStore) *Service {
	return &Service{wishlists: wishlists, products: products, users: users}
}

// Add creates the (user, product) link if absent. If a link is found,
// the user's wishlisted product ids are re-scanned and the link is
// re-saved when the id is missing from the scan; under consistent data
// that re-save is a no-op update by primary key, so the branch acts as
// a consistency repair rather than a second insert.
func (s *Service) Add(ctx context.Context, phoneNo int64, productID uint) (*models.WishlistItem, error) {
	slog.Info("adding item to wishlist", "phoneNo", phoneNo, "productID", productID)
	product, err := s.requireProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, phoneNo); err != nil {
		return nil, err
	}

	item, err := s.wishlists.FindByUserAndProduct(ctx, phoneNo, productID)
	if errors.Is(err, store.ErrNotFound) {
		item = &models.WishlistItem{
			UserID:    phoneNo,
			ProductID: product.ProductID,
		}
		if err := s.wishlists.Save(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	}
	if err != nil {
		return nil, err
	}

	listed, err := s.wishlists.ProductIDsByUser(ctx, phoneNo)
	if err != nil {
		return nil, err
	}
	missing := true
	for _, id := range listed {
		if id == productID {
			missing = false
			break
		}
	}
	if missing {
		if err := s.wishlists.Save(ctx, item); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// List returns the user's wishlist; an empty list is not an error.
func (s *Service) List(ctx context.Context, phoneNo int64) ([]models.WishlistItem, error) {
	slog.Info("listing wishlist", "phoneNo", phoneNo)
	if err := s.requireUser(ctx, phoneNo); err != nil {
		return nil, err
	}
	items, err := s.wishlists.FindByUser(ctx, phoneNo)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItem removes the (user, product) link. A missing link fails
// with a typed not-found error rather than touching the store with an
// absent identity.
func (s *Service) DeleteItem(ctx context.Context, phoneNo int64, productID uint) error {
	slog.Info("deleting item from wishlist", "phoneNo", phoneNo, "productID", productID)
	if _, err := s.requireProduct(ctx, productID); err != nil {
		return err
	}
	if err := s.requireUser(ctx, phoneNo); err != nil {
		return err
	}
	item, err := s.wishlists.FindByUserAndProduct(ctx, phoneNo, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.Warn("no such item in wishlist", "phoneNo", phoneNo, "productID", productID)
			return apperr.New(apperr.WishlistItemNotFound, "No Such Item In Wishlist Exists")
		}
		return err
	}
	return s.wishlists.DeleteByID(ctx, item.WishlistID)
}

// Count reports a 0/1 existence count for the pair, failing when it is
// zero. The phone number is not checked against the user directory
// here; an unknown user reads as product-not-found-for-user, which is
// the established contract of this endpoint.
func (s *Service) Count(ctx context.Context, phoneNo int64, productID uint) (int, error) {
	slog.Info("checking wishlist for product", "phoneNo", phoneNo, "productID", productID)
	count, err := s.wishlists.CountByUserAndProduct(ctx, phoneNo, productID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, apperr.Newf(apperr.ProductNotFound,
			"Product with ID %d not found for user with phone number %d", productID, phoneNo)
	}
	return count, nil
}

func (s *Service) requireProduct(ctx context.Context, productID uint) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Newf(apperr.ProductNotFound, "Product with ID %d not found", productID)
		}
		return nil, err
	}
	return product, nil
}

func (s *Service) requireUser(ctx context.Context, phoneNo int64) error {
	exists, err := s.users.ExistsByPhone(ctx, phoneNo)
	if err != nil {
		return err
	}
	if !exists {
		slog.Error("user not found", "phoneNo", phoneNo)
		return apperr.Newf(apperr.UserNotFound, "User with phone number %d not found", phoneNo)
	}
	return nil
}
