// Package cart owns the per-(user, product) quantity records.
package cart

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/pricing"
	"github.com/Nivedika-2001/Furlenco-backend/store"
)

type Service struct {
	carts    store.CartStore
	products store.ProductStore
	users    store.UserStore
}

func NewService(carts store.CartStore, products store.ProductStore, users store.UserStore) *Service {
	return &Service{carts: carts, products: products, users: users}
}

// Add upserts the quantity for the (user, product) pair. An existing
// row has its quantity overwritten, not incremented. Returns the input
// quantity as confirmation. The product check runs before the user
// check.
func (s *Service) Add(ctx context.Context, phoneNo int64, productID uint, quantity int) (int, error) {
	slog.Info("adding product to cart", "phoneNo", phoneNo, "productID", productID, "quantity", quantity)
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, apperr.New(apperr.ProductNotFound, "No Such Product Exists")
		}
		return 0, err
	}
	if err := s.requireUser(ctx, phoneNo); err != nil {
		return 0, err
	}

	item, err := s.carts.FindByUserAndProduct(ctx, phoneNo, productID)
	switch {
	case err == nil:
		item.Quantity = quantity
	case errors.Is(err, store.ErrNotFound):
		item = &models.CartItem{
			UserID:    phoneNo,
			ProductID: product.ProductID,
			Quantity:  quantity,
		}
	default:
		return 0, err
	}
	if err := s.carts.Save(ctx, item); err != nil {
		return 0, err
	}
	return quantity, nil
}

// List returns the user's cart rows. An empty cart is an error, not an
// empty list.
func (s *Service) List(ctx context.Context, phoneNo int64) ([]models.CartItem, error) {
	slog.Info("listing items in cart", "phoneNo", phoneNo)
	if err := s.requireUser(ctx, phoneNo); err != nil {
		return nil, err
	}
	items, err := s.carts.FindByUser(ctx, phoneNo)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		slog.Warn("no items in cart", "phoneNo", phoneNo)
		return nil, apperr.New(apperr.CartItemNotFound, "No Such Item In Cart Exists")
	}
	return items, nil
}

// TotalPrice sums quantity * parsed price over the user's cart. Each
// line re-resolves the product id, price text and quantity through the
// narrow store queries rather than trusting the row already in hand,
// so the total always reflects current catalog prices.
func (s *Service) TotalPrice(ctx context.Context, phoneNo int64) (float64, error) {
	slog.Info("calculating total price of cart", "phoneNo", phoneNo)
	if err := s.requireUser(ctx, phoneNo); err != nil {
		return 0, err
	}
	items, err := s.carts.FindByUser(ctx, phoneNo)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, apperr.New(apperr.CartItemNotFound, "No Such Item In Cart Exists")
	}

	var total float64
	for _, item := range items {
		productID, err := s.carts.FindProductIDByCardID(ctx, item.CardID)
		if err != nil {
			return 0, apperr.New(apperr.ProductNotFound, "No Such Product Exists")
		}
		priceText, err := s.products.FindPriceByID(ctx, productID)
		if err != nil {
			return 0, apperr.New(apperr.ProductNotFound, "No Such Product Exists")
		}
		quantity, err := s.carts.FindQuantityByCardAndProduct(ctx, item.CardID, productID)
		if err != nil {
			return 0, err
		}
		price, err := pricing.Parse(priceText)
		if err != nil {
			return 0, apperr.New(apperr.ProductNotFound, "No Such Product Exists")
		}
		total += float64(quantity) * price
	}
	return total, nil
}

// DeleteItem removes the single (user, product) cart row. A missing
// row is the cart-empty error, matching the other cart reads.
func (s *Service) DeleteItem(ctx context.Context, phoneNo int64, productID uint) error {
	slog.Info("deleting item from cart", "phoneNo", phoneNo, "productID", productID)
	if err := s.requireUser(ctx, phoneNo); err != nil {
		return err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.New(apperr.ProductNotFound, "No Such Product Exists")
		}
		return err
	}
	item, err := s.carts.FindByUserAndProduct(ctx, phoneNo, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.Warn("no such item in cart", "phoneNo", phoneNo, "productID", productID)
			return apperr.New(apperr.CartItemNotFound, "No Such Item In Cart Exists")
		}
		return err
	}
	return s.carts.DeleteByID(ctx, item.CardID)
}

// Quantity returns the stored quantity for the pair. An unknown
// product id yields 0 with no error; other cart operations raise
// product-not-found for the same condition, and that asymmetry is
// kept deliberately.
func (s *Service) Quantity(ctx context.Context, phoneNo int64, productID uint) (int, error) {
	slog.Info("getting quantity of product in cart", "phoneNo", phoneNo, "productID", productID)
	if err := s.requireUser(ctx, phoneNo); err != nil {
		return 0, err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	item, err := s.carts.FindByUserAndProduct(ctx, phoneNo, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, apperr.New(apperr.CartItemNotFound, "No Such Item In Cart Exists")
		}
		return 0, err
	}
	return item.Quantity, nil
}

func (s *Service) requireUser(ctx context.Context, phoneNo int64) error {
	exists, err := s.users.ExistsByPhone(ctx, phoneNo)
	if err != nil {
		return err
	}
	if !exists {
		slog.Error("user not found", "phoneNo", phoneNo)
		return apperr.New(apperr.UserNotFound, "No Such User Exists")
	}
	return nil
}
