// Package catalog owns the product inventory: search, save with
// merge-on-duplicate-name, update, sorted listings and cascading
// deletion.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/pricing"
	"github.com/Nivedika-2001/Furlenco-backend/store"
)

type Service struct {
	products  store.ProductStore
	carts     store.CartStore
	wishlists store.WishlistStore
}

func NewService(products store.ProductStore, carts store.CartStore, wishlists store.WishlistStore) *Service {
	return &Service{products: products, carts: carts, wishlists: wishlists}
}

// FetchByName returns products whose name contains the fragment,
// case-insensitively.
func (s *Service) FetchByName(ctx context.Context, fragment string) ([]models.Product, error) {
	slog.Info("fetching products by name", "name", fragment)
	products, err := s.products.SearchByName(ctx, fragment)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		slog.Warn("no products found with the given name", "name", fragment)
		return nil, apperr.Newf(apperr.ProductNotFound, "No products found with the given name: %s", fragment)
	}
	return products, nil
}

// FetchByCategory returns products whose type matches exactly.
func (s *Service) FetchByCategory(ctx context.Context, category string) ([]models.Product, error) {
	slog.Info("fetching products by category", "category", category)
	products, err := s.products.FindByType(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		slog.Warn("no products found in category", "category", category)
		return nil, apperr.Newf(apperr.ProductNotFound, "No products found in the category: %s", category)
	}
	return products, nil
}

// ListAll returns the unfiltered catalog.
func (s *Service) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

// Save inserts the candidate, unless a product of the same name already
// exists; then the existing row absorbs the candidate's stock and keeps
// its id instead of a duplicate being created.
func (s *Service) Save(ctx context.Context, candidate models.Product) (*models.Product, error) {
	slog.Info("saving product", "name", candidate.ProductName)
	existing, err := s.products.FindByName(ctx, candidate.ProductName)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		existing.AvailableStock += candidate.AvailableStock
		if err := s.products.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if err := s.products.Save(ctx, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Update overwrites all fields of the product found by name, keeping
// the existing id.
func (s *Service) Update(ctx context.Context, candidate models.Product) (*models.Product, error) {
	slog.Info("updating product", "name", candidate.ProductName)
	existing, err := s.products.FindByName(ctx, candidate.ProductName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Newf(apperr.ProductNotFound, "Product not found with the name: %s", candidate.ProductName)
		}
		return nil, err
	}
	candidate.ProductID = existing.ProductID
	if err := s.products.Save(ctx, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Delete removes the product and every cart and wishlist row that
// references it. Each removal is its own unit of work; a failure
// midway wraps into DeletionFailure and leaves whatever already
// happened in place.
func (s *Service) Delete(ctx context.Context, productID uint) error {
	slog.Info("deleting product", "productID", productID)
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.Newf(apperr.ProductNotFound, "Product not found with ID: %d", productID)
		}
		return err
	}
	msg := fmt.Sprintf("Error occurred while deleting the product with ID: %d", productID)
	if err := s.carts.DeleteByProduct(ctx, productID); err != nil {
		return apperr.Wrap(apperr.DeletionFailure, msg, err)
	}
	if err := s.wishlists.DeleteByProduct(ctx, productID); err != nil {
		return apperr.Wrap(apperr.DeletionFailure, msg, err)
	}
	if err := s.products.Delete(ctx, product); err != nil {
		return apperr.Wrap(apperr.DeletionFailure, msg, err)
	}
	return nil
}

// SortByName lists the category ordered lexicographically by name.
func (s *Service) SortByName(ctx context.Context, category string, ascending bool) ([]models.Product, error) {
	slog.Info("filtering products by name", "category", category, "ascending", ascending)
	products, err := s.products.FindByTypeOrderedByName(ctx, category, !ascending)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperr.Newf(apperr.ProductNotFound, "No products found for the type: %s", category)
	}
	return products, nil
}

// SortByPrice lists the category ordered by the numeric value of the
// price text. The ascending pass is a stable sort; descending is its
// exact reverse, so equal prices keep their relative order either way.
func (s *Service) SortByPrice(ctx context.Context, category string, ascending bool) ([]models.Product, error) {
	slog.Info("filtering products by price", "category", category, "ascending", ascending)
	products, err := s.products.FindByTypeOrderedByPrice(ctx, category, !ascending)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperr.Newf(apperr.ProductNotFound, "No products found for the type: %s", category)
	}
	sort.SliceStable(products, func(i, j int) bool {
		pi, erri := pricing.Parse(products[i].ProductPrice)
		pj, errj := pricing.Parse(products[j].ProductPrice)
		if erri != nil || errj != nil {
			return false
		}
		return pi < pj
	})
	if !ascending {
		reverse(products)
	}
	return products, nil
}

func reverse(products []models.Product) {
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
}
