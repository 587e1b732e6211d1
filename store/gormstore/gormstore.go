// Package gormstore implements the store interfaces on a GORM
// database handle.
package gormstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Nivedika-2001/Furlenco-backend/store"
)

// Store bundles the four per-component stores over one DB handle.
type Store struct {
	Products  *Products
	Users     *Users
	Carts     *Carts
	Wishlists *Wishlists
}

func New(db *gorm.DB) *Store {
	return &Store{
		Products:  &Products{db: db},
		Users:     &Users{db: db},
		Carts:     &Carts{db: db},
		Wishlists: &Wishlists{db: db},
	}
}

var (
	_ store.ProductStore  = (*Products)(nil)
	_ store.UserStore     = (*Users)(nil)
	_ store.CartStore     = (*Carts)(nil)
	_ store.WishlistStore = (*Wishlists)(nil)
)

// translate maps GORM's not-found sentinel onto the store sentinel so
// services stay free of gorm imports.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}
