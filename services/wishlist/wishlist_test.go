package wishlist

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/store/gormstore"
)

const phone = int64(9999999999)

func newTestService(t *testing.T) (*Service, *gormstore.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}, &models.WishlistItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	st := gormstore.New(db)
	return NewService(st.Wishlists, st.Products, st.Users), st
}

func seed(t *testing.T, st *gormstore.Store) *models.Product {
	t.Helper()
	ctx := context.Background()
	if err := st.Users.Create(ctx, &models.User{PhoneNo: phone, UserName: "Nivi", UserEmail: "n@e.com", Role: models.RoleUser}); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	product := &models.Product{ProductName: "Lamp", ProductType: "Decor", ProductPrice: "499", AvailableStock: 10}
	if err := st.Products.Save(ctx, product); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestAddCreatesSingleLink(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	product := seed(t, st)

	item, err := svc.Add(ctx, phone, product.ProductID)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if item.WishlistID == 0 {
		t.Error("Add returned item without an id")
	}

	// Adding the same pair again must not create a second row.
	if _, err := svc.Add(ctx, phone, product.ProductID); err != nil {
		t.Fatalf("second Add failed: %v", err)
	}
	items, err := st.Wishlists.FindByUser(ctx, phone)
	if err != nil {
		t.Fatalf("FindByUser failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("wishlist has %d rows for one pair, want 1", len(items))
	}
}

func TestAddValidatesProductAndUser(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	product := seed(t, st)

	_, err := svc.Add(ctx, phone, 404)
	if apperr.KindOf(err) != apperr.ProductNotFound {
		t.Errorf("Add unknown product error = %v, want ProductNotFound", err)
	}
	_, err = svc.Add(ctx, 1111111111, product.ProductID)
	if apperr.KindOf(err) != apperr.UserNotFound {
		t.Errorf("Add unknown user error = %v, want UserNotFound", err)
	}
}

func TestListEmptyWishlistIsNotAnError(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seed(t, st)

	items, err := svc.List(ctx, phone)
	if err != nil {
		t.Fatalf("List empty wishlist failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("List = %d rows, want 0", len(items))
	}

	_, err = svc.List(ctx, 1111111111)
	if apperr.KindOf(err) != apperr.UserNotFound {
		t.Errorf("List unknown user error = %v, want UserNotFound", err)
	}
}

func TestDeleteItem(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	product := seed(t, st)

	if _, err := svc.Add(ctx, phone, product.ProductID); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.DeleteItem(ctx, phone, product.ProductID); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}

	// Deleting again: the link is gone, and that is a typed error, not
	// a crash and not a silent no-op.
	err := svc.DeleteItem(ctx, phone, product.ProductID)
	if apperr.KindOf(err) != apperr.WishlistItemNotFound {
		t.Errorf("DeleteItem missing link error = %v, want NoSuchItemInWishlistExists", err)
	}
}

func TestCount(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	product := seed(t, st)

	_, err := svc.Count(ctx, phone, product.ProductID)
	if apperr.KindOf(err) != apperr.ProductNotFound {
		t.Errorf("Count absent pair error = %v, want ProductNotFound", err)
	}

	if _, err := svc.Add(ctx, phone, product.ProductID); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	count, err := svc.Count(ctx, phone, product.ProductID)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}

	// No user-directory check on this path: an unregistered phone reads
	// as product-not-found-for-user, not user-not-found.
	_, err = svc.Count(ctx, 1111111111, product.ProductID)
	if apperr.KindOf(err) != apperr.ProductNotFound {
		t.Errorf("Count unknown user error = %v, want ProductNotFound", err)
	}
}
