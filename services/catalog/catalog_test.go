package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/store"
	"github.com/Nivedika-2001/Furlenco-backend/store/gormstore"
)

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
	return NewService(st.Products, st.Carts, st.Wishlists), st
}

func mustSave(t *testing.T, svc *Service, p models.Product) *models.Product {
	t.Helper()
	saved, err := svc.Save(context.Background(), p)
	if err != nil {
		t.Fatalf("Save(%s) failed: %v", p.ProductName, err)
	}
	return saved
}

func TestSaveMergesDuplicateName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first := mustSave(t, svc, models.Product{ProductName: "Widget", ProductType: "Tools", ProductPrice: "99.00", AvailableStock: 5})
	second := mustSave(t, svc, models.Product{ProductName: "Widget", ProductType: "Tools", ProductPrice: "99.00", AvailableStock: 3})

	if second.ProductID != first.ProductID {
		t.Errorf("merge created a new row: id %d != %d", second.ProductID, first.ProductID)
	}
	if second.AvailableStock != 8 {
		t.Errorf("merged stock = %d, want 8", second.AvailableStock)
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListAll has %d rows, want 1", len(all))
	}
}

func TestUpdateKeepsExistingID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved := mustSave(t, svc, models.Product{ProductName: "Pen", ProductType: "Stationery", ProductPrice: "10.50", AvailableStock: 100})

	updated, err := svc.Update(ctx, models.Product{ProductName: "Pen", ProductType: "Office", ProductPrice: "12.00", AvailableStock: 50})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ProductID != saved.ProductID {
		t.Errorf("update changed id: %d != %d", updated.ProductID, saved.ProductID)
	}
	if updated.ProductType != "Office" || updated.ProductPrice != "12.00" || updated.AvailableStock != 50 {
		t.Errorf("update did not overwrite fields: %+v", updated)
	}
}

func TestUpdateUnknownName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), models.Product{ProductName: "Ghost"})
	if apperr.KindOf(err) != apperr.ProductNotFound {
		t.Fatalf("Update error = %v, want ProductNotFound", err)
	}
}

func TestFetchByNameIsCaseInsensitiveSubstring(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mustSave(t, svc, models.Product{ProductName: "Blue Sofa", ProductType: "Furniture", ProductPrice: "15,000", AvailableStock: 2})

	products, err := svc.FetchByName(ctx, "sofa")
	if err != nil {
		t.Fatalf("FetchByName failed: %v", err)
	}
	if len(products) != 1 || products[0].ProductName != "Blue Sofa" {
		t.Errorf("FetchByName = %+v, want the Blue Sofa row", products)
	}

	_, err = svc.FetchByName(ctx, "table")
	if apperr.KindOf(err) != apperr.ProductNotFound {
		t.Errorf("FetchByName no match error = %v, want ProductNotFound", err)
	}
}

func TestFetchByCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mustSave(t, svc, models.Product{ProductName: "Pen", ProductType: "Stationery", ProductPrice: "10.50", AvailableStock: 100})

	products, err := svc.FetchByCategory(ctx, "Stationery")
	if err != nil {
		t.Fatalf("FetchByCategory failed: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("FetchByCategory returned %d rows, want 1", len(products))
	}

	_, err = svc.FetchByCategory(ctx, "stationery")
	if apperr.KindOf(err) != apperr.ProductNotFound {
		t.Errorf("category match should be exact; error = %v, want ProductNotFound", err)
	}
}

func TestDeleteCascadesIntoCartAndWishlist(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	if err := st.Users.Create(ctx, &models.User{PhoneNo: 9999999999, UserName: "Nivi", UserEmail: "n@e.com", Role: models.RoleUser}); err != nil {
		t.Fatalf("Create user failed: %v", err)
	}
	product := mustSave(t, svc, models.Product{ProductName: "Lamp", ProductType: "Decor", ProductPrice: "499", AvailableStock: 10})

	if err := st.Carts.Save(ctx, &models.CartItem{UserID: 9999999999, ProductID: product.ProductID, Quantity: 2}); err != nil {
		t.Fatalf("cart Save failed: %v", err)
	}
	if err := st.Wishlists.Save(ctx, &models.WishlistItem{UserID: 9999999999, ProductID: product.ProductID}); err != nil {
		t.Fatalf("wishlist Save failed: %v", err)
	}

	if err := svc.Delete(ctx, product.ProductID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := st.Products.FindByID(ctx, product.ProductID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("product still present after delete: %v", err)
	}
	cartRows, err := st.Carts.FindByUser(ctx, 9999999999)
	if err != nil {
		t.Fatalf("cart FindByUser failed: %v", err)
	}
	if len(cartRows) != 0 {
		t.Errorf("cart rows remain after cascade: %d", len(cartRows))
	}
	wishRows, err := st.Wishlists.FindByUser(ctx, 9999999999)
	if err != nil {
		t.Fatalf("wishlist FindByUser failed: %v", err)
	}
	if len(wishRows) != 0 {
		t.Errorf("wishlist rows remain after cascade: %d", len(wishRows))
	}

	_, err = svc.FetchByName(ctx, "Lamp")
	if apperr.KindOf(err) != apperr.ProductNotFound {
		t.Errorf("FetchByName after delete error = %v, want ProductNotFound", err)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Delete(context.Background(), 404)
	if apperr.KindOf(err) != apperr.ProductNotFound {
		t.Fatalf("Delete error = %v, want ProductNotFound", err)
	}
}

func TestSortByName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mustSave(t, svc, models.Product{ProductName: "Chair", ProductType: "Furniture", ProductPrice: "2,000", AvailableStock: 1})
	mustSave(t, svc, models.Product{ProductName: "Bed", ProductType: "Furniture", ProductPrice: "9,000", AvailableStock: 1})
	mustSave(t, svc, models.Product{ProductName: "Almirah", ProductType: "Furniture", ProductPrice: "7,000", AvailableStock: 1})

	asc, err := svc.SortByName(ctx, "Furniture", true)
	if err != nil {
		t.Fatalf("SortByName asc failed: %v", err)
	}
	wantAsc := []string{"Almirah", "Bed", "Chair"}
	for i, name := range wantAsc {
		if asc[i].ProductName != name {
			t.Fatalf("asc[%d] = %s, want %s", i, asc[i].ProductName, name)
		}
	}

	desc, err := svc.SortByName(ctx, "Furniture", false)
	if err != nil {
		t.Fatalf("SortByName desc failed: %v", err)
	}
	for i := range desc {
		if desc[i].ProductName != wantAsc[len(wantAsc)-1-i] {
			t.Fatalf("desc is not the reverse of asc: %+v", desc)
		}
	}

	_, err = svc.SortByName(ctx, "Electronics", true)
	if apperr.KindOf(err) != apperr.ProductNotFound {
		t.Errorf("SortByName empty filter error = %v, want ProductNotFound", err)
	}
}

func TestSortByPriceParsesSeparatorsAndIsStable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// "900" sorts after "1,299" lexicographically; numeric order must win.
	mustSave(t, svc, models.Product{ProductName: "Desk", ProductType: "Furniture", ProductPrice: "1,299", AvailableStock: 1})
	mustSave(t, svc, models.Product{ProductName: "Stool", ProductType: "Furniture", ProductPrice: "900", AvailableStock: 1})
	mustSave(t, svc, models.Product{ProductName: "Shelf", ProductType: "Furniture", ProductPrice: "900", AvailableStock: 1})
	mustSave(t, svc, models.Product{ProductName: "Wardrobe", ProductType: "Furniture", ProductPrice: "15,000.50", AvailableStock: 1})

	asc, err := svc.SortByPrice(ctx, "Furniture", true)
	if err != nil {
		t.Fatalf("SortByPrice asc failed: %v", err)
	}
	wantPrices := []string{"900", "900", "1,299", "15,000.50"}
	for i, price := range wantPrices {
		if asc[i].ProductPrice != price {
			t.Fatalf("asc[%d].price = %s, want %s (order %+v)", i, asc[i].ProductPrice, price, names(asc))
		}
	}

	desc, err := svc.SortByPrice(ctx, "Furniture", false)
	if err != nil {
		t.Fatalf("SortByPrice desc failed: %v", err)
	}
	// Descending is the exact reverse of the ascending pass, so the two
	// equal-priced rows swap their relative order.
	for i := range desc {
		if desc[i].ProductID != asc[len(asc)-1-i].ProductID {
			t.Fatalf("desc is not the exact reverse of asc: asc=%v desc=%v", names(asc), names(desc))
		}
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ProductName
	}
	return out
}
