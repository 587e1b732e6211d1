package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nivedika-2001/Furlenco-backend/notify"
	cartservice "github.com/Nivedika-2001/Furlenco-backend/services/cart"
	"github.com/Nivedika-2001/Furlenco-backend/services/catalog"
	"github.com/Nivedika-2001/Furlenco-backend/services/users"
	wishlistservice "github.com/Nivedika-2001/Furlenco-backend/services/wishlist"
	"github.com/Nivedika-2001/Furlenco-backend/store/gormstore"
)

// SetupRoutes is the single entry point: it builds the store and the
// four domain services over db and registers every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, mailer notify.Mailer) {
	st := gormstore.New(db)

	userSvc := users.NewService(st.Users)
	catalogSvc := catalog.NewService(st.Products, st.Carts, st.Wishlists)
	cartSvc := cartservice.NewService(st.Carts, st.Products, st.Users)
	wishlistSvc := wishlistservice.NewService(st.Wishlists, st.Products, st.Users)

	SetupUserRoutes(r, userSvc, mailer)
	SetupSearchRoutes(r, catalogSvc)
	SetupCartRoutes(r, cartSvc)
	SetupWishlistRoutes(r, wishlistSvc)
}
