package routes

import (
	"github.com/gin-gonic/gin"

	wishlistControllers "github.com/Nivedika-2001/Furlenco-backend/controllers/wishlist"
	wishlistservice "github.com/Nivedika-2001/Furlenco-backend/services/wishlist"
)

// SetupWishlistRoutes registers the "/wishlist/*" endpoints.
func SetupWishlistRoutes(r *gin.Engine, svc *wishlistservice.Service) {
	wishlistGroup := r.Group("/wishlist")
	{
		wishlistGroup.POST("/add/:phoneNo/:productID", wishlistControllers.AddItemToWishlist(svc))
		wishlistGroup.GET("/list/:phoneNo", wishlistControllers.ListAllItems(svc))
		wishlistGroup.DELETE("/delete/:phoneNo/:productID", wishlistControllers.DeleteItemFromWishlist(svc))
		wishlistGroup.GET("/user/:phoneNo/:productID", wishlistControllers.FetchProducts(svc))
	}
}
