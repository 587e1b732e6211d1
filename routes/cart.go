package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Nivedika-2001/Furlenco-backend/controllers/cart"
	cartservice "github.com/Nivedika-2001/Furlenco-backend/services/cart"
)

// SetupCartRoutes registers the "/cart/*" endpoints.
func SetupCartRoutes(r *gin.Engine, svc *cartservice.Service) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("/add/:phoneNo/:productID/:quantity", cartControllers.AddProductToCart(svc))
		cartGroup.GET("/getAll/:phoneNo", cartControllers.ListCartItems(svc))
		cartGroup.DELETE("/deleteItem/:phoneNo/:productID", cartControllers.DeleteItemFromCart(svc))
		cartGroup.GET("/totalPrice/:phoneNo", cartControllers.TotalPrice(svc))
		cartGroup.GET("/quantity/:phoneNo/:productID", cartControllers.GetQuantity(svc))
	}
}
