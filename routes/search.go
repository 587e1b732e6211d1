package routes

import (
	"github.com/gin-gonic/gin"

	searchControllers "github.com/Nivedika-2001/Furlenco-backend/controllers/search"
	"github.com/Nivedika-2001/Furlenco-backend/services/catalog"
)

// SetupSearchRoutes registers the "/search/*" catalog endpoints.
func SetupSearchRoutes(r *gin.Engine, svc *catalog.Service) {
	searchGroup := r.Group("/search")
	{
		searchGroup.GET("/fetch/:productName", searchControllers.FetchProducts(svc))
		searchGroup.POST("/addProduct", searchControllers.SaveProduct(svc))
		searchGroup.GET("/listAllProducts", searchControllers.ListAllProducts(svc))
		searchGroup.DELETE("/deleteProduct/:productID", searchControllers.DeleteProduct(svc))
		searchGroup.GET("/getProductsByCategory/:productCategory", searchControllers.GetProductsByCategory(svc))
		searchGroup.GET("/filterProductsNameInASC/:productType", searchControllers.FilterProductsByName(svc, true))
		searchGroup.GET("/filterProductsNameInDESC/:productType", searchControllers.FilterProductsByName(svc, false))
		searchGroup.GET("/filterProductsPriceInASC/:productType", searchControllers.FilterProductsByPrice(svc, true))
		searchGroup.GET("/filterProductsPriceInDESC/:productType", searchControllers.FilterProductsByPrice(svc, false))
		searchGroup.PUT("/updateProduct", searchControllers.UpdateProduct(svc))
		searchGroup.GET("/exportProducts", searchControllers.ExportProductsToExcel(svc))
	}
}
