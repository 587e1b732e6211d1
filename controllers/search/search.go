package searchControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	"github.com/Nivedika-2001/Furlenco-backend/httperr"
	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/services/catalog"
)

// GET /search/fetch/:productName
func FetchProducts(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.FetchByName(c.Request.Context(), c.Param("productName"))
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, products)
	}
}

// POST /search/addProduct
func SaveProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var candidate models.Product
		if err := c.ShouldBindJSON(&candidate); err != nil {
			httperr.Render(c, apperr.Wrap(apperr.Unexpected, "invalid product body", err))
			return
		}
		saved, err := svc.Save(c.Request.Context(), candidate)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, saved)
	}
}

// PUT /search/updateProduct
func UpdateProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var candidate models.Product
		if err := c.ShouldBindJSON(&candidate); err != nil {
			httperr.Render(c, apperr.Wrap(apperr.Unexpected, "invalid product body", err))
			return
		}
		updated, err := svc.Update(c.Request.Context(), candidate)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, updated)
	}
}

// GET /search/listAllProducts
func ListAllProducts(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListAll(c.Request.Context())
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, products)
	}
}

// DELETE /search/deleteProduct/:productID
func DeleteProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productID"), 10, 64)
		if err != nil {
			httperr.Render(c, apperr.Wrap(apperr.Unexpected, "invalid productID", err))
			return
		}
		if err := svc.Delete(c.Request.Context(), uint(productID)); err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, "Product deleted successfully")
	}
}

// GET /search/getProductsByCategory/:productCategory
func GetProductsByCategory(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.FetchByCategory(c.Request.Context(), c.Param("productCategory"))
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, products)
	}
}

// GET /search/filterProductsNameInASC/:productType and .../filterProductsNameInDESC/:productType
func FilterProductsByName(svc *catalog.Service, ascending bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.SortByName(c.Request.Context(), c.Param("productType"), ascending)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, products)
	}
}

// GET /search/filterProductsPriceInASC/:productType and .../filterProductsPriceInDESC/:productType
func FilterProductsByPrice(svc *catalog.Service, ascending bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.SortByPrice(c.Request.Context(), c.Param("productType"), ascending)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, products)
	}
}
