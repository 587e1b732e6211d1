package wishlistControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	"github.com/Nivedika-2001/Furlenco-backend/httperr"
	wishlistservice "github.com/Nivedika-2001/Furlenco-backend/services/wishlist"
)

// POST /wishlist/add/:phoneNo/:productID
func AddItemToWishlist(svc *wishlistservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, productID, ok := pairParams(c)
		if !ok {
			return
		}
		item, err := svc.Add(c.Request.Context(), phoneNo, productID)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, item)
	}
}

// GET /wishlist/list/:phoneNo
func ListAllItems(svc *wishlistservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, err := strconv.ParseInt(c.Param("phoneNo"), 10, 64)
		if err != nil {
			httperr.Render(c, apperr.Wrap(apperr.Unexpected, "invalid phone number", err))
			return
		}
		items, err := svc.List(c.Request.Context(), phoneNo)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, items)
	}
}

// DELETE /wishlist/delete/:phoneNo/:productID
func DeleteItemFromWishlist(svc *wishlistservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, productID, ok := pairParams(c)
		if !ok {
			return
		}
		if err := svc.DeleteItem(c.Request.Context(), phoneNo, productID); err != nil {
			httperr.Render(c, err)
			return
		}
		c.Status(http.StatusAccepted)
	}
}

// GET /wishlist/user/:phoneNo/:productID
func FetchProducts(svc *wishlistservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, productID, ok := pairParams(c)
		if !ok {
			return
		}
		count, err := svc.Count(c.Request.Context(), phoneNo, productID)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, count)
	}
}

func pairParams(c *gin.Context) (int64, uint, bool) {
	phoneNo, err := strconv.ParseInt(c.Param("phoneNo"), 10, 64)
	if err != nil {
		httperr.Render(c, apperr.Wrap(apperr.Unexpected, "invalid phone number", err))
		return 0, 0, false
	}
	productID, err := strconv.ParseUint(c.Param("productID"), 10, 64)
	if err != nil {
		httperr.Render(c, apperr.Wrap(apperr.Unexpected, "invalid productID", err))
		return 0, 0, false
	}
	return phoneNo, uint(productID), true
}
