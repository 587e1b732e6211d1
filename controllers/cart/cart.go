package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	cartservice "github.com/Nivedika-2001/Furlenco-backend/services/cart"

	"github.com/Nivedika-2001/Furlenco-backend/httperr"
)

// POST /cart/add/:phoneNo/:productID/:quantity
func AddProductToCart(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, ok := phoneParam(c)
		if !ok {
			return
		}
		productID, ok := uintParam(c, "productID")
		if !ok {
			return
		}
		quantity, err := strconv.Atoi(c.Param("quantity"))
		if err != nil {
			httperr.Render(c, apperr.Wrap(apperr.Unexpected, "invalid quantity", err))
			return
		}

		added, err := svc.Add(c.Request.Context(), phoneNo, productID, quantity)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, added)
	}
}

// GET /cart/getAll/:phoneNo
func ListCartItems(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, ok := phoneParam(c)
		if !ok {
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

// DELETE /cart/deleteItem/:phoneNo/:productID
func DeleteItemFromCart(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, ok := phoneParam(c)
		if !ok {
			return
		}
		productID, ok := uintParam(c, "productID")
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

// GET /cart/totalPrice/:phoneNo
func TotalPrice(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, ok := phoneParam(c)
		if !ok {
			return
		}
		total, err := svc.TotalPrice(c.Request.Context(), phoneNo)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, total)
	}
}

// GET /cart/quantity/:phoneNo/:productID
func GetQuantity(svc *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, ok := phoneParam(c)
		if !ok {
			return
		}
		productID, ok := uintParam(c, "productID")
		if !ok {
			return
		}
		quantity, err := svc.Quantity(c.Request.Context(), phoneNo, productID)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, quantity)
	}
}

func phoneParam(c *gin.Context) (int64, bool) {
	phoneNo, err := strconv.ParseInt(c.Param("phoneNo"), 10, 64)
	if err != nil {
		httperr.Render(c, apperr.Wrap(apperr.Unexpected, "invalid phone number", err))
		return 0, false
	}
	return phoneNo, true
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.Render(c, apperr.Wrap(apperr.Unexpected, "invalid "+name, err))
		return 0, false
	}
	return uint(v), true
}
