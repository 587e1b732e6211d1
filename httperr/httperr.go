// Package httperr renders the uniform error body. The transport never
// distinguishes bad input from server faults: everything is a 500 with
// a descriptive message.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
)

// Render writes err as the uniform {message, code, details} body.
func Render(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, apperr.StatusOf(err))
}
