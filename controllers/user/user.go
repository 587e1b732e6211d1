package userControllers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nivedika-2001/Furlenco-backend/apperr"
	"github.com/Nivedika-2001/Furlenco-backend/httperr"
	"github.com/Nivedika-2001/Furlenco-backend/models"
	"github.com/Nivedika-2001/Furlenco-backend/notify"
	"github.com/Nivedika-2001/Furlenco-backend/services/users"
)

// POST /User/save
// Registers the user, then fires a welcome mail on a goroutine; the
// response never waits on, or reports, the mail outcome.
func SaveRecord(svc *users.Service, mailer notify.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var candidate models.User
		if err := c.ShouldBindJSON(&candidate); err != nil {
			httperr.Render(c, apperr.Wrap(apperr.Unexpected, "invalid user body", err))
			return
		}
		saved, err := svc.Register(c.Request.Context(), candidate)
		if err != nil {
			httperr.Render(c, err)
			return
		}

		go func(u models.User) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			body := "Hi " + u.UserName + ", your account has been created."
			if err := mailer.Send(ctx, u.UserEmail, "Welcome to Furlenco", body); err != nil {
				slog.Warn("welcome mail failed", "phoneNo", u.PhoneNo, "error", err)
			}
		}(*saved)

		c.JSON(http.StatusAccepted, saved)
	}
}

// GET /User/fetch/:phoneNo
func FetchRecord(svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, ok := phoneParam(c)
		if !ok {
			return
		}
		exists, err := svc.Exists(c.Request.Context(), phoneNo)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, exists)
	}
}

// GET /User/getName/:phoneNo
func GetName(svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, ok := phoneParam(c)
		if !ok {
			return
		}
		name, err := svc.NameOf(c.Request.Context(), phoneNo)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, name)
	}
}

// GET /User/getRoleByPhoneNo/:phoneNo
func GetRoleByPhoneNo(svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNo, ok := phoneParam(c)
		if !ok {
			return
		}
		role, err := svc.RoleOf(c.Request.Context(), phoneNo)
		if err != nil {
			httperr.Render(c, err)
			return
		}
		c.JSON(http.StatusAccepted, role)
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
