package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/Nivedika-2001/Furlenco-backend/controllers/user"
	"github.com/Nivedika-2001/Furlenco-backend/notify"
	"github.com/Nivedika-2001/Furlenco-backend/services/users"
)

// SetupUserRoutes registers the "/User/*" endpoints. The capital U is
// the contract existing clients call.
func SetupUserRoutes(r *gin.Engine, svc *users.Service, mailer notify.Mailer) {
	userGroup := r.Group("/User")
	{
		userGroup.POST("/save", userControllers.SaveRecord(svc, mailer))
		userGroup.GET("/fetch/:phoneNo", userControllers.FetchRecord(svc))
		userGroup.GET("/getName/:phoneNo", userControllers.GetName(svc))
		userGroup.GET("/getRoleByPhoneNo/:phoneNo", userControllers.GetRoleByPhoneNo(svc))
	}
}
