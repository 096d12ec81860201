package middlewares

import (
	"net/http"

	"gin-bookreview/models"

	"github.com/gin-gonic/gin"
)

// RequireGroup allows the request through only when the authenticated user
// belongs to one of the named groups. Must run after AuthMiddleware, which
// loads the user with fresh group memberships from the database.
func RequireGroup(groups ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, group := range groups {
			if userModel.InGroup(group) {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "You have to be admin for this operation",
		})
	}
}
