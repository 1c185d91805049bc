package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/codementor/internal/dto"
	"github.com/lshigami/codementor/internal/model"
	"github.com/lshigami/codementor/internal/service"
)

// CurrentUserKey is the gin context key holding the authenticated *model.User.
const CurrentUserKey = "currentUser"

// AuthRequired validates the Authorization bearer token and stores the
// authenticated user in the request context.
func AuthRequired(authService service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		user, err := authService.VerifyToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token"})
			return
		}

		ctx.Set(CurrentUserKey, user)
		ctx.Next()
	}
}

// CurrentUser fetches the authenticated user placed by AuthRequired.
func CurrentUser(ctx *gin.Context) (*model.User, bool) {
	val, exists := ctx.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok
}
