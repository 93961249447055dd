package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tjcichra/tira-backend/internal/application/auth/usecases"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
	"github.com/tjcichra/tira-backend/internal/shared/utils"
)

// AuthMiddleware gates requests on a valid session cookie.
type AuthMiddleware struct {
	authenticate *usecases.AuthenticateUseCase
	logger       logger.Interface
}

func NewAuthMiddleware(authenticate *usecases.AuthenticateUseCase, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticate: authenticate,
		logger:       logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c)

		result, err := m.authenticate.Execute(c.Request.Context(), usecases.AuthenticateCommand{Token: token})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", result.UserID)
		c.Set("session_token", result.Token)

		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by RequireAuth.
func CurrentUserID(c *gin.Context) int64 {
	id, _ := c.Get("user_id")
	userID, _ := id.(int64)
	return userID
}

// CurrentSessionToken returns the session token set by RequireAuth.
func CurrentSessionToken(c *gin.Context) string {
	v, _ := c.Get("session_token")
	token, _ := v.(string)
	return token
}
