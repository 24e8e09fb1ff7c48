package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/auth"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/models"
	"github.com/mohanishp9/QKart-Backend/services"
)

const userKey = "user"

// ValidateToken resolves the bearer token to a user and stores it on the
// context for the handlers behind it.
func ValidateToken(tokens *auth.TokenIssuer, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == "" {
			respond.Message(c, http.StatusUnauthorized, "Please authenticate")
			return
		}

		userID, err := tokens.Parse(tokenString)
		if err != nil {
			respond.Message(c, http.StatusUnauthorized, "Please authenticate")
			return
		}

		user, err := accounts.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if services.IsKind(err, services.KindNotFound) {
				respond.Message(c, http.StatusUnauthorized, "Please authenticate")
				return
			}
			respond.Error(c, err)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user set by ValidateToken.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
