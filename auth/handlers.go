package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/models"
	"github.com/mohanishp9/QKart-Backend/services"
)

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User   *models.User `json:"user"`
	Tokens Tokens       `json:"tokens"`
}

// POST /v1/auth/register
func RegisterHandler(accounts *services.AccountService, tokens *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Message(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := accounts.Register(c.Request.Context(), input)
		if err != nil {
			respond.Error(c, err)
			return
		}

		issue(c, http.StatusCreated, user, tokens)
	}
}

// POST /v1/auth/login
func LoginHandler(accounts *services.AccountService, tokens *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Message(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := accounts.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			respond.Error(c, err)
			return
		}

		issue(c, http.StatusOK, user, tokens)
	}
}

func issue(c *gin.Context, status int, user *models.User, tokens *TokenIssuer) {
	t, err := tokens.Issue(user)
	if err != nil {
		respond.Error(c, services.Internal("Failed to generate token", err))
		return
	}
	c.JSON(status, authResponse{User: user, Tokens: t})
}
