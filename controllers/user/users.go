package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/controllers/respond"
	"github.com/mohanishp9/QKart-Backend/middleware"
	"github.com/mohanishp9/QKart-Backend/models"
	"github.com/mohanishp9/QKart-Backend/services"
)

type UpdateUserInput struct {
	Address string `json:"address" binding:"required"`
}

// self resolves :userId and rejects anyone but the authenticated user.
func self(c *gin.Context) (*models.User, bool) {
	user := middleware.CurrentUser(c)
	if user == nil || user.ID != c.Param("userId") {
		respond.Error(c, services.Forbidden(services.MsgForbiddenUser))
		return nil, false
	}
	return user, true
}

// GET /v1/users/:userId (?q=address)
func GetUser(accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := self(c)
		if !ok {
			return
		}

		user, err := accounts.GetUserByID(c.Request.Context(), current.ID)
		if err != nil {
			respond.Error(c, err)
			return
		}

		if c.Query("q") == "address" {
			c.JSON(http.StatusOK, gin.H{"address": user.Address})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /v1/users/:userId
func UpdateUser(accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := self(c)
		if !ok {
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Message(c, http.StatusBadRequest, services.MsgInvalidAddress)
			return
		}

		user, err := accounts.SetAddress(c.Request.Context(), current, input.Address)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
