package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/services"
)

// StatusFor maps a service error kind to an HTTP status.
func StatusFor(kind services.Kind) int {
	switch kind {
	case services.KindInvalidRequest:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindUnauthorized:
		return http.StatusUnauthorized
	case services.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as {"code", "message"}. Causes of internal errors are
// logged by the services, never sent.
func Error(c *gin.Context, err error) {
	status := StatusFor(services.KindOf(err))
	message := http.StatusText(status)
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}
	_ = c.Error(err)
	Message(c, status, message)
}

func Message(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"code": status, "message": message})
}
