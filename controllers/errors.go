package controllers

import (
	"errors"

	"github.com/jculp24/thrsty/pkg/resp"
	"github.com/jculp24/thrsty/services"

	"github.com/gin-gonic/gin"
)

// fail maps service failures onto the HTTP taxonomy.
func fail(c *gin.Context, err error) {
	var pe *services.PersistenceError
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMixedVendorOrder),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrBadRecipient),
		errors.Is(err, services.ErrEmailTaken):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.As(err, &pe):
		resp.BadGateway(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
