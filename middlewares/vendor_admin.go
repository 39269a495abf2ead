package middlewares

import (
	"net/http"
	"strconv"

	"github.com/jculp24/thrsty/repository"
	"github.com/jculp24/thrsty/utils"

	"github.com/gin-gonic/gin"
)

// VendorAdminMiddleware gates routes carrying a vendor id in the named
// param. The caller must already be authenticated.
func VendorAdminMiddleware(repo *repository.VendorRepository, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := utils.CurrentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication required"})
			c.Abort()
			return
		}

		vendorID, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil || vendorID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "vendor ID is required"})
			c.Abort()
			return
		}

		ok, err := repo.IsAdmin(uint(vendorID), userID)
		if err != nil || !ok {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "not authorized as a vendor admin"})
			c.Abort()
			return
		}

		c.Set("vendorId", uint(vendorID))
		c.Next()
	}
}
