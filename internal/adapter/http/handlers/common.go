package handlers

import (
	"strings"

	"checkout_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderTenantID carries the tenant the caller acts for.
const HeaderTenantID = "X-Tenant-ID"

func tenantID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderTenantID))
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
