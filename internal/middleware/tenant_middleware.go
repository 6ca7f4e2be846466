package middleware

import (
	"context"
	"strings"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"
	"go-hrms/internal/tenant"
	tenanterrors "go-hrms/internal/tenant/errors"

	"github.com/gin-gonic/gin"
)

type TenantResolver interface {
	Resolve(ctx context.Context, identifier string) (*tenant.Handle, error)
}

// TenantContext resolves the tenant for the request: token claim first, then
// the X-Tenant-ID header, then (public routes only) the tenant query param.
// The canonical tenant id is stored under "tenant_id".
func TenantContext(resolver TenantResolver, allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimed := c.GetString("claims_tenant_id")
		header := strings.TrimSpace(c.GetHeader("X-Tenant-ID"))

		identifier := claimed
		if identifier == "" {
			identifier = header
		}
		if identifier == "" && allowQuery {
			identifier = strings.TrimSpace(c.Query("tenant"))
		}
		if identifier == "" {
			abort(c, tenanterrors.ErrTenantRequired)
			return
		}

		h, err := resolver.Resolve(c.Request.Context(), identifier)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			c.Abort()
			return
		}

		// a header naming another tenant than the token is rejected
		if claimed != "" && header != "" && header != claimed {
			other, err := resolver.Resolve(c.Request.Context(), header)
			if err != nil || other.TenantID != h.TenantID {
				abort(c, tenanterrors.ErrTenantMismatch)
				return
			}
		}

		c.Set("tenant_id", h.TenantID)
		ctx := contextutil.WithTenantID(c.Request.Context(), h.TenantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
