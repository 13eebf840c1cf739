package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"autopneu-api/internal/handler/httperr"
	"autopneu-api/internal/pkg/errs"
	"autopneu-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates the operator routes on the configured plaintext
// password, compared per request. There is intentionally no session or
// token: reloading the client drops back to the public view and the
// password must be sent again. This mirrors the product's hidden-admin-gate
// model and is not a security boundary.
type AdminAuthMiddleware struct {
	adminUseCase usecase.AdminUseCase
}

const passwordHeader = "X-Admin-Password"

var errPasswordMissing = errs.New("admin password header missing")

func NewAdminAuthMiddleware(adminUseCase usecase.AdminUseCase) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{adminUseCase: adminUseCase}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.GetHeader(passwordHeader)
		if password == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errPasswordMissing, "Admin password required", nil)
			return
		}

		if err := m.adminUseCase.VerifyPassword(c.Request.Context(), password); err != nil {
			if errors.Is(err, usecase.ErrAuthMismatch) {
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid admin password", nil)
				return
			}
			slog.Warn("admin password verification failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}

		c.Next()
	}
}
