package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zamtransit/vendor-portal-backend/internal/services"
	"github.com/zamtransit/vendor-portal-backend/pkg/token"
)

// VendorContextKey is the key used to store vendor information in Gin context
const VendorContextKey = "vendor"

// VendorContext represents the authenticated vendor's information
type VendorContext struct {
	VendorID int64  `json:"vendor_id"`
	Username string `json:"username"`
}

// AuthMiddleware authenticates the request. The session cookie is
// checked first; a Bearer token is accepted as a fallback for
// non-browser clients.
func AuthMiddleware(sessions *services.SessionService, tokens *token.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			vendor, err := sessions.Authenticate(cookie, time.Now().UTC())
			if err == nil {
				c.Set(VendorContextKey, VendorContext{VendorID: vendor.ID, Username: vendor.Username})
				c.Next()
				return
			}
			unauthorized(c, "session_expired", "Session is invalid or expired. Please log in again.")
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "unauthorized", "Authentication required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			unauthorized(c, "unauthorized", "Invalid authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := tokens.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			unauthorized(c, "invalid_token", "Invalid or expired access token")
			return
		}

		c.Set(VendorContextKey, VendorContext{VendorID: claims.VendorID, Username: claims.Username})
		c.Next()
	}
}

func unauthorized(c *gin.Context, code, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":   code,
		"message": message,
	})
	c.Abort()
}

// GetVendor extracts the authenticated vendor from the Gin context
func GetVendor(c *gin.Context) (VendorContext, bool) {
	value, exists := c.Get(VendorContextKey)
	if !exists {
		return VendorContext{}, false
	}
	vendor, ok := value.(VendorContext)
	return vendor, ok
}
