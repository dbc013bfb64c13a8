package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salonbooking/internal/domain"
	jwtsvc "salonbooking/internal/pkg/jwt"
	"salonbooking/internal/pkg/response"
	"salonbooking/internal/repository"
)

const principalKey = "principal"

// JWTAuth validates the bearer token and re-resolves the principal from
// the store by (username, role). A token for a deleted or renamed
// account is rejected here even before its expiry.
func JWTAuth(jwt *jwtsvc.Service, principals *repository.PrincipalRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		p, err := principals.Resolve(c.Request.Context(), claims.Username, claims.Role)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials")
			c.Abort()
			return
		}

		c.Set(principalKey, p)
		c.Set("user_id", p.ID)
		c.Set("role", p.Role)

		c.Next()
	}
}

// PrincipalFrom returns the principal resolved by JWTAuth, or nil when
// the route was not guarded.
func PrincipalFrom(c *gin.Context) *domain.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*domain.Principal)
	return p
}

// RequireAdmin passes only principals resolved in the admins table.
func RequireAdmin() gin.HandlerFunc {
	return requireKind(domain.KindAdmin, "Access restricted: admin privileges required")
}

// RequireStylist passes only principals resolved in the stylists table.
func RequireStylist() gin.HandlerFunc {
	return requireKind(domain.KindStylist, "Access restricted: only for stylists")
}

func requireKind(kind domain.PrincipalKind, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p == nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}
		if p.Kind != kind {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", message)
			c.Abort()
			return
		}
		c.Next()
	}
}
