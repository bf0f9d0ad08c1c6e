package auth

import (
	"net/http"
	"strings"

	"k9-duty-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextEmployeeID = "employee_id"
	contextRole       = "employee_role"
	contextClaims     = "auth_claims"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates the bearer token and sets the employee context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(contextEmployeeID, claims.EmployeeID)
		c.Set(contextRole, claims.Role)
		c.Set(contextClaims, claims)

		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated
// employee holds one of the given roles. Must run after RequireAuth.
func (m *Middleware) RequireRoles(roles ...models.EmployeeRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this resource"})
		c.Abort()
	}
}

// GetEmployeeID extracts the authenticated employee's ID from context
func GetEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(contextEmployeeID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetRole extracts the authenticated employee's role from context
func GetRole(c *gin.Context) (models.EmployeeRole, bool) {
	value, exists := c.Get(contextRole)
	if !exists {
		return "", false
	}
	role, ok := value.(models.EmployeeRole)
	return role, ok
}
