package handlers

import (
	"k9-duty-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authAs injects the authenticated employee into the gin context, standing in
// for the JWT middleware in route-level tests
func authAs(employeeID uuid.UUID, role models.EmployeeRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("employee_id", employeeID)
		c.Set("employee_role", role)
		c.Next()
	}
}
