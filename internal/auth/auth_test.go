package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"k9-duty-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee(role models.EmployeeRole) *models.Employee {
	return &models.Employee{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Test Employee",
		Role:      role,
		Active:    true,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	employee := testEmployee(models.RoleHandler)

	token, err := service.GenerateToken(employee)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, claims.EmployeeID)
	assert.Equal(t, models.RoleHandler, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(testEmployee(models.RoleHandler))
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	service.ttl = -time.Minute

	token, err := service.GenerateToken(testEmployee(models.RoleHandler))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func setupRouter(service *Service, required ...models.EmployeeRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware := NewMiddleware(service)

	router := gin.New()
	group := router.Group("/", middleware.RequireAuth())
	if len(required) > 0 {
		group.Use(middleware.RequireRoles(required...))
	}
	group.GET("/protected", func(c *gin.Context) {
		id, _ := GetEmployeeID(c)
		c.JSON(http.StatusOK, gin.H{"employee_id": id})
	})
	return router
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router := setupRouter(NewService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	router := setupRouter(service)

	token, err := service.GenerateToken(testEmployee(models.RoleHandler))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_HandlerBlockedFromSupervisorRoute(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	router := setupRouter(service, models.RoleSupervisor, models.RoleAdmin)

	token, err := service.GenerateToken(testEmployee(models.RoleHandler))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoles_SupervisorAllowed(t *testing.T) {
	service := NewService("test-secret", time.Hour)
	router := setupRouter(service, models.RoleSupervisor, models.RoleAdmin)

	token, err := service.GenerateToken(testEmployee(models.RoleSupervisor))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
