package handlers

import (
	"net/http"
	"strconv"

	"k9-duty-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegistryHandler handles HTTP requests for the reference registries:
// employees, dogs, projects and shifts
type RegistryHandler struct {
	service service.RegistryServiceInterface
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(service service.RegistryServiceInterface) *RegistryHandler {
	return &RegistryHandler{service: service}
}

func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// CreateEmployee handles POST /api/v1/employees
// @Summary Register an employee
// @Tags registry
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} models.Employee "Employee registered"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Badge number already registered"
// @Security BearerAuth
// @Router /employees [post]
func (h *RegistryHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	employee, err := h.service.CreateEmployee(&req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /api/v1/employees/:id
// @Summary Get employee by ID
// @Tags registry
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} models.Employee "Employee"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *RegistryHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID: invalid UUID format"})
		return
	}

	employee, err := h.service.GetEmployee(id)
	if err != nil {
		respondError(c, err, "Failed to get employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ListEmployees handles GET /api/v1/employees
// @Summary List employees
// @Tags registry
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.PagedEmployees "Employees"
// @Security BearerAuth
// @Router /employees [get]
func (h *RegistryHandler) ListEmployees(c *gin.Context) {
	limit, offset := pageParams(c)
	employees, err := h.service.ListEmployees(limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// CreateDog handles POST /api/v1/dogs
// @Summary Register a dog
// @Tags registry
// @Accept json
// @Produce json
// @Param dog body service.CreateDogRequest true "Dog data"
// @Success 201 {object} models.Dog "Dog registered"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /dogs [post]
func (h *RegistryHandler) CreateDog(c *gin.Context) {
	var req service.CreateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	dog, err := h.service.CreateDog(&req)
	if err != nil {
		respondError(c, err, "Failed to create dog")
		return
	}

	c.JSON(http.StatusCreated, dog)
}

// GetDog handles GET /api/v1/dogs/:id
// @Summary Get dog by ID
// @Tags registry
// @Produce json
// @Param id path string true "Dog ID (UUID)"
// @Success 200 {object} models.Dog "Dog"
// @Failure 404 {object} map[string]interface{} "Dog not found"
// @Security BearerAuth
// @Router /dogs/{id} [get]
func (h *RegistryHandler) GetDog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dog ID: invalid UUID format"})
		return
	}

	dog, err := h.service.GetDog(id)
	if err != nil {
		respondError(c, err, "Failed to get dog")
		return
	}

	c.JSON(http.StatusOK, dog)
}

// ListDogs handles GET /api/v1/dogs
// @Summary List dogs
// @Tags registry
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.PagedDogs "Dogs"
// @Security BearerAuth
// @Router /dogs [get]
func (h *RegistryHandler) ListDogs(c *gin.Context) {
	limit, offset := pageParams(c)
	dogs, err := h.service.ListDogs(limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list dogs")
		return
	}
	c.JSON(http.StatusOK, dogs)
}

// CreateProject handles POST /api/v1/projects
// @Summary Register a project
// @Tags registry
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project "Project registered"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /projects [post]
func (h *RegistryHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	project, err := h.service.CreateProject(&req)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /api/v1/projects/:id
// @Summary Get project by ID
// @Tags registry
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project "Project"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *RegistryHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	project, err := h.service.GetProject(id)
	if err != nil {
		respondError(c, err, "Failed to get project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /api/v1/projects
// @Summary List projects
// @Tags registry
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.PagedProjects "Projects"
// @Security BearerAuth
// @Router /projects [get]
func (h *RegistryHandler) ListProjects(c *gin.Context) {
	limit, offset := pageParams(c)
	projects, err := h.service.ListProjects(limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateShift handles POST /api/v1/shifts
// @Summary Register a shift window
// @Tags registry
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data (times as HH:MM)"
// @Success 201 {object} models.Shift "Shift registered"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /shifts [post]
func (h *RegistryHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	shift, err := h.service.CreateShift(&req)
	if err != nil {
		respondError(c, err, "Failed to create shift")
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetShift handles GET /api/v1/shifts/:id
// @Summary Get shift by ID
// @Tags registry
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} models.Shift "Shift"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *RegistryHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID: invalid UUID format"})
		return
	}

	shift, err := h.service.GetShift(id)
	if err != nil {
		respondError(c, err, "Failed to get shift")
		return
	}

	c.JSON(http.StatusOK, shift)
}

// ListShifts handles GET /api/v1/shifts
// @Summary List shifts
// @Tags registry
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.PagedShifts "Shifts"
// @Security BearerAuth
// @Router /shifts [get]
func (h *RegistryHandler) ListShifts(c *gin.Context) {
	limit, offset := pageParams(c)
	shifts, err := h.service.ListShifts(limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list shifts")
		return
	}
	c.JSON(http.StatusOK, shifts)
}
