package handlers

import (
	"net/http"
	"time"

	"k9-duty-backend/internal/auth"
	"k9-duty-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for daily duty schedules
type ScheduleHandler struct {
	service service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// createScheduleBody is the wire form of a schedule creation; the date is a
// plain calendar date, not a timestamp
type createScheduleBody struct {
	ScheduleDate string     `json:"schedule_date" binding:"required"`
	ProjectID    *uuid.UUID `json:"project_id,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// CreateSchedule handles POST /api/v1/schedules
// @Summary Create a daily schedule
// @Description Create a daily duty schedule for a date, optionally scoped to a project
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body createScheduleBody true "Schedule data"
// @Success 201 {object} service.ScheduleResponse "Successfully created schedule"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Schedule already exists for this date and project"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var body createScheduleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", body.ScheduleDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule_date: expected YYYY-MM-DD"})
		return
	}

	creatorID, ok := auth.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	schedule, err := h.service.CreateSchedule(&service.CreateScheduleRequest{
		ScheduleDate: date,
		ProjectID:    body.ProjectID,
		CreatedByID:  creatorID,
		Notes:        body.Notes,
	})
	if err != nil {
		respondError(c, err, "Failed to create schedule")
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetSchedule handles GET /api/v1/schedules/:id
// @Summary Get schedule by ID
// @Description Get a daily schedule with all its items
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} service.ScheduleResponse "Successfully retrieved schedule"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID: invalid UUID format"})
		return
	}

	schedule, err := h.service.GetSchedule(id)
	if err != nil {
		respondError(c, err, "Failed to get schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// ListSchedules handles GET /api/v1/schedules?date=YYYY-MM-DD
// @Summary List schedules for a date
// @Description List all daily schedules for a calendar date
// @Tags schedules
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} service.ScheduleResponse "Schedules for the date"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules [get]
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: expected YYYY-MM-DD"})
		return
	}

	schedules, err := h.service.GetSchedulesByDate(date)
	if err != nil {
		respondError(c, err, "Failed to list schedules")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// addItemBody is the wire form of a handler assignment
type addItemBody struct {
	HandlerID uuid.UUID  `json:"handler_id" binding:"required"`
	DogID     *uuid.UUID `json:"dog_id,omitempty"`
	ShiftID   *uuid.UUID `json:"shift_id,omitempty"`
}

// AddItem handles POST /api/v1/schedules/:id/items
// @Summary Add a handler assignment to a schedule
// @Description Add a planned handler (optionally with dog and shift) to an open schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param item body addItemBody true "Assignment data"
// @Success 201 {object} service.ScheduleItemResponse "Successfully added item"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Schedule, handler, dog or shift not found"
// @Failure 409 {object} map[string]interface{} "Handler already assigned or schedule locked"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/{id}/items [post]
func (h *ScheduleHandler) AddItem(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID: invalid UUID format"})
		return
	}

	var body addItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.AddItem(&service.AddItemRequest{
		ScheduleID: scheduleID,
		HandlerID:  body.HandlerID,
		DogID:      body.DogID,
		ShiftID:    body.ShiftID,
	})
	if err != nil {
		respondError(c, err, "Failed to add schedule item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// LockSchedule handles POST /api/v1/schedules/:id/lock
// @Summary Lock a schedule
// @Description Lock a daily schedule, freezing all its items. Locking an already locked schedule is a no-op.
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} service.ScheduleResponse "Schedule is locked"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedules/{id}/lock [post]
func (h *ScheduleHandler) LockSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID: invalid UUID format"})
		return
	}

	schedule, err := h.service.LockSchedule(id)
	if err != nil {
		respondError(c, err, "Failed to lock schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// MarkPresent handles POST /api/v1/schedule-items/:id/present
// @Summary Mark a handler present
// @Description Transition a planned item to present
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule item ID (UUID)"
// @Success 200 {object} service.ScheduleItemResponse "Item marked present"
// @Failure 400 {object} map[string]interface{} "Invalid item ID"
// @Failure 404 {object} map[string]interface{} "Item not found"
// @Failure 409 {object} map[string]interface{} "Item not planned or schedule locked"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule-items/{id}/present [post]
func (h *ScheduleHandler) MarkPresent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID: invalid UUID format"})
		return
	}

	item, err := h.service.MarkPresent(id)
	if err != nil {
		respondError(c, err, "Failed to mark item present")
		return
	}

	c.JSON(http.StatusOK, item)
}

// MarkAbsent handles POST /api/v1/schedule-items/:id/absent
// @Summary Mark a handler absent
// @Description Transition a planned item to absent with a reason
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule item ID (UUID)"
// @Param absence body service.MarkAbsentRequest true "Absence reason"
// @Success 200 {object} service.ScheduleItemResponse "Item marked absent"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Item not found"
// @Failure 409 {object} map[string]interface{} "Item not planned or schedule locked"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule-items/{id}/absent [post]
func (h *ScheduleHandler) MarkAbsent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID: invalid UUID format"})
		return
	}

	var req service.MarkAbsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.MarkAbsent(id, &req)
	if err != nil {
		respondError(c, err, "Failed to mark item absent")
		return
	}

	c.JSON(http.StatusOK, item)
}

// ReplaceHandler handles POST /api/v1/schedule-items/:id/replace
// @Summary Replace an absent handler
// @Description Assign a replacement handler to an absent item
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule item ID (UUID)"
// @Param replacement body service.ReplaceHandlerRequest true "Replacement data"
// @Success 200 {object} service.ScheduleItemResponse "Handler replaced"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Item or replacement handler not found"
// @Failure 409 {object} map[string]interface{} "Item not absent or schedule locked"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule-items/{id}/replace [post]
func (h *ScheduleHandler) ReplaceHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID: invalid UUID format"})
		return
	}

	var req service.ReplaceHandlerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.ReplaceHandler(id, &req)
	if err != nil {
		respondError(c, err, "Failed to replace handler")
		return
	}

	c.JSON(http.StatusOK, item)
}
