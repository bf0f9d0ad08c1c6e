package handlers

import (
	"net/http"
	"strconv"
	"time"

	"k9-duty-backend/internal/auth"
	"k9-duty-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles HTTP requests for handler reports
type ReportHandler struct {
	service service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(service service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// createReportBody is the wire form of a report creation. The handler is the
// authenticated employee unless the body names one explicitly, which lets a
// supervisor open a report on a handler's behalf.
type createReportBody struct {
	ReportDate     string     `json:"report_date" binding:"required"`
	HandlerID      *uuid.UUID `json:"handler_id,omitempty"`
	DogID          uuid.UUID  `json:"dog_id" binding:"required"`
	ScheduleItemID *uuid.UUID `json:"schedule_item_id,omitempty"`
	ProjectID      *uuid.UUID `json:"project_id,omitempty"`
	ShiftID        *uuid.UUID `json:"shift_id,omitempty"`
	Location       string     `json:"location,omitempty"`
}

// CreateReport handles POST /api/v1/reports
// @Summary Open a draft report
// @Description Open a draft duty report for a dog, optionally tied to a schedule item
// @Tags reports
// @Accept json
// @Produce json
// @Param report body createReportBody true "Report data"
// @Success 201 {object} service.ReportResponse "Successfully created report"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Handler, dog or schedule item not found"
// @Failure 409 {object} map[string]interface{} "A live report already exists for this duty"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var body createReportBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", body.ReportDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report_date: expected YYYY-MM-DD"})
		return
	}

	handlerID, ok := auth.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if body.HandlerID != nil {
		handlerID = *body.HandlerID
	}

	report, err := h.service.CreateReport(&service.CreateReportRequest{
		ReportDate:     date,
		HandlerID:      handlerID,
		DogID:          body.DogID,
		ScheduleItemID: body.ScheduleItemID,
		ProjectID:      body.ProjectID,
		ShiftID:        body.ShiftID,
		Location:       body.Location,
	})
	if err != nil {
		respondError(c, err, "Failed to create report")
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReport handles GET /api/v1/reports/:id
// @Summary Get report by ID
// @Description Get a report with all its entries and attachments
// @Tags reports
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} service.ReportResponse "Successfully retrieved report"
// @Failure 400 {object} map[string]interface{} "Invalid report ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	report, err := h.service.GetReport(id)
	if err != nil {
		respondError(c, err, "Failed to get report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListReports handles GET /api/v1/reports?handler_id=&date=&limit=&offset=
// @Summary List reports
// @Description List reports by handler or by calendar date
// @Tags reports
// @Produce json
// @Param handler_id query string false "Handler ID (UUID)"
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.ReportListResponse "Reports"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if handlerIDStr := c.Query("handler_id"); handlerIDStr != "" {
		handlerID, err := uuid.Parse(handlerIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid handler_id: invalid UUID format"})
			return
		}
		reports, err := h.service.ListByHandler(handlerID, limit, offset)
		if err != nil {
			respondError(c, err, "Failed to list reports")
			return
		}
		c.JSON(http.StatusOK, reports)
		return
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: expected YYYY-MM-DD"})
			return
		}
		reports, err := h.service.ListByDate(date, limit, offset)
		if err != nil {
			respondError(c, err, "Failed to list reports")
			return
		}
		c.JSON(http.StatusOK, reports)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "handler_id or date query parameter is required"})
}

// AddHealthEntry handles POST /api/v1/reports/:id/entries/health
// @Summary Add a health entry
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param entry body service.AddHealthEntryRequest true "Health entry"
// @Success 201 {object} models.HealthEntry "Entry added"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 409 {object} map[string]interface{} "Report is frozen"
// @Security BearerAuth
// @Router /reports/{id}/entries/health [post]
func (h *ReportHandler) AddHealthEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	var req service.AddHealthEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.AddHealthEntry(id, &req)
	if err != nil {
		respondError(c, err, "Failed to add health entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// AddTrainingEntry handles POST /api/v1/reports/:id/entries/training
// @Summary Add a training entry
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param entry body service.AddTrainingEntryRequest true "Training entry"
// @Success 201 {object} models.TrainingEntry "Entry added"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 409 {object} map[string]interface{} "Report is frozen"
// @Security BearerAuth
// @Router /reports/{id}/entries/training [post]
func (h *ReportHandler) AddTrainingEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	var req service.AddTrainingEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.AddTrainingEntry(id, &req)
	if err != nil {
		respondError(c, err, "Failed to add training entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// AddCareEntry handles POST /api/v1/reports/:id/entries/care
// @Summary Add a care entry
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param entry body service.AddCareEntryRequest true "Care entry"
// @Success 201 {object} models.CareEntry "Entry added"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 409 {object} map[string]interface{} "Report is frozen"
// @Security BearerAuth
// @Router /reports/{id}/entries/care [post]
func (h *ReportHandler) AddCareEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	var req service.AddCareEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.AddCareEntry(id, &req)
	if err != nil {
		respondError(c, err, "Failed to add care entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// AddBehaviorEntry handles POST /api/v1/reports/:id/entries/behavior
// @Summary Add a behavior entry
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param entry body service.AddBehaviorEntryRequest true "Behavior entry"
// @Success 201 {object} models.BehaviorEntry "Entry added"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 409 {object} map[string]interface{} "Report is frozen"
// @Security BearerAuth
// @Router /reports/{id}/entries/behavior [post]
func (h *ReportHandler) AddBehaviorEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	var req service.AddBehaviorEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.AddBehaviorEntry(id, &req)
	if err != nil {
		respondError(c, err, "Failed to add behavior entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// AddIncidentEntry handles POST /api/v1/reports/:id/entries/incident
// @Summary Add an incident entry
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param entry body service.AddIncidentEntryRequest true "Incident entry"
// @Success 201 {object} models.IncidentEntry "Entry added"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 409 {object} map[string]interface{} "Report is frozen"
// @Security BearerAuth
// @Router /reports/{id}/entries/incident [post]
func (h *ReportHandler) AddIncidentEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	var req service.AddIncidentEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.AddIncidentEntry(id, &req)
	if err != nil {
		respondError(c, err, "Failed to add incident entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// AddAttachment handles POST /api/v1/reports/:id/attachments
// @Summary Reference an uploaded file on a report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param attachment body service.AddAttachmentRequest true "Attachment reference"
// @Success 201 {object} models.ReportAttachment "Attachment added"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 409 {object} map[string]interface{} "Report is frozen"
// @Security BearerAuth
// @Router /reports/{id}/attachments [post]
func (h *ReportHandler) AddAttachment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	var req service.AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	attachment, err := h.service.AddAttachment(id, &req)
	if err != nil {
		respondError(c, err, "Failed to add attachment")
		return
	}

	c.JSON(http.StatusCreated, attachment)
}

// CanSubmit handles GET /api/v1/reports/:id/can-submit
// @Summary Check whether a report can still be submitted
// @Description Report whether the submission window is still open, with the refusal reason when it is not
// @Tags reports
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} map[string]interface{} "Submission window state"
// @Failure 400 {object} map[string]interface{} "Invalid report ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports/{id}/can-submit [get]
func (h *ReportHandler) CanSubmit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	ok, reason, err := h.service.CanSubmit(id)
	if err != nil {
		respondError(c, err, "Failed to check submission window")
		return
	}

	response := gin.H{"can_submit": ok}
	if reason != "" {
		response["reason"] = reason
	}
	c.JSON(http.StatusOK, response)
}

// SubmitReport handles POST /api/v1/reports/:id/submit
// @Summary Submit a draft report for review
// @Tags reports
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} service.ReportResponse "Report submitted"
// @Failure 400 {object} map[string]interface{} "Invalid report ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 409 {object} map[string]interface{} "Report is not a draft"
// @Failure 422 {object} map[string]interface{} "Submission window closed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports/{id}/submit [post]
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	report, err := h.service.SubmitReport(id)
	if err != nil {
		respondError(c, err, "Failed to submit report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// reviewBody is the wire form of a review decision; the reviewer is always
// the authenticated employee
type reviewBody struct {
	Notes string `json:"notes,omitempty"`
}

// ApproveReport handles POST /api/v1/reports/:id/approve
// @Summary Approve a submitted report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param review body reviewBody false "Optional review notes"
// @Success 200 {object} service.ReportResponse "Report approved"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 409 {object} map[string]interface{} "Report is not submitted"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports/{id}/approve [post]
func (h *ReportHandler) ApproveReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	var body reviewBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	reviewerID, ok := auth.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	report, err := h.service.ApproveReport(id, &service.ReviewRequest{
		ReviewerID: reviewerID,
		Notes:      body.Notes,
	})
	if err != nil {
		respondError(c, err, "Failed to approve report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// RejectReport handles POST /api/v1/reports/:id/reject
// @Summary Reject a submitted report
// @Description Reject a submitted report; review notes are mandatory
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Param review body reviewBody true "Review notes"
// @Success 200 {object} service.ReportResponse "Report rejected"
// @Failure 400 {object} map[string]interface{} "Invalid request or missing notes"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 409 {object} map[string]interface{} "Report is not submitted"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports/{id}/reject [post]
func (h *ReportHandler) RejectReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID: invalid UUID format"})
		return
	}

	var body reviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reviewerID, ok := auth.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	report, err := h.service.RejectReport(id, &service.ReviewRequest{
		ReviewerID: reviewerID,
		Notes:      body.Notes,
	})
	if err != nil {
		respondError(c, err, "Failed to reject report")
		return
	}

	c.JSON(http.StatusOK, report)
}
