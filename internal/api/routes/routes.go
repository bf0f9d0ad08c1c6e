package routes

import (
	"k9-duty-backend/internal/api/handlers"
	"k9-duty-backend/internal/api/middleware"
	"k9-duty-backend/internal/auth"
	"k9-duty-backend/internal/config"
	"k9-duty-backend/internal/database/models"
	"k9-duty-backend/internal/repository"
	"k9-duty-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The notifier is
// the running dispatcher; workflow services publish through it but never
// block on delivery.
func SetupRoutes(db *gorm.DB, cfg *config.Config, notifier service.Notifier, notifications *service.NotificationService, clock service.Clock) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	scheduleRepo := repository.NewDailyScheduleRepository(db)
	itemRepo := repository.NewDailyScheduleItemRepository(db)
	reportRepo := repository.NewHandlerReportRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	dogRepo := repository.NewDogRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	shiftRepo := repository.NewShiftRepository(db)

	// Services
	deadlines := service.NewDeadlinePolicy(cfg.GracePeriod(), cfg.Location())
	scheduleService := service.NewScheduleService(
		scheduleRepo, itemRepo, employeeRepo, dogRepo, projectRepo, shiftRepo,
		notifier, validate, clock, cfg.AllowDuplicateSchedules)
	reportService := service.NewReportService(
		reportRepo, itemRepo, employeeRepo, dogRepo, shiftRepo,
		notifier, validate, clock, deadlines)
	registryService := service.NewRegistryService(
		employeeRepo, dogRepo, projectRepo, shiftRepo, validate)

	// Auth
	authService := auth.NewService(cfg.JWTSecret, 0)
	authMiddleware := auth.NewMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	reportHandler := handlers.NewReportHandler(reportService)
	notificationHandler := handlers.NewNotificationHandler(notifications)
	registryHandler := handlers.NewRegistryHandler(registryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	supervisors := authMiddleware.RequireRoles(models.RoleSupervisor, models.RoleAdmin)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Schedule routes
		schedules := v1.Group("/schedules")
		{
			schedules.POST("", supervisors, scheduleHandler.CreateSchedule)
			schedules.GET("", scheduleHandler.ListSchedules)
			schedules.GET("/:id", scheduleHandler.GetSchedule)
			schedules.POST("/:id/items", supervisors, scheduleHandler.AddItem)
			schedules.POST("/:id/lock", supervisors, scheduleHandler.LockSchedule)
		}

		// Schedule item transitions
		items := v1.Group("/schedule-items")
		{
			items.POST("/:id/present", scheduleHandler.MarkPresent)
			items.POST("/:id/absent", scheduleHandler.MarkAbsent)
			items.POST("/:id/replace", supervisors, scheduleHandler.ReplaceHandler)
		}

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.POST("", reportHandler.CreateReport)
			reports.GET("", reportHandler.ListReports)
			reports.GET("/:id", reportHandler.GetReport)
			reports.POST("/:id/entries/health", reportHandler.AddHealthEntry)
			reports.POST("/:id/entries/training", reportHandler.AddTrainingEntry)
			reports.POST("/:id/entries/care", reportHandler.AddCareEntry)
			reports.POST("/:id/entries/behavior", reportHandler.AddBehaviorEntry)
			reports.POST("/:id/entries/incident", reportHandler.AddIncidentEntry)
			reports.POST("/:id/attachments", reportHandler.AddAttachment)
			reports.GET("/:id/can-submit", reportHandler.CanSubmit)
			reports.POST("/:id/submit", reportHandler.SubmitReport)
			reports.POST("/:id/approve", supervisors, reportHandler.ApproveReport)
			reports.POST("/:id/reject", supervisors, reportHandler.RejectReport)
		}

		// Notification routes
		notificationRoutes := v1.Group("/notifications")
		{
			notificationRoutes.GET("", notificationHandler.ListNotifications)
			notificationRoutes.GET("/unread", notificationHandler.ListUnread)
			notificationRoutes.GET("/unread/count", notificationHandler.UnreadCount)
			notificationRoutes.POST("/:id/read", notificationHandler.MarkRead)
			notificationRoutes.POST("/read-all", notificationHandler.MarkAllRead)
		}

		// Registry routes
		employees := v1.Group("/employees")
		{
			employees.POST("", supervisors, registryHandler.CreateEmployee)
			employees.GET("", registryHandler.ListEmployees)
			employees.GET("/:id", registryHandler.GetEmployee)
		}

		dogs := v1.Group("/dogs")
		{
			dogs.POST("", supervisors, registryHandler.CreateDog)
			dogs.GET("", registryHandler.ListDogs)
			dogs.GET("/:id", registryHandler.GetDog)
		}

		projects := v1.Group("/projects")
		{
			projects.POST("", supervisors, registryHandler.CreateProject)
			projects.GET("", registryHandler.ListProjects)
			projects.GET("/:id", registryHandler.GetProject)
		}

		shifts := v1.Group("/shifts")
		{
			shifts.POST("", supervisors, registryHandler.CreateShift)
			shifts.GET("", registryHandler.ListShifts)
			shifts.GET("/:id", registryHandler.GetShift)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
