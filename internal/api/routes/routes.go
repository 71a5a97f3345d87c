package routes

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"inspection-scheduler-backend/internal/api/handlers"
	"inspection-scheduler-backend/internal/api/middleware"
	"inspection-scheduler-backend/internal/auth"
	"inspection-scheduler-backend/internal/config"
	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/repository"
	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewCatalogRepository[models.Role](db)
	agencyRepo := repository.NewCatalogRepository[models.Agency](db)
	taskTypeRepo := repository.NewCatalogRepository[models.TaskType](db)
	shiftTypeRepo := repository.NewShiftTypeRepository(db)
	buildingRepo := repository.NewBuildingRepository(db)
	assignmentRepo := repository.NewWeeklyAssignmentRepository(db)
	groupRepo := repository.NewInspectorGroupRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Services
	mailer := service.NewEmailService(cfg)
	userService := service.NewUserService(userRepo, agencyRepo, validator)
	roleService := service.NewCatalogService[models.Role, *models.Role](roleRepo, apperrors.ErrRoleNotFound, apperrors.ErrRoleExists, validator)
	agencyService := service.NewCatalogService[models.Agency, *models.Agency](agencyRepo, apperrors.ErrAgencyNotFound, apperrors.ErrAgencyExists, validator)
	taskTypeService := service.NewCatalogService[models.TaskType, *models.TaskType](taskTypeRepo, apperrors.ErrTaskTypeNotFound, apperrors.ErrTaskTypeExists, validator)
	shiftTypeService := service.NewShiftTypeService(shiftTypeRepo, validator)
	buildingService := service.NewBuildingService(buildingRepo, validator)
	assignmentService := service.NewWeeklyAssignmentService(assignmentRepo, notificationRepo, mailer, validator)
	shiftService := service.NewShiftService(groupRepo, notificationRepo, mailer, validator)
	requestService := service.NewRequestService(requestRepo, userRepo, notificationRepo, validator)
	notificationService := service.NewNotificationService(notificationRepo, groupRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)
	directoryService := service.NewDirectoryService(cfg)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	roleHandler := handlers.NewCatalogHandler[models.Role](roleService, "role")
	agencyHandler := handlers.NewCatalogHandler[models.Agency](agencyService, "agency")
	taskTypeHandler := handlers.NewCatalogHandler[models.TaskType](taskTypeService, "task type")
	shiftTypeHandler := handlers.NewShiftTypeHandler(shiftTypeService)
	buildingHandler := handlers.NewBuildingHandler(buildingService)
	assignmentHandler := handlers.NewWeeklyAssignmentHandler(assignmentService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	requestHandler := handlers.NewRequestHandler(requestService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Public routes
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.POST("/register", userHandler.Register)

	// Any authenticated user
	authed := api.Group("")
	authed.Use(authMiddleware.RequireAuth())
	{
		authed.GET("/me", authHandler.Me)

		authed.GET("/users/inspectors", userHandler.ListInspectors)
		authed.GET("/users/managers", userHandler.ListManagers)

		authed.GET("/shift-types", shiftTypeHandler.ListShiftTypes)
		authed.GET("/roles", roleHandler.List)
		authed.GET("/agencies", agencyHandler.List)
		authed.GET("/task-types", taskTypeHandler.List)

		authed.GET("/buildings", buildingHandler.ListBuildings)
		authed.GET("/buildings/with-shifts", buildingHandler.ListWithShifts)

		authed.GET("/shifts", shiftHandler.MyShifts)
		authed.POST("/shifts/:id/respond", shiftHandler.Respond)

		authed.POST("/requests", requestHandler.CreateRequest)
		authed.GET("/requests", requestHandler.ListRequests)
		authed.GET("/requests/:id", requestHandler.GetRequest)

		authed.GET("/notifications", notificationHandler.ListNotifications)
		authed.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		authed.POST("/notifications/read-all", notificationHandler.MarkAllRead)
		authed.POST("/notifications/:id/read", notificationHandler.MarkRead)
	}

	// Request review is open to managers; the service checks the assignment
	review := api.Group("/admin/requests")
	review.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAnyRole(models.UserRoleAdmin, models.UserRoleManager))
	{
		review.PUT("/:id", requestHandler.ResolveRequest)
		review.POST("/:id/assign", authMiddleware.RequireAdmin(), requestHandler.AssignManager)
	}

	// Admin only
	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		admin.GET("/dashboard", dashboardHandler.GetDashboard)
		admin.GET("/directory/search", directoryHandler.Search)

		users := admin.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		registerCatalog(admin.Group("/roles"), roleHandler)
		registerCatalog(admin.Group("/agencies"), agencyHandler)
		registerCatalog(admin.Group("/task-types"), taskTypeHandler)

		shiftTypes := admin.Group("/shift-types")
		{
			shiftTypes.POST("", shiftTypeHandler.CreateShiftType)
			shiftTypes.GET("/:id", shiftTypeHandler.GetShiftType)
			shiftTypes.PUT("/:id", shiftTypeHandler.UpdateShiftType)
			shiftTypes.DELETE("/:id", shiftTypeHandler.DeleteShiftType)
		}

		buildings := admin.Group("/buildings")
		{
			buildings.POST("", buildingHandler.CreateBuilding)
			buildings.GET("/:id", buildingHandler.GetBuilding)
			buildings.PUT("/:id", buildingHandler.UpdateBuilding)
			buildings.DELETE("/:id", buildingHandler.DeleteBuilding)
		}

		assignments := admin.Group("/weekly-assignments")
		{
			assignments.GET("", assignmentHandler.ListWeeklyAssignments)
			assignments.POST("", assignmentHandler.CreateWeeklyAssignment)
			assignments.GET("/:id", assignmentHandler.GetWeeklyAssignment)
			assignments.PUT("/:id", assignmentHandler.UpdateWeeklyAssignment)
			assignments.DELETE("/:id", assignmentHandler.DeleteWeeklyAssignment)
		}

		shifts := admin.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.POST("", shiftHandler.CreateShift)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id", shiftHandler.ReplaceShift)
			shifts.DELETE("/:id", shiftHandler.DeleteShift)
		}
	}

	router.NoRoute(spaFallback(cfg.StaticDir))

	return router, nil
}

type catalogRoutes interface {
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerCatalog(group *gin.RouterGroup, h catalogRoutes) {
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// spaFallback serves the frontend bundle for unknown non-API paths. Existing
// files are served as is, everything else gets index.html so client-side
// routes survive a reload.
func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/api" || staticDir == "" || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "not found"})
			return
		}

		candidate := filepath.Join(staticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "not found"})
			return
		}
		c.File(index)
	}
}
