package routes

import (
	"volunteer-roster-backend/internal/api/handlers"
	"volunteer-roster-backend/internal/api/middleware"
	"volunteer-roster-backend/internal/config"
	"volunteer-roster-backend/internal/logger"
	"volunteer-roster-backend/internal/repository"
	"volunteer-roster-backend/internal/scheduler"
	"volunteer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()
	log := logger.New().Logger

	// Repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	personRepo := repository.NewPersonRepository(db)
	timeOffRepo := repository.NewTimeOffRepository(db)
	eventRepo := repository.NewEventRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)

	// Services
	solverConfig := scheduler.Config{
		FairnessThreshold: cfg.SolverFairnessThreshold,
		FairnessPasses:    cfg.SolverFairnessPasses,
	}
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	personService := service.NewPersonService(personRepo, timeOffRepo, organizationRepo, validator)
	eventService := service.NewEventService(eventRepo, organizationRepo, validator)
	solverService := service.NewSolverService(organizationRepo, personRepo, eventRepo, timeOffRepo, solutionRepo, solverConfig, validator, log)
	solutionService := service.NewSolutionService(solutionRepo, organizationRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, eventRepo, personRepo, validator)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	personHandler := handlers.NewPersonHandler(personService)
	eventHandler := handlers.NewEventHandler(eventService)
	solverHandler := handlers.NewSolverHandler(solverService)
	solutionHandler := handlers.NewSolutionHandler(solutionService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		organizations := v1.Group("/organizations")
		{
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.GET("/:id/people", personHandler.ListPeopleByOrganization)
			organizations.GET("/:id/events", eventHandler.ListEventsByOrganization)
			organizations.GET("/:id/solutions", solutionHandler.ListSolutions)
		}

		people := v1.Group("/people")
		{
			people.POST("", personHandler.CreatePerson)
			people.GET("/:id", personHandler.GetPerson)
			people.PUT("/:id", personHandler.UpdatePerson)
			people.DELETE("/:id", personHandler.DeletePerson)
			people.POST("/:id/time-off", personHandler.AddTimeOff)
			people.GET("/:id/time-off", personHandler.GetTimeOff)
		}

		v1.DELETE("/time-off/:id", personHandler.DeleteTimeOff)

		events := v1.Group("/events")
		{
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
			events.GET("/:id/assignments", assignmentHandler.GetEventAssignments)
		}

		v1.POST("/solver/solve", solverHandler.Solve)

		solutions := v1.Group("/solutions")
		{
			solutions.GET("/:id", solutionHandler.GetSolution)
			solutions.GET("/:id/assignments", solutionHandler.GetSolutionAssignments)
			solutions.DELETE("/:id", solutionHandler.DeleteSolution)
		}

		v1.POST("/assignments/toggle", assignmentHandler.ToggleAssignment)
	}

	return router
}
