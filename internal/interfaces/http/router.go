// Package http wires the HTTP surface: middleware, handlers and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	folioUsecases "folios/internal/application/folio/usecases"
	roleApp "folios/internal/application/role"
	userApp "folios/internal/application/user"
	"folios/internal/infrastructure/auth"
	"folios/internal/infrastructure/config"
	"folios/internal/infrastructure/database"
	"folios/internal/infrastructure/repository"
	folioHandler "folios/internal/interfaces/http/handlers/folio"
	roleHandler "folios/internal/interfaces/http/handlers/role"
	userHandler "folios/internal/interfaces/http/handlers/user"
	"folios/internal/interfaces/http/middleware"
	"folios/internal/shared/logger"
	"folios/internal/shared/utils"
)

type Router struct {
	engine       *gin.Engine
	db           database.Engine
	folioHandler *folioHandler.Handler
	userHandler  *userHandler.Handler
	roleHandler  *roleHandler.Handler
	logger       logger.Interface
}

// NewRouter builds the full dependency graph: repositories over the storage
// engine, use cases and services on top, handlers at the edge.
func NewRouter(cfg *config.Config, db database.Engine, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	folioRepo := repository.NewFolioRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	fh := folioHandler.NewHandler(
		folioUsecases.NewListFoliosUseCase(folioRepo, log),
		folioUsecases.NewGetFolioUseCase(folioRepo, assignmentRepo, responseRepo, log),
		folioUsecases.NewCreateFolioUseCase(folioRepo, log),
		folioUsecases.NewUpdateFolioUseCase(folioRepo, log),
		folioUsecases.NewDeleteFolioUseCase(folioRepo, log),
		folioUsecases.NewAssignResponsibleUseCase(folioRepo, assignmentRepo, userRepo, log),
		folioUsecases.NewUnassignResponsibleUseCase(assignmentRepo, log),
		folioUsecases.NewAddResponseUseCase(folioRepo, responseRepo, userRepo, log),
		log,
	)

	uh := userHandler.NewHandler(userApp.NewService(userRepo, assignmentRepo, hasher, log), log)
	rh := roleHandler.NewHandler(roleApp.NewService(roleRepo, log), log)

	return &Router{
		engine:       engine,
		db:           db,
		folioHandler: fh,
		userHandler:  uh,
		roleHandler:  rh,
		logger:       log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthCheck)

	api := r.engine.Group("/api")
	r.setupFolioRoutes(api)
	r.setupUserRoutes(api)
	r.setupRoleRoutes(api)
}

func (r *Router) setupFolioRoutes(api *gin.RouterGroup) {
	folios := api.Group("/folios")
	{
		folios.GET("", r.folioHandler.ListFolios)
		folios.POST("", r.folioHandler.CreateFolio)
		folios.GET("/:id", r.folioHandler.GetFolio)
		folios.PUT("/:id", r.folioHandler.UpdateFolio)
		folios.DELETE("/:id", r.folioHandler.DeleteFolio)

		folios.POST("/:id/assignees", r.folioHandler.AssignResponsible)
		folios.DELETE("/:id/assignees/:userId", r.folioHandler.UnassignResponsible)
		folios.POST("/:id/responses", r.folioHandler.AddResponse)
	}
}

func (r *Router) setupUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.POST("/login", r.userHandler.Login)

		users.GET("", r.userHandler.ListUsers)
		users.POST("", r.userHandler.CreateUser)
		users.GET("/:id", r.userHandler.GetUser)
		users.PUT("/:id", r.userHandler.UpdateUser)
		users.DELETE("/:id", r.userHandler.DeleteUser)
		users.GET("/:id/assignments", r.userHandler.ListAssignments)
	}
}

func (r *Router) setupRoleRoutes(api *gin.RouterGroup) {
	roles := api.Group("/roles")
	{
		roles.GET("", r.roleHandler.ListRoles)
		roles.POST("", r.roleHandler.CreateRole)
		roles.GET("/:id", r.roleHandler.GetRole)
		roles.PUT("/:id", r.roleHandler.UpdateRole)
		roles.DELETE("/:id", r.roleHandler.DeleteRole)
	}
}

func (r *Router) healthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status":  "ok",
		"dialect": r.db.Dialect(),
	})
}

// Handler exposes the underlying gin engine for the HTTP server.
func (r *Router) Handler() http.Handler {
	return r.engine
}
