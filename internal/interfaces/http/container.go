// Package http wires repositories, use cases, handlers, and middleware
// into a gin engine.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authUsecases "github.com/tjcichra/tira-backend/internal/application/auth/usecases"
	categoryUsecases "github.com/tjcichra/tira-backend/internal/application/category/usecases"
	appNotification "github.com/tjcichra/tira-backend/internal/application/notification"
	ticketUsecases "github.com/tjcichra/tira-backend/internal/application/ticket/usecases"
	userUsecases "github.com/tjcichra/tira-backend/internal/application/user/usecases"
	"github.com/tjcichra/tira-backend/internal/infrastructure/auth"
	"github.com/tjcichra/tira-backend/internal/infrastructure/config"
	"github.com/tjcichra/tira-backend/internal/infrastructure/content"
	"github.com/tjcichra/tira-backend/internal/infrastructure/email"
	"github.com/tjcichra/tira-backend/internal/infrastructure/notification"
	"github.com/tjcichra/tira-backend/internal/infrastructure/repository"
	"github.com/tjcichra/tira-backend/internal/interfaces/http/handlers"
	"github.com/tjcichra/tira-backend/internal/interfaces/http/middleware"
	"github.com/tjcichra/tira-backend/internal/shared/db"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

// Container holds the wired application. It owns the notification
// queue's lifecycle.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	queue *notification.Queue

	authHandler     *handlers.AuthHandler
	ticketHandler   *handlers.TicketHandler
	userHandler     *handlers.UserHandler
	categoryHandler *handlers.CategoryHandler
	healthHandler   *handlers.HealthHandler

	authMiddleware *middleware.AuthMiddleware
}

func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	// Repositories
	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	assignmentRepo := repository.NewAssignmentRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)

	txManager := db.NewTransactionManager(database)
	contentService := content.NewService()
	hasher := auth.NewSHA256PasswordHasher()

	// Notification pipeline
	sender := email.NewSMTPSender(cfg.Email)
	c.queue = notification.NewQueue(sender, log, cfg.Notification)
	notifier := appNotification.NewNotifier(userRepo, c.queue, contentService, cfg.Email.TicketLinkURL, log)

	// Use cases
	loginUC := authUsecases.NewLoginUseCase(userRepo, sessionRepo, hasher, cfg.Auth.Session, log)
	logoutUC := authUsecases.NewLogoutUseCase(sessionRepo, log)
	authenticateUC := authUsecases.NewAuthenticateUseCase(sessionRepo, log)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, assignmentRepo, userRepo, txManager, notifier, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, userRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, userRepo, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, log)
	addCommentUC := ticketUsecases.NewAddCommentUseCase(commentRepo, ticketRepo, userRepo, contentService, notifier, log)
	updateCommentUC := ticketUsecases.NewUpdateCommentUseCase(commentRepo, contentService, log)
	listCommentsUC := ticketUsecases.NewListCommentsUseCase(commentRepo, userRepo, log)
	assignTicketUC := ticketUsecases.NewAssignTicketUseCase(assignmentRepo, ticketRepo, userRepo, notifier, log)
	replaceAssignmentsUC := ticketUsecases.NewReplaceAssignmentsUseCase(assignmentRepo, ticketRepo, txManager, log)
	listAssignmentsUC := ticketUsecases.NewListAssignmentsUseCase(assignmentRepo, log)

	createUserUC := userUsecases.NewCreateUserUseCase(userRepo, hasher, log)
	getUserUC := userUsecases.NewGetUserUseCase(userRepo, log)
	listUsersUC := userUsecases.NewListUsersUseCase(userRepo, log)
	archiveUserUC := userUsecases.NewArchiveUserUseCase(userRepo, log)
	listUserAssignmentsUC := userUsecases.NewListUserAssignmentsUseCase(assignmentRepo, log)

	createCategoryUC := categoryUsecases.NewCreateCategoryUseCase(categoryRepo, log)
	getCategoryUC := categoryUsecases.NewGetCategoryUseCase(categoryRepo, log)
	listCategoriesUC := categoryUsecases.NewListCategoriesUseCase(categoryRepo, log)
	archiveCategoryUC := categoryUsecases.NewArchiveCategoryUseCase(categoryRepo, log)

	// Handlers and middleware
	c.authHandler = handlers.NewAuthHandler(loginUC, logoutUC, cfg.Auth.Cookie, log)
	c.ticketHandler = handlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC,
		addCommentUC, updateCommentUC, listCommentsUC,
		assignTicketUC, replaceAssignmentsUC, listAssignmentsUC, log)
	c.userHandler = handlers.NewUserHandler(createUserUC, getUserUC, listUsersUC, archiveUserUC, listUserAssignmentsUC, log)
	c.categoryHandler = handlers.NewCategoryHandler(createCategoryUC, getCategoryUC, listCategoriesUC, archiveCategoryUC, log)
	c.healthHandler = handlers.NewHealthHandler(database)
	c.authMiddleware = middleware.NewAuthMiddleware(authenticateUC, log)

	c.registerRoutes()

	return c
}

func (c *Container) registerRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", c.healthHandler.Health)
	c.engine.POST("/login", c.authHandler.Login)

	authed := c.engine.Group("")
	authed.Use(c.authMiddleware.RequireAuth())
	{
		authed.POST("/logout", c.authHandler.Logout)

		authed.POST("/users", c.userHandler.CreateUser)
		authed.GET("/users", c.userHandler.ListUsers)
		authed.GET("/users/:id", c.userHandler.GetUser)
		authed.POST("/users/:id/archive", c.userHandler.ArchiveUser)
		authed.GET("/users/:id/assignments", c.userHandler.ListUserAssignments)

		authed.POST("/categories", c.categoryHandler.CreateCategory)
		authed.GET("/categories", c.categoryHandler.ListCategories)
		authed.GET("/categories/:id", c.categoryHandler.GetCategory)
		authed.POST("/categories/:id/archive", c.categoryHandler.ArchiveCategory)

		authed.POST("/tickets", c.ticketHandler.CreateTicket)
		authed.GET("/tickets", c.ticketHandler.ListTickets)
		authed.GET("/tickets/:id", c.ticketHandler.GetTicket)
		authed.PATCH("/tickets/:id", c.ticketHandler.UpdateTicket)
		authed.GET("/tickets/:id/comments", c.ticketHandler.ListComments)
		authed.POST("/tickets/:id/comments", c.ticketHandler.CreateComment)
		authed.GET("/tickets/:id/assignments", c.ticketHandler.ListTicketAssignments)
		authed.POST("/tickets/:id/assignments", c.ticketHandler.CreateAssignment)
		authed.PUT("/tickets/:id/assignments", c.ticketHandler.ReplaceAssignments)

		authed.GET("/assignments", c.ticketHandler.ListAssignments)
		authed.PATCH("/comments/:id", c.ticketHandler.UpdateComment)
	}
}

// Engine exposes the wired gin engine for the HTTP server.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Start launches background components, currently the notification worker.
func (c *Container) Start() error {
	return c.queue.Start()
}

// Shutdown stops background components, draining queued notifications.
func (c *Container) Shutdown() {
	c.queue.Stop()
}
