package http

import (
	"github.com/Jupiter-12/kanban/internal/adapter/http/handlers"
	"github.com/Jupiter-12/kanban/internal/adapter/http/middleware"
	"github.com/Jupiter-12/kanban/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Projects *handlers.ProjectHandler
	Columns  *handlers.ColumnHandler
	Tasks    *handlers.TaskHandler
	Comments *handlers.CommentHandler
	Users    *handlers.UserHandler
}

func RegisterRoutes(r *gin.Engine, authService ports.AuthService, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.GET("/auth/me", h.Auth.Me)

		authed.POST("/projects", h.Projects.Create)
		authed.GET("/projects", h.Projects.List)
		authed.GET("/projects/:id", h.Projects.Get)
		authed.GET("/projects/:id/board", h.Projects.GetBoard)
		authed.PUT("/projects/:id", h.Projects.Update)
		authed.DELETE("/projects/:id", h.Projects.Delete)
		authed.POST("/projects/:id/columns", h.Columns.Create)

		// Registered before /columns/:id so the literal segment wins.
		authed.PUT("/columns/reorder", h.Columns.Reorder)
		authed.PUT("/columns/:id", h.Columns.Rename)
		authed.DELETE("/columns/:id", h.Columns.Delete)
		authed.POST("/columns/:id/tasks", h.Tasks.Create)

		authed.PUT("/tasks/:id", h.Tasks.Update)
		authed.DELETE("/tasks/:id", h.Tasks.Delete)
		authed.PUT("/tasks/:id/move", h.Tasks.Move)
		authed.GET("/tasks/:id/comments", h.Comments.ListByTask)
		authed.POST("/tasks/:id/comments", h.Comments.Create)
		authed.DELETE("/comments/:id", h.Comments.Delete)

		authed.GET("/users", h.Users.ListActive)
		authed.GET("/users/all", h.Users.ListAll)
		authed.PUT("/users/:id/role", h.Users.ChangeRole)
		authed.PUT("/users/:id/active", h.Users.SetActive)
		authed.DELETE("/users/:id", h.Users.Delete)
	}
}
