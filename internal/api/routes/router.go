package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-platform/internal/api/handlers"
	"github.com/linskybing/form-platform/internal/api/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/form-platform/docs"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// browsers cannot set headers on a websocket handshake
	r.GET("/ws/notifications", middleware.WebSocketAuthMiddleware(), h.Notification.Stream)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		forms := auth.Group("/forms")
		{
			forms.POST("", h.Form.CreateForm)
			forms.GET("", h.Form.ListForms)
			forms.GET("/:id", h.Form.GetForm)
			forms.PUT("/:id", h.Form.UpdateForm)
			forms.DELETE("/:id", h.Form.DeleteForm)
			forms.GET("/:id/overview", h.Form.Overview)
			forms.GET("/:id/responses", h.Form.IndividualResponses)
		}

		responses := auth.Group("/form-responses")
		{
			responses.POST("", h.Response.CreateResponse)
			responses.GET("", h.Response.ListResponses)
			responses.GET("/:id", h.Response.GetResponse)
			responses.PUT("/:id", h.Response.UpdateResponse)
			responses.DELETE("/:id", h.Response.DeleteResponse)
		}

		tasks := auth.Group("/tasks")
		{
			tasks.POST("", h.Task.CreateTask)
			tasks.GET("", h.Task.ListTasks)
			tasks.GET("/:id", h.Task.GetTask)
			tasks.PATCH("/:id", h.Task.UpdateTask)
			tasks.DELETE("/:id", h.Task.DeleteTask)
			tasks.POST("/:id/assign", h.Task.AssignUsers)
			tasks.DELETE("/:id/assign", h.Task.UnassignUsers)
			tasks.GET("/:id/assignments", h.Task.ListAssignments)
			tasks.POST("/:id/notify", h.Task.NotifyAssigned)
		}

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.ListNotifications)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.RequireRoles("admin", "root"), h.Audit.GetAuditLogs)
		}
	}
}
