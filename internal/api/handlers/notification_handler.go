package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/api/middleware"
	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/pkg/response"
	"github.com/linskybing/form-platform/pkg/utils"
	"github.com/linskybing/form-platform/pkg/ws"
)

type NotificationHandler struct {
	svc      *application.NotificationService
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

func NewNotificationHandler(svc *application.NotificationService, hub *ws.Hub) *NotificationHandler {
	return &NotificationHandler{
		svc: svc,
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || middleware.AllowOrigin(origin, config.CORSAllowedOrigins)
			},
		},
	}
}

// ListNotifications godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param unread_only query bool false "Only unread"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=[]notification.Notification}
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	page, limit := utils.ParsePagination(c)
	items, total, err := h.svc.List(rc, c.Query("unread_only") == "true", page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paged(c, items, total, page, limit)
}

// MarkRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Envelope{data=response.MessageResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "notification")
	if !ok {
		return
	}
	if err := h.svc.MarkRead(rc, id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, response.MessageResponse{Message: "Notification marked read"})
}

// Stream godoc
// @Summary Websocket stream of the caller's new notifications
// @Tags notifications
// @Security BearerAuth
// @Param token query string false "JWT when headers cannot be set"
// @Router /ws/notifications [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] upgrade for user %d failed: %v", rc.UserID, err)
		return
	}
	client := h.hub.Register(rc.UserID)
	h.hub.Serve(conn, client)
}
