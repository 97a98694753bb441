package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tumpangan/internal/utils"
	"github.com/piresc/tumpangan/services/notification"
)

// NotificationHandler handles HTTP requests for notification operations
type NotificationHandler struct {
	bus notification.Bus
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(bus notification.Bus) *NotificationHandler {
	return &NotificationHandler{bus: bus}
}

// RegisterRoutes registers the notification API routes
func (h *NotificationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/notifications/:recipient", h.ListNotifications)
	e.POST("/notifications/:recipient/read", h.MarkAsRead)
	e.DELETE("/notifications/:recipient", h.ClearNotifications)
	e.POST("/areas/:area/subscribers", h.RegisterAreaInterest)
}

// ListNotifications handles mailbox retrieval requests
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	recipient := c.Param("recipient")
	if recipient == "" {
		return utils.BadRequestResponse(c, "Invalid recipient")
	}

	list := h.bus.GetNotifications(recipient)
	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", list)
}

type markAsReadRequest struct {
	ID string `json:"id"`
}

// MarkAsRead handles read-flag requests
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	recipient := c.Param("recipient")
	if recipient == "" {
		return utils.BadRequestResponse(c, "Invalid recipient")
	}

	var req markAsReadRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.ID == "" {
		return utils.BadRequestResponse(c, "id is required")
	}

	if !h.bus.MarkAsRead(recipient, req.ID) {
		return utils.NotFoundResponse(c, "Notification not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// ClearNotifications handles mailbox clearing requests
func (h *NotificationHandler) ClearNotifications(c echo.Context) error {
	recipient := c.Param("recipient")
	if recipient == "" {
		return utils.BadRequestResponse(c, "Invalid recipient")
	}

	h.bus.Clear(recipient)
	return utils.SuccessResponse(c, http.StatusOK, "Notifications cleared successfully", nil)
}

type areaInterestRequest struct {
	UserID string `json:"user_id"`
}

// RegisterAreaInterest handles area fan-out opt-in requests
func (h *NotificationHandler) RegisterAreaInterest(c echo.Context) error {
	area := c.Param("area")
	if area == "" {
		return utils.BadRequestResponse(c, "Invalid area")
	}

	var req areaInterestRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.UserID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	h.bus.RegisterAreaInterest(area, req.UserID)
	return utils.SuccessResponse(c, http.StatusCreated, "Area interest registered successfully", nil)
}
