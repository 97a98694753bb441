package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/utils"
	"github.com/piresc/tumpangan/services/rides"
)

// RideHandler handles HTTP requests for ride operations
type RideHandler struct {
	store rides.RideStore
}

// NewRideHandler creates a new ride handler
func NewRideHandler(store rides.RideStore) *RideHandler {
	return &RideHandler{store: store}
}

// RegisterRoutes registers the ride API routes
func (h *RideHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/rides", h.PublishRide)
	e.GET("/rides", h.ListRides)
	e.GET("/rides/:id", h.GetRide)
	e.PATCH("/rides/:id", h.EditRide)
	e.DELETE("/rides/:id", h.RemoveRide)

	e.POST("/rides/:id/reservations", h.ReserveSeat)
	e.POST("/rides/:id/reservations/confirm", h.ConfirmReservation)
	e.DELETE("/rides/:id/reservations/:passenger_id", h.CancelReservation)

	e.DELETE("/users/:id/rides", h.PurgeUserRides)
}

// PublishRide handles ride publication requests
func (h *RideHandler) PublishRide(c echo.Context) error {
	var req models.PublishRideRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for ride publication",
			logger.ErrorField(err),
			logger.String("endpoint", "PublishRide"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.store.Publish(c.Request().Context(), req)
	if err != nil {
		logger.Warn("Failed to publish ride",
			logger.ErrorField(err),
			logger.String("owner_id", req.OwnerID),
		)
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride published successfully", ride)
}

// ListRides handles ride listing requests
func (h *RideHandler) ListRides(c echo.Context) error {
	list := h.store.GetRides(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", list)
}

// GetRide handles single ride retrieval requests
func (h *RideHandler) GetRide(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.store.GetRide(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// EditRide handles partial ride update requests
func (h *RideHandler) EditRide(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var patch models.RidePatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.store.Edit(c.Request().Context(), id, patch)
	if err != nil {
		logger.Warn("Failed to edit ride",
			logger.ErrorField(err),
			logger.String("ride_id", id),
		)
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride updated successfully", ride)
}

// RemoveRide handles ride removal requests
func (h *RideHandler) RemoveRide(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	if err := h.store.Remove(c.Request().Context(), id); err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride removed successfully", nil)
}

type reserveSeatRequest struct {
	PassengerID string               `json:"passenger_id"`
	Method      models.PaymentMethod `json:"method"`
}

// ReserveSeat handles paid seat reservation requests
func (h *RideHandler) ReserveSeat(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req reserveSeatRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PassengerID == "" {
		return utils.BadRequestResponse(c, "passenger_id is required")
	}

	result, err := h.store.ReserveSeat(c.Request().Context(), id, req.PassengerID, req.Method)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to reserve seat",
			logger.ErrorField(err),
			logger.String("ride_id", id),
			logger.String("passenger_id", req.PassengerID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to reserve seat")
	}
	if !result.OK {
		// Business rejections ride in the payload with a 409.
		return utils.SuccessResponse(c, http.StatusConflict, "Seat not reserved", result)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Seat reserved successfully", result)
}

type confirmReservationRequest struct {
	PassengerID string `json:"passenger_id"`
}

// ConfirmReservation handles chargeless seat allocation requests
func (h *RideHandler) ConfirmReservation(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req confirmReservationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PassengerID == "" {
		return utils.BadRequestResponse(c, "passenger_id is required")
	}

	ride := h.store.ConfirmReservation(c.Request().Context(), id, req.PassengerID)
	if ride == nil {
		return utils.ConflictResponse(c, "Seat could not be confirmed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seat confirmed successfully", ride)
}

// CancelReservation handles seat cancellation requests
func (h *RideHandler) CancelReservation(c echo.Context) error {
	id := c.Param("id")
	passengerID := c.Param("passenger_id")
	if id == "" || passengerID == "" {
		return utils.BadRequestResponse(c, "Invalid ride or passenger ID")
	}

	ride := h.store.CancelReservation(c.Request().Context(), id, passengerID)
	if ride == nil {
		return utils.ConflictResponse(c, "No reservation to cancel")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reservation canceled successfully", ride)
}

// PurgeUserRides handles account-wide ride cleanup requests
func (h *RideHandler) PurgeUserRides(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	h.store.PurgeUserRides(c.Request().Context(), userID)
	return utils.SuccessResponse(c, http.StatusOK, "User rides purged successfully", nil)
}
