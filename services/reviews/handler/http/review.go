package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/utils"
	"github.com/piresc/tumpangan/services/reviews"
)

// ReviewHandler handles HTTP requests for review operations
type ReviewHandler struct {
	moderator reviews.Moderator
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(moderator reviews.Moderator) *ReviewHandler {
	return &ReviewHandler{moderator: moderator}
}

// RegisterRoutes registers the review API routes
func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/reviews", h.SubmitReview)
	e.POST("/reviews/:id/moderate", h.ModerateReview)
	e.GET("/users/:id/reviews", h.ListReviews)
}

type submitReviewRequest struct {
	RideID   string `json:"ride_id"`
	AuthorID string `json:"author_id"`
	TargetID string `json:"target_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// SubmitReview handles review submission requests
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	review, err := h.moderator.Submit(c.Request().Context(), req.RideID, req.AuthorID, req.TargetID, req.Rating, req.Comment)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review submitted successfully", review)
}

type moderateReviewRequest struct {
	Approve bool `json:"approve"`
}

// ModerateReview handles review moderation requests
func (h *ReviewHandler) ModerateReview(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	var req moderateReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	review, err := h.moderator.Moderate(c.Request().Context(), id, req.Approve)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Review moderated successfully", review)
}

// ListReviews handles published review listing requests
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	targetID := c.Param("id")
	if targetID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	list := h.moderator.ListForTarget(c.Request().Context(), targetID)
	return utils.SuccessResponse(c, http.StatusOK, "Reviews retrieved successfully", list)
}
