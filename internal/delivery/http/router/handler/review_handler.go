package handler

import (
	"log/slog"
	"net/http"

	"cheeserater/internal/delivery/http/middleware"
	"cheeserater/internal/delivery/http/response"
	"cheeserater/internal/errors"
	"cheeserater/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ReviewRequest represents the request body for submitting or editing a review.
// Rating is range-checked by the use case so clients get INVALID_RATING.
type ReviewRequest struct {
	Rating int    `json:"rating"`
	Notes  string `json:"notes" validate:"max=2000"`
}

// SubmitReview creates or replaces the caller's review of a cheese.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	userID, ok := middleware.GetClientID(c)
	if !ok {
		return errors.New("client identity middleware not installed")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", err.Error())
	}

	result, err := h.reviewUC.SubmitReview(c.Request().Context(), userID, &usecase.SubmitReviewInput{
		CheeseID: c.Param("id"),
		Rating:   req.Rating,
		Notes:    req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, result)
}

// UpdateReview edits a review written by the caller.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, ok := middleware.GetClientID(c)
	if !ok {
		return errors.New("client identity middleware not installed")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", err.Error())
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), userID, c.Param("id"), req.Rating, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}

// ListReviews returns a cheese's reviews, newest first.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}
