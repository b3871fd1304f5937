package handler

import (
	"log/slog"
	"net/http"

	"cheeserater/internal/delivery/http/middleware"
	"cheeserater/internal/delivery/http/response"
	"cheeserater/internal/domain/entity"
	"cheeserater/internal/errors"
	"cheeserater/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ProfileResponse is the profile plus caller capabilities.
type ProfileResponse struct {
	UserID string `json:"userId"`
	entity.UserProfile
	IsOwner bool `json:"isOwner"`
}

// WishlistToggleResponse reports the profile after a toggle.
type WishlistToggleResponse struct {
	Profile entity.UserProfile `json:"profile"`
	Added   bool               `json:"added"`
}

// NicknameRequest represents the request body for setting a nickname
type NicknameRequest struct {
	Nickname string `json:"nickname" validate:"required,max=40"`
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetClientID(c)
	if !ok {
		return errors.New("client identity middleware not installed")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		UserID:      userID,
		UserProfile: profile,
		IsOwner:     middleware.IsOwner(c),
	})
}

// SetNickname stores the caller's nickname.
func (h *ProfileHandler) SetNickname(c echo.Context) error {
	userID, ok := middleware.GetClientID(c)
	if !ok {
		return errors.New("client identity middleware not installed")
	}

	var req NicknameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nickname input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", err.Error())
	}

	profile, err := h.profileUC.SetNickname(c.Request().Context(), userID, req.Nickname)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		UserID:      userID,
		UserProfile: profile,
		IsOwner:     middleware.IsOwner(c),
	})
}

// ToggleWishlist adds or removes a cheese from the caller's wishlist.
func (h *ProfileHandler) ToggleWishlist(c echo.Context) error {
	userID, ok := middleware.GetClientID(c)
	if !ok {
		return errors.New("client identity middleware not installed")
	}

	profile, added, err := h.profileUC.ToggleWishlist(c.Request().Context(), userID, c.Param("cheeseId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, WishlistToggleResponse{
		Profile: profile,
		Added:   added,
	})
}
