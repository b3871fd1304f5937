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

// CheeseHandlerParams holds dependencies for CheeseHandler, injected by Fx.
type CheeseHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CheeseHandler serves single catalog entries.
type CheeseHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCheeseHandler is the constructor for CheeseHandler
func NewCheeseHandler(params CheeseHandlerParams) *CheeseHandler {
	return &CheeseHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// AddCheeseRequest represents the request body for adding a catalog entry
type AddCheeseRequest struct {
	Name          string   `json:"name" validate:"required,max=120"`
	Origin        string   `json:"origin" validate:"required,max=120"`
	MilkType      string   `json:"milkType" validate:"required,max=120"`
	Texture       string   `json:"texture" validate:"required,max=120"`
	FlavorProfile []string `json:"flavorProfile" validate:"max=20,dive,max=60"`
	Description   string   `json:"description" validate:"required,max=4000"`
	ImageURL      string   `json:"imageUrl" validate:"omitempty,url"`
	PurchaseURL   string   `json:"purchaseUrl" validate:"omitempty,url"`
}

// GetCheese returns the detail view of a cheese.
func (h *CheeseHandler) GetCheese(c echo.Context) error {
	userID, ok := middleware.GetClientID(c)
	if !ok {
		return errors.New("client identity middleware not installed")
	}

	detail, err := h.catalogUC.GetCheese(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// AddCheese appends a catalog entry. Routed behind RequireOwner.
func (h *CheeseHandler) AddCheese(c echo.Context) error {
	var req AddCheeseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cheese input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", err.Error())
	}

	cheese, err := h.catalogUC.AddCheese(c.Request().Context(), &usecase.NewCheeseInput{
		Name:          req.Name,
		Origin:        req.Origin,
		MilkType:      req.MilkType,
		Texture:       req.Texture,
		FlavorProfile: req.FlavorProfile,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		PurchaseURL:   req.PurchaseURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, cheese)
}

// ShareQR returns a PNG QR code linking to the cheese.
func (h *CheeseHandler) ShareQR(c echo.Context) error {
	png, err := h.catalogUC.ShareCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
