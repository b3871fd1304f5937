package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "cheeserater/internal/delivery/context"
	"cheeserater/internal/delivery/http/middleware"
	"cheeserater/internal/delivery/http/response"
	"cheeserater/internal/errors"
	"cheeserater/internal/usecase"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const streamHeartbeat = 15 * time.Second

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the derived catalog list.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// Browse returns the list and facets for the selection in the query string.
func (h *CatalogHandler) Browse(c echo.Context) error {
	userID, ok := middleware.GetClientID(c)
	if !ok {
		return errors.New("client identity middleware not installed")
	}

	selection, err := decodeSelection(c.QueryParams())
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid catalog query")
	}

	result, err := h.catalogUC.Browse(c.Request().Context(), userID, selection)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Stream pushes a fresh result as a server-sent event whenever the catalog,
// the reviews or the caller's profile change.
func (h *CatalogHandler) Stream(c echo.Context) error {
	userID, ok := middleware.GetClientID(c)
	if !ok {
		return errors.New("client identity middleware not installed")
	}

	selection, err := decodeSelection(c.QueryParams())
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid catalog query")
	}

	ctx := c.Request().Context()
	results, err := h.catalogUC.WatchBrowse(ctx, userID, selection)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := c.Response()
	// The server write timeout would otherwise cut long-lived streams
	_ = http.NewResponseController(res).SetWriteDeadline(time.Time{})
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	logger := deliverycontext.LoggerOr(ctx, h.logger)
	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case result, ok := <-results:
			if !ok {
				return nil
			}
			payload, err := sonic.ConfigStd.Marshal(result)
			if err != nil {
				logger.ErrorContext(ctx, "Failed to encode catalog event", slog.Any("error", err))

				return nil
			}
			if _, err := res.Write(sseEvent("catalog", payload)); err != nil {
				return nil
			}
			res.Flush()
		case <-heartbeat.C:
			if _, err := res.Write([]byte(": ping\n\n")); err != nil {
				return nil
			}
			res.Flush()
		case <-ctx.Done():
			return nil
		}
	}
}

func sseEvent(name string, data []byte) []byte {
	out := make([]byte, 0, len(name)+len(data)+16)
	out = append(out, "event: "...)
	out = append(out, name...)
	out = append(out, "\ndata: "...)
	out = append(out, data...)

	return append(out, "\n\n"...)
}
