package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "cheeserater/internal/delivery/context"
	"cheeserater/internal/delivery/http/response"
	"cheeserater/internal/domain/constants"
	domainerrors "cheeserater/internal/domain/errors"
	"cheeserater/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const keyIsOwner = "isOwner"

// OwnerMiddlewareParams holds dependencies for OwnerMiddleware, injected by Fx.
type OwnerMiddlewareParams struct {
	fx.In

	Oracle  service.OwnerOracle
	Metrics service.Metrics
	Logger  *slog.Logger
}

// OwnerMiddleware asks the owner oracle whether the caller may curate the catalog.
type OwnerMiddleware struct {
	oracle  service.OwnerOracle
	metrics service.Metrics
	logger  *slog.Logger
}

// NewOwnerMiddleware is the constructor for OwnerMiddleware.
func NewOwnerMiddleware(params OwnerMiddlewareParams) *OwnerMiddleware {
	return &OwnerMiddleware{
		oracle:  params.Oracle,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Resolve records whether the caller is the owner. Oracle failures are
// logged and treated as "not owner"; they never fail the request.
func (m *OwnerMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(keyIsOwner, false)

		credential := bearerToken(c.Request().Header.Get(constants.OwnerTokenHeader))
		if credential == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		isOwner, err := m.oracle.IsOwner(ctx, credential)
		switch {
		case err != nil:
			m.metrics.OwnerCheck(service.OwnerCheckFailed)
			deliverycontext.LoggerOr(ctx, m.logger).WarnContext(ctx, "Owner check failed",
				slog.Any("error", err),
			)
		case isOwner:
			m.metrics.OwnerCheck(service.OwnerCheckGranted)
			c.Set(keyIsOwner, true)
		default:
			m.metrics.OwnerCheck(service.OwnerCheckDenied)
		}

		return next(c)
	}
}

// RequireOwner rejects callers that Resolve did not mark as the owner.
func (m *OwnerMiddleware) RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsOwner(c) {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Only the owner can change the catalog")
		}

		return next(c)
	}
}

func bearerToken(header string) string {
	if len(header) < len(constants.BearerPrefix) || !strings.EqualFold(header[:len(constants.BearerPrefix)], constants.BearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(constants.BearerPrefix):])
}

// IsOwner reports the outcome of OwnerMiddleware.Resolve.
func IsOwner(c echo.Context) bool {
	isOwner, _ := c.Get(keyIsOwner).(bool)

	return isOwner
}
