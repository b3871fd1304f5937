package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "cheeserater/internal/delivery/context"
	"cheeserater/internal/delivery/http/response"
	domainerrors "cheeserater/internal/domain/errors"
	"cheeserater/internal/errors"

	"github.com/labstack/echo/v4"
)

// echoErrorCodes names the router and middleware failures echo reports.
//
//nolint:gochecknoglobals
var echoErrorCodes = map[int]string{
	http.StatusNotFound:              "NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
}

// ErrorMiddleware is echo's HTTPErrorHandler: it renders every error in the
// API envelope and logs the ones that are the server's fault.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.LoggerOr(c.Request().Context(), m.logger).With(
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.FromAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, ok := echoErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	logger.Error("Unhandled error", slog.Any("error", err))

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
