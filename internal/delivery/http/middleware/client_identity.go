package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cheeserater/config"
	deliverycontext "cheeserater/internal/delivery/context"
	"cheeserater/internal/domain/constants"
	"cheeserater/internal/util"

	"github.com/labstack/echo/v4"
)

const (
	keyClientID = "clientID"

	maxClientIDLength = 128
)

// ClientIdentityMiddleware gives every browser a stable anonymous identity.
type ClientIdentityMiddleware struct {
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// NewClientIdentityMiddleware is the constructor for ClientIdentityMiddleware.
func NewClientIdentityMiddleware(cfg *config.Config) *ClientIdentityMiddleware {
	name := cfg.ClientIdentity.CookieName
	if name == "" {
		name = constants.ClientIDCookie
	}

	return &ClientIdentityMiddleware{
		cookieName: name,
		maxAge:     cfg.ClientIdentity.MaxAge,
		secure:     cfg.ClientIdentity.Secure,
	}
}

// Resolve reads the client id from the cookie or the X-Client-Id header and
// mints a new one when neither carries a usable value.
func (m *ClientIdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		clientID := ""
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			clientID = validClientID(cookie.Value)
		}
		if clientID == "" {
			clientID = validClientID(c.Request().Header.Get(constants.ClientIDHeader))
		}
		if clientID == "" {
			clientID = util.NewID(constants.ClientIDPrefix)
			c.SetCookie(&http.Cookie{
				Name:     m.cookieName,
				Value:    clientID,
				Path:     "/",
				MaxAge:   int(m.maxAge.Seconds()),
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(keyClientID, clientID)

		ctx := c.Request().Context()
		if logger := deliverycontext.Logger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("client_id", clientID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

func validClientID(raw string) string {
	id := strings.TrimSpace(raw)
	if len(id) > maxClientIDLength {
		return ""
	}

	return id
}

// GetClientID returns the identity resolved by ClientIdentityMiddleware.
func GetClientID(c echo.Context) (string, bool) {
	id, ok := c.Get(keyClientID).(string)

	return id, ok && id != ""
}
