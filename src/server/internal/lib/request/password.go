package request

import (
	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/api"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/auth"
	"strings"
)

const PasswordHeader = "X-Songlist-Password"

const bearerScheme = "Bearer"

// Password reads the shared password from the dedicated header,
// falling back to a bearer Authorization header
func Password(c echo.Context) (string, *api.Error) {
	header := c.Request().Header

	if password := header.Get(PasswordHeader); password != "" {
		return password, nil
	}

	authHeader := header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", api.CommitError(
			errors.New("No password header found"),
			auth.PasswordRequiredCode,
			"A password is required for this action")
	}

	scheme, password, found := strings.Cut(authHeader, " ")
	password = strings.TrimSpace(password)
	if !found || !strings.EqualFold(scheme, bearerScheme) || password == "" {
		return "", api.CommitError(
			errors.New("Authorization header is not a bearer password"),
			auth.BadAuthorizationHeaderCode,
			"The password header is malformed")
	}

	return password, nil
}
