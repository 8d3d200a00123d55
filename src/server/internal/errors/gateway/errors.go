package gateway

import (
	"fmt"
	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/api"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/auth"
	"github.com/veedubyou/songlist-be/src/server/internal/song/errors"
	"github.com/veedubyou/songlist-be/src/shared/envelope"
	"net/http"
)

var httpStatusCodeMap = map[api.ErrorCode]int{
	api.DefaultErrorCode:            http.StatusInternalServerError,
	auth.PasswordRequiredCode:       http.StatusUnauthorized,
	auth.WrongPasswordCode:          http.StatusUnauthorized,
	auth.BadAuthorizationHeaderCode: http.StatusUnauthorized,
	songerrors.SongNotFoundCode:     http.StatusNotFound,
	songerrors.BadSongDataCode:      http.StatusBadRequest,
	songerrors.BadQueryCode:         http.StatusBadRequest,
}

func StatusCode(code api.ErrorCode) (int, bool) {
	statusCode, ok := httpStatusCodeMap[code]
	return statusCode, ok
}

func ErrorResponse(c echo.Context, err *api.Error) error {
	statusCode, ok := StatusCode(err.ErrorCode)
	if !ok {
		msg := fmt.Sprintf("Error code %s has no HTTP status code mapping", err.ErrorCode)
		panic(msg)
	}

	// client errors carry the message meant for the user,
	// server errors carry what actually went wrong
	errorText := err.UserMessage
	if statusCode >= http.StatusInternalServerError {
		log.WithError(err.InternalError).
			WithField("code", err.ErrorCode).
			Error(err.UserMessage)
		errorText = err.Error()
	}

	return c.JSON(statusCode, envelope.Error(string(err.ErrorCode), errorText))
}

func DataResponse[T any](c echo.Context, statusCode int, data T) error {
	return c.JSON(statusCode, envelope.Data(data))
}

func MessageResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, envelope.Message(message))
}
