package auth

import (
	"github.com/veedubyou/songlist-be/src/server/internal/errors/api"
)

const (
	PasswordRequiredCode       = api.ErrorCode("password_required")
	WrongPasswordCode          = api.ErrorCode("wrong_password")
	BadAuthorizationHeaderCode = api.ErrorCode("bad_header")
)
