package password

import (
	"crypto/subtle"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/api"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/auth"
)

// Gate guards mutating operations behind one shared password
type Gate struct {
	expected []byte
}

func NewGate(expected string) Gate {
	if expected == "" {
		panic("Password gate needs a non empty password")
	}

	return Gate{
		expected: []byte(expected),
	}
}

func (g Gate) Verify(supplied string) *api.Error {
	if supplied == "" {
		return api.CommitError(
			errors.New("No password supplied"),
			auth.PasswordRequiredCode,
			"A password is required for this action")
	}

	if subtle.ConstantTimeCompare([]byte(supplied), g.expected) != 1 {
		return api.CommitError(
			errors.New("Supplied password doesn't match"),
			auth.WrongPasswordCode,
			"Wrong password")
	}

	return nil
}
