package password

import (
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/gateway"
	"github.com/veedubyou/songlist-be/src/server/internal/lib/request"
)

type Gateway struct {
	gate Gate
}

func NewGateway(gate Gate) Gateway {
	return Gateway{
		gate: gate,
	}
}

// Verify lets a client check a password before offering edits
func (g Gateway) Verify(c echo.Context) error {
	supplied, apiErr := request.Password(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	apiErr = g.gate.Verify(supplied)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return gateway.MessageResponse(c, "Password verified")
}
