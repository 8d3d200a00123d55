package application

import (
	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/veedubyou/songlist-be/src/server/internal/lib/request"
	"github.com/veedubyou/songlist-be/src/server/internal/password"
	"github.com/veedubyou/songlist-be/src/server/internal/song/gateway"
	"github.com/veedubyou/songlist-be/src/server/internal/song/usecase"
	"github.com/veedubyou/songlist-be/src/shared/config"
	"github.com/veedubyou/songlist-be/src/shared/lib/kvstore"
	"github.com/veedubyou/songlist-be/src/shared/song/storage"
	"net/http"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
)

type App struct {
	echo *echo.Echo
	port string
}

type Config struct {
	StoreConfig        config.Store
	Password           string
	CORSAllowedOrigins []string
	Port               string
	Log                bool
}

func NewApp(config Config) App {
	e := echo.New()
	e.HideBanner = true

	if config.Log {
		e.Use(middleware.Logger())
	}

	corsMiddleware := makeCorsMiddleware(config)

	handleRoute := func(method HTTPMethod, path string, handlerFunc echo.HandlerFunc) {
		params := func() (string, echo.HandlerFunc, echo.MiddlewareFunc) {
			return path, handlerFunc, corsMiddleware
		}

		e.OPTIONS(params())

		switch method {
		case GET:
			e.GET(params())
		case POST:
			e.POST(params())
		case PUT:
			e.PUT(params())
		case DELETE:
			e.DELETE(params())
		default:
			panic("unhandled http method!")
		}
	}

	store := kvstore.Open(config.StoreConfig)
	gate := password.NewGate(config.Password)

	passwordGateway := password.NewGateway(gate)
	songGateway := makeSongGateway(store, gate)

	// health check
	handleRoute(GET, "/health-check", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// password check for clients before they offer edits
	handleRoute(POST, "/auth/verify", passwordGateway.Verify)

	// song routes
	handleRoute(GET, "/songs", songGateway.ListSongs)
	handleRoute(POST, "/songs", songGateway.CreateSong)
	handleRoute(GET, "/songs/:id", func(c echo.Context) error {
		songID := c.Param("id")
		return songGateway.GetSong(c, songID)
	})
	handleRoute(PUT, "/songs/:id", func(c echo.Context) error {
		songID := c.Param("id")
		return songGateway.UpdateSong(c, songID)
	})
	handleRoute(DELETE, "/songs/:id", func(c echo.Context) error {
		songID := c.Param("id")
		return songGateway.DeleteSong(c, songID)
	})

	return App{
		echo: e,
		port: config.Port,
	}
}

// Handler serves the routes without binding a port
func (a *App) Handler() http.Handler {
	return a.echo
}

func (a *App) Start() error {
	err := a.echo.Start(a.port)
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "Couldn't start echo server")
	}

	return nil
}

func (a *App) Stop() error {
	err := a.echo.Close()
	if err != nil {
		return errors.Wrap(err, "Failed to stop echo server")
	}

	return nil
}

func makeSongGateway(store kvstore.Store, gate password.Gate) songgateway.Gateway {
	songDB := songstorage.NewDB(store)
	songUsecase := songusecase.NewUsecase(songDB, gate)
	return songgateway.NewGateway(songUsecase)
}

func makeCorsMiddleware(config Config) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: config.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, request.PasswordHeader},
	})
}
