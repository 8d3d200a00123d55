package songgateway

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/api"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/gateway"
	"github.com/veedubyou/songlist-be/src/server/internal/lib/request"
	"github.com/veedubyou/songlist-be/src/server/internal/song/errors"
	"github.com/veedubyou/songlist-be/src/server/internal/song/usecase"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"github.com/veedubyou/songlist-be/src/shared/song/query"
	"net/http"
	"strconv"
)

const acceptLanguageHeader = "Accept-Language"

type Gateway struct {
	usecase songusecase.Usecase
}

func NewGateway(usecase songusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) ListSongs(c echo.Context) error {
	ctx := request.Context(c)

	query, apiErr := parseQuery(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	songs, apiErr := g.usecase.ListSongs(ctx, query)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return gateway.DataResponse(c, http.StatusOK, songs)
}

func (g Gateway) GetSong(c echo.Context, songID string) error {
	ctx := request.Context(c)

	song, apiErr := g.usecase.GetSong(ctx, songID)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return gateway.DataResponse(c, http.StatusOK, song)
}

func (g Gateway) CreateSong(c echo.Context) error {
	ctx := request.Context(c)

	suppliedPassword, apiErr := request.Password(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	input, apiErr := bindSongInput(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	createdSong, apiErr := g.usecase.CreateSong(ctx, suppliedPassword, input)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return gateway.DataResponse(c, http.StatusCreated, createdSong)
}

func (g Gateway) UpdateSong(c echo.Context, songID string) error {
	ctx := request.Context(c)

	suppliedPassword, apiErr := request.Password(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	input, apiErr := bindSongInput(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	updatedSong, apiErr := g.usecase.UpdateSong(ctx, suppliedPassword, songID, input)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return gateway.DataResponse(c, http.StatusOK, updatedSong)
}

func (g Gateway) DeleteSong(c echo.Context, songID string) error {
	ctx := request.Context(c)

	suppliedPassword, apiErr := request.Password(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	apiErr = g.usecase.DeleteSong(ctx, suppliedPassword, songID)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return gateway.MessageResponse(c, "Song deleted successfully")
}

func bindSongInput(c echo.Context) (songentity.SongInput, *api.Error) {
	input := songentity.SongInput{}
	err := c.Bind(&input)
	if err != nil {
		err = errors.Wrap(err, "Failed to bind request body to song input")
		return songentity.SongInput{}, api.CommitError(err,
			songerrors.BadSongDataCode,
			"The song data received was malformed")
	}

	return input, nil
}

func parseQuery(c echo.Context) (songquery.Query, *api.Error) {
	order, err := songquery.ParseOrder(c.QueryParam("sort"))
	if err != nil {
		return songquery.Query{}, api.CommitError(err,
			songerrors.BadQueryCode,
			"Sort has to be either recent or canonical")
	}

	featuredOnly := false
	if featured := c.QueryParam("featured"); featured != "" {
		featuredOnly, err = strconv.ParseBool(featured)
		if err != nil {
			err = errors.Wrap(err, "Failed to parse featured query param")
			return songquery.Query{}, api.CommitError(err,
				songerrors.BadQueryCode,
				"Featured has to be true or false")
		}
	}

	return songquery.Query{
		Filters: songquery.Filters{
			Name:         c.QueryParam("name"),
			Singer:       c.QueryParam("singer"),
			Tag:          c.QueryParam("tag"),
			FeaturedOnly: featuredOnly,
		},
		Order:  order,
		Locale: songquery.ParseLocale(c.Request().Header.Get(acceptLanguageHeader)),
	}, nil
}
