package songclient

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/songlist-be/src/shared/envelope"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"github.com/veedubyou/songlist-be/src/shared/song/query"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to the song list HTTP API. Mutations send the password
// it was built with, reads don't need one
type Client struct {
	baseURL    string
	password   string
	httpClient *http.Client
}

func NewClient(baseURL string, password string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		password:   password,
		httpClient: httpClient,
	}
}

func (c Client) ListSongs(ctx context.Context, query songquery.Query) ([]songentity.Song, error) {
	params := url.Values{}
	setParam(params, "name", query.Name)
	setParam(params, "singer", query.Singer)
	setParam(params, "tag", query.Tag)
	if query.FeaturedOnly {
		params.Set("featured", "true")
	}
	setParam(params, "sort", string(query.Order))

	raw, err := c.do(ctx, http.MethodGet, "/songs", params, nil, false)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list songs")
	}

	songs := []songentity.Song{}
	if err := decodeData(raw, &songs); err != nil {
		return nil, err
	}

	return songs, nil
}

func (c Client) GetSong(ctx context.Context, songID string) (songentity.Song, error) {
	raw, err := c.do(ctx, http.MethodGet, songPath(songID), nil, nil, false)
	if err != nil {
		return songentity.Song{}, errors.Wrapf(err, "Failed to get song %s", songID)
	}

	song := songentity.Song{}
	err = decodeData(raw, &song)
	return song, err
}

func (c Client) CreateSong(ctx context.Context, input songentity.SongInput) (songentity.Song, error) {
	raw, err := c.do(ctx, http.MethodPost, "/songs", nil, input, true)
	if err != nil {
		return songentity.Song{}, errors.Wrap(err, "Failed to create song")
	}

	song := songentity.Song{}
	err = decodeData(raw, &song)
	return song, err
}

func (c Client) UpdateSong(ctx context.Context, songID string, input songentity.SongInput) (songentity.Song, error) {
	raw, err := c.do(ctx, http.MethodPut, songPath(songID), nil, input, true)
	if err != nil {
		return songentity.Song{}, errors.Wrapf(err, "Failed to update song %s", songID)
	}

	song := songentity.Song{}
	err = decodeData(raw, &song)
	return song, err
}

// DeleteSong returns the server's confirmation message
func (c Client) DeleteSong(ctx context.Context, songID string) (string, error) {
	raw, err := c.do(ctx, http.MethodDelete, songPath(songID), nil, nil, true)
	if err != nil {
		return "", errors.Wrapf(err, "Failed to delete song %s", songID)
	}

	return raw.Message, nil
}

func (c Client) VerifyPassword(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/verify", nil, nil, true)
	return errors.Wrap(err, "Failed to verify password")
}

func (c Client) do(ctx context.Context, method string, path string, params url.Values, body any, authorized bool) (envelope.Raw, error) {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return envelope.Raw{}, errors.Wrap(err, "Failed to encode request body")
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	request, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return envelope.Raw{}, errors.Wrap(err, "Failed to build request")
	}

	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	if authorized {
		request.Header.Set("Authorization", "Bearer "+c.password)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return envelope.Raw{}, errors.Wrapf(err, "Request %s %s failed", method, path)
	}
	defer response.Body.Close()

	raw := envelope.Raw{}
	if err := json.NewDecoder(response.Body).Decode(&raw); err != nil {
		return envelope.Raw{}, errors.Wrapf(err, "Failed to decode response with status %d", response.StatusCode)
	}

	if !raw.Success {
		return envelope.Raw{}, &APIError{
			StatusCode: response.StatusCode,
			Code:       raw.Code,
			Message:    raw.Error,
		}
	}

	return raw, nil
}

func decodeData(raw envelope.Raw, target any) error {
	if err := json.Unmarshal(raw.Data, target); err != nil {
		return errors.Wrap(err, "Failed to decode response data")
	}

	return nil
}

func songPath(songID string) string {
	return "/songs/" + url.PathEscape(songID)
}

func setParam(params url.Values, key string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		params.Set(key, value)
	}
}
