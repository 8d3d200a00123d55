package backup

import (
	"cloud.google.com/go/storage"
	"context"
	"github.com/cockroachdb/errors"
	"google.golang.org/api/option"
	"path"
	"strings"
)

const (
	jsonContentType = "application/json"
	gsScheme        = "gs://"
)

var _ FileStore = GoogleFileStore{}

// GoogleFileStore writes backups into a Cloud Storage bucket, under an optional prefix
type GoogleFileStore struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGoogleFileStore(ctx context.Context, bucket string, prefix string, options ...option.ClientOption) (GoogleFileStore, error) {
	if bucket == "" {
		return GoogleFileStore{}, errors.New("No bucket given for cloud storage backups")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return GoogleFileStore{}, errors.Wrap(err, "Failed to create cloud storage client")
	}

	return GoogleFileStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

func (g GoogleFileStore) WriteFile(ctx context.Context, name string, contents []byte) (string, error) {
	objectName := path.Join(g.prefix, name)

	writer := g.client.Bucket(g.bucket).Object(objectName).NewWriter(ctx)
	writer.ContentType = jsonContentType

	if _, err := writer.Write(contents); err != nil {
		_ = writer.Close()
		return "", errors.Wrapf(err, "Failed to upload %s", objectName)
	}

	// the upload only completes on close
	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "Failed to finish uploading %s", objectName)
	}

	return gsURL(g.bucket, objectName), nil
}

func (g GoogleFileStore) Close() error {
	return g.client.Close()
}

// ParseGSURL splits gs://bucket/some/prefix into its bucket and prefix
func ParseGSURL(url string) (string, string, bool) {
	if !strings.HasPrefix(url, gsScheme) {
		return "", "", false
	}

	rest := strings.TrimPrefix(url, gsScheme)
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", false
	}

	return bucket, strings.Trim(prefix, "/"), true
}
