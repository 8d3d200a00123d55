package backup

import (
	"context"
	"fmt"
	"github.com/cockroachdb/errors"
	"os"
	"path/filepath"
)

// FileStore is somewhere a backup document can be written.
// WriteFile returns where the file ended up
type FileStore interface {
	WriteFile(ctx context.Context, name string, contents []byte) (string, error)
}

var _ FileStore = LocalFileStore{}

type LocalFileStore struct {
	Dir string
}

func (l LocalFileStore) WriteFile(_ context.Context, name string, contents []byte) (string, error) {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "Failed to create backup directory %s", l.Dir)
	}

	filePath := filepath.Join(l.Dir, name)
	if err := os.WriteFile(filePath, contents, 0o644); err != nil {
		return "", errors.Wrapf(err, "Failed to write backup file %s", filePath)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return filePath, nil
	}

	return absPath, nil
}

func gsURL(bucket string, objectName string) string {
	return fmt.Sprintf("%s%s/%s", gsScheme, bucket, objectName)
}
