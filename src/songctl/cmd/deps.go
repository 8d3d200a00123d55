package cmd

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/songlist-be/src/shared/backup"
	"github.com/veedubyou/songlist-be/src/shared/config"
	"github.com/veedubyou/songlist-be/src/shared/config/dev"
	"github.com/veedubyou/songlist-be/src/shared/config/envvar"
	"github.com/veedubyou/songlist-be/src/shared/config/prod"
	"github.com/veedubyou/songlist-be/src/shared/lib/env"
	"github.com/veedubyou/songlist-be/src/shared/lib/kvstore"
	"google.golang.org/api/option"
)

const memoryStoreSetting = "memory"

// Dependencies are resolved lazily, so commands that don't need
// a store or a bucket never ask for their credentials
type Dependencies struct {
	OpenStore        func() kvstore.Store
	OpenCloudStorage func(ctx context.Context, bucket string, prefix string) (backup.GoogleFileStore, error)
	ServerURL        func() string
	Password         func() string
}

func EnvDependencies() Dependencies {
	return Dependencies{
		OpenStore: func() kvstore.Store {
			return kvstore.Open(storeConfig())
		},
		OpenCloudStorage: func(ctx context.Context, bucket string, prefix string) (backup.GoogleFileStore, error) {
			return newGoogleFileStore(ctx, cloudStorageConfig(bucket), prefix)
		},
		ServerURL: serverURL,
		Password:  config.Password,
	}
}

func storeConfig() config.Store {
	switch env.Get() {
	case env.Production:
		return config.ProdDynamo{
			AccessKeyID:     envvar.MustGet(envvar.AWS_ACCESS_KEY_ID),
			SecretAccessKey: envvar.MustGet(envvar.AWS_SECRET_ACCESS_KEY),
			Region:          prod.DynamoDBRegion,
		}

	case env.Development:
		if envvar.Get(envvar.SONGLIST_STORE) == memoryStoreSetting {
			return config.MemoryStore{}
		}
		return dev.DynamoConfig

	default:
		panic("Unexpected environment")
	}
}

func cloudStorageConfig(bucket string) config.CloudStorage {
	if host := envvar.Get(envvar.GOOGLE_CLOUD_STORAGE_HOST); host != "" {
		return config.LocalCloudStorage{
			HostEndpoint: host,
			BucketName:   bucket,
		}
	}

	return config.ProdCloudStorage{
		SecretKey:  envvar.MustGet(envvar.GOOGLE_CLOUD_KEY),
		BucketName: bucket,
	}
}

func newGoogleFileStore(ctx context.Context, cloudStorageConfig config.CloudStorage, prefix string) (backup.GoogleFileStore, error) {
	switch t := cloudStorageConfig.(type) {
	case config.ProdCloudStorage:
		return backup.NewGoogleFileStore(ctx,
			t.GetBucket(),
			prefix,
			option.WithCredentialsJSON([]byte(t.SecretKey)),
		)

	case config.LocalCloudStorage:
		return backup.NewGoogleFileStore(ctx,
			t.GetBucket(),
			prefix,
			option.WithEndpoint(t.HostEndpoint),
			option.WithAPIKey("fake_api_key"),
		)

	default:
		return backup.GoogleFileStore{}, errors.New("Unrecognized cloud storage config")
	}
}

func serverURL() string {
	if url := envvar.Get(envvar.SONGLIST_SERVER_URL); url != "" {
		return url
	}

	return dev.ServerURL
}
