package main

import (
	"github.com/apex/log"
	"github.com/veedubyou/songlist-be/src/server/application"
	"github.com/veedubyou/songlist-be/src/shared/config"
	"github.com/veedubyou/songlist-be/src/shared/config/dev"
	"github.com/veedubyou/songlist-be/src/shared/config/envvar"
	"github.com/veedubyou/songlist-be/src/shared/config/prod"
	"github.com/veedubyou/songlist-be/src/shared/lib/env"
	"strings"
)

const memoryStoreSetting = "memory"

func main() {
	config.LoadEnvFiles()

	var appConfig application.Config

	switch env.Get() {
	case env.Production:
		commaSeparatedOrigins := envvar.MustGet(envvar.ALLOWED_FE_ORIGINS)
		allowedOrigins := strings.Split(commaSeparatedOrigins, ",")

		appConfig = application.Config{
			StoreConfig: config.ProdDynamo{
				AccessKeyID:     envvar.MustGet(envvar.AWS_ACCESS_KEY_ID),
				SecretAccessKey: envvar.MustGet(envvar.AWS_SECRET_ACCESS_KEY),
				Region:          prod.DynamoDBRegion,
			},
			Password:           config.Password(),
			CORSAllowedOrigins: allowedOrigins,
			Port:               ":5000",
			Log:                true,
		}
	case env.Development:
		var storeConfig config.Store = dev.DynamoConfig
		if envvar.Get(envvar.SONGLIST_STORE) == memoryStoreSetting {
			log.Info("Keeping songs in memory, nothing will survive a restart")
			storeConfig = config.MemoryStore{}
		}

		appConfig = application.Config{
			StoreConfig:        storeConfig,
			Password:           config.Password(),
			CORSAllowedOrigins: []string{"*"},
			Port:               ":5000",
			Log:                true,
		}

	default:
		panic("Unexpected environment")
	}

	app := application.NewApp(appConfig)
	if err := app.Start(); err != nil {
		panic(err)
	}
}
