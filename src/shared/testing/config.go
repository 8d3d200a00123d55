package testing

import (
	server_app "github.com/veedubyou/songlist-be/src/server/application"
	"github.com/veedubyou/songlist-be/src/shared/config"
	"github.com/veedubyou/songlist-be/src/shared/config/dev"
	"os"
)

const (
	Password          = "test-password"
	DynamoTestHostVar = "DYNAMO_TEST_HOST"
)

func ServerConfig(dbRegion string) server_app.Config {
	return server_app.Config{
		StoreConfig:        DynamoConfig(dbRegion),
		Password:           Password,
		CORSAllowedOrigins: []string{"*"},
		Port:               ServerPort,
		Log:                false,
	}
}

func MemoryServerConfig() server_app.Config {
	return server_app.Config{
		StoreConfig:        config.MemoryStore{},
		Password:           Password,
		CORSAllowedOrigins: []string{"*"},
		Port:               ServerPort,
		Log:                false,
	}
}

// DynamoDB
const (
	DynamoAccessKeyID     = dev.DynamoAccessKeyID
	DynamoSecretAccessKey = dev.DynamoSecretAccessKey
)

func DynamoDBHost() string {
	return os.Getenv(DynamoTestHostVar)
}

func DynamoAvailable() bool {
	return DynamoDBHost() != ""
}

func DynamoConfig(region string) config.LocalDynamo {
	return config.LocalDynamo{
		AccessKeyID:     DynamoAccessKeyID,
		SecretAccessKey: DynamoSecretAccessKey,
		Region:          region,
		Host:            DynamoDBHost(),
	}
}

// Server
const (
	ServerPort = ":5010"
)
