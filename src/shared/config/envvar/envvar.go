package envvar

import (
	"fmt"
	"os"
)

const (
	AWS_ACCESS_KEY_ID                = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY            = "AWS_SECRET_ACCESS_KEY"
	ALLOWED_FE_ORIGINS               = "ALLOWED_FE_ORIGINS"
	SONGLIST_PASSWORD                = "SONGLIST_PASSWORD"
	SONGLIST_STORE                   = "SONGLIST_STORE"
	SONGLIST_SERVER_URL              = "SONGLIST_SERVER_URL"
	GOOGLE_CLOUD_KEY                 = "GOOGLE_CLOUD_KEY"
	GOOGLE_CLOUD_STORAGE_HOST        = "GOOGLE_CLOUD_STORAGE_HOST"
)

func MustGet(key string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	if val == "" {
		panic(fmt.Sprintf("Env variable is empty for key %s", key))
	}

	return val
}

// Get returns an empty string for unset variables
func Get(key string) string {
	return os.Getenv(key)
}
