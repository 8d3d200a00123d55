package config

import (
	"github.com/veedubyou/songlist-be/src/shared/config/envvar"
	"strings"
)

// used when SONGLIST_PASSWORD is unset or blank
const DefaultPassword = "daisy2024"

func Password() string {
	password := strings.TrimSpace(envvar.Get(envvar.SONGLIST_PASSWORD))
	if password == "" {
		return DefaultPassword
	}

	return password
}
