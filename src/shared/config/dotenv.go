package config

import (
	"github.com/apex/log"
	"github.com/joho/godotenv"
	"os"
)

var envFiles = []string{".env.local", ".env"}

// LoadEnvFiles reads env files from the working directory.
// Variables already set in the environment win, and missing files are skipped
func LoadEnvFiles() {
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}

		if err := godotenv.Load(envFile); err != nil {
			log.WithError(err).
				WithField("file", envFile).
				Warn("Failed to load env file")
		}
	}
}
