package main

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/veedubyou/songlist-be/src/shared/config"
	"github.com/veedubyou/songlist-be/src/songctl/cmd"
	"os"
)

func main() {
	log.SetHandler(cli.New(os.Stderr))
	config.LoadEnvFiles()

	rootCmd := cmd.NewRootCommand(cmd.EnvDependencies())
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("songctl failed")
		os.Exit(1)
	}
}
