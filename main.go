package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jsonlens/jsonlens/cli"
	"github.com/jsonlens/jsonlens/cli/provider"
	"github.com/jsonlens/jsonlens/config"
	"github.com/jsonlens/jsonlens/utils"
	userLog "github.com/jsonlens/jsonlens/utils/log"
)

// version is the version of the CLI and will be injected during build by ldflags
// see https://goreleaser.com/customization/build/
var version string

func main() {
	if version == "" {
		version = "dev"
	}
	utils.Version = version
	start(context.Background())
}

func start(ctx context.Context) {
	logger, err := userLog.New()
	if err != nil {
		fmt.Println("failed to start the logger for the CLI", err)
		os.Exit(1)
	}
	defer utils.HandlePanic(logger)

	conf := config.New()
	svcProvider := provider.NewServiceProvider(logger, conf)
	cmdConfigurator := provider.NewCmdConfigurator(logger, conf)
	rootCmd := cli.Root(ctx, logger, conf, svcProvider, cmdConfigurator)
	if rootCmd == nil {
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
