package cli

import (
	"context"
	"path/filepath"

	"github.com/jsonlens/jsonlens/config"
	toolsSvc "github.com/jsonlens/jsonlens/pkg/service/tools"
	"github.com/jsonlens/jsonlens/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	Register("generate-config", GenerateConfig)
}

// GenerateConfig retrieves the command to generate the jsonlens config file
func GenerateConfig(ctx context.Context, logger *zap.Logger, _ *config.Config, serviceFactory ServiceFactory, cmdConfigurator CmdConfigurator) *cobra.Command {
	var generateConfigCmd = &cobra.Command{
		Use:     "generate-config",
		Short:   "Generate the jsonlens configuration file",
		Example: "jsonlens generate-config -p path/to/localdir",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return cmdConfigurator.ValidateFlags(ctx, cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := serviceFactory.GetService(ctx, "generate-config")
			if err != nil {
				return err
			}
			var tools toolsSvc.Service
			var ok bool
			if tools, ok = svc.(toolsSvc.Service); !ok {
				utils.LogError(logger, nil, "service doesn't satisfy generate-config service interface")
				return nil
			}
			configPath, err := cmd.Flags().GetString("path")
			if err != nil {
				utils.LogError(logger, err, "failed to read the config path")
				return err
			}
			filePath := filepath.Join(configPath, "jsonlens.yml")
			if err := tools.CreateConfig(ctx, filePath, ""); err != nil {
				utils.LogError(logger, err, "failed to generate the config file")
				return err
			}
			return nil
		},
	}
	if err := cmdConfigurator.AddFlags(generateConfigCmd); err != nil {
		utils.LogError(logger, err, "failed to add generate-config cmd flags")
		return nil
	}
	return generateConfigCmd
}
