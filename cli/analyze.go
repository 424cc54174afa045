package cli

import (
	"context"

	"github.com/jsonlens/jsonlens/config"
	analyzeSvc "github.com/jsonlens/jsonlens/pkg/service/analyze"
	"github.com/jsonlens/jsonlens/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	Register("analyze", Analyze)
}

// Analyze retrieves the command to analyze a JSONL stream and report the
// discovered schema.
func Analyze(ctx context.Context, logger *zap.Logger, _ *config.Config, serviceFactory ServiceFactory, cmdConfigurator CmdConfigurator) *cobra.Command {
	var analyzeCmd = &cobra.Command{
		Use:     "analyze",
		Short:   "Analyze a JSONL stream and report the discovered schema",
		Example: `jsonlens analyze -f dump.jsonl --table`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return cmdConfigurator.ValidateFlags(ctx, cmd)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := serviceFactory.GetService(ctx, "analyze")
			if err != nil {
				return err
			}
			var analyzer analyzeSvc.Service
			var ok bool
			if analyzer, ok = svc.(analyzeSvc.Service); !ok {
				utils.LogError(logger, nil, "service doesn't satisfy analyze service interface")
				return nil
			}
			if err := analyzer.Analyze(ctx); err != nil {
				utils.LogError(logger, err, "failed to analyze the input stream")
				return err
			}
			return nil
		},
	}
	if err := cmdConfigurator.AddFlags(analyzeCmd); err != nil {
		utils.LogError(logger, err, "failed to add analyze cmd flags")
		return nil
	}
	return analyzeCmd
}
