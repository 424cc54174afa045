package cli

import (
	"context"

	"github.com/jsonlens/jsonlens/config"
	"github.com/jsonlens/jsonlens/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCustomHelpTemplate = `{{.Short}}

Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
`

var rootExamples = `
  Analyze a file:
	jsonlens analyze -f dump.jsonl

  Analyze stdin as a table:
	cat dump.jsonl | jsonlens analyze --table

  Generate-Config:
	jsonlens generate-config -p "/path/to/localdir"
`

// Root retrieves the root command of the CLI and attaches every registered
// subcommand to it.
func Root(ctx context.Context, logger *zap.Logger, cfg *config.Config, serviceFactory ServiceFactory, cmdConfigurator CmdConfigurator) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:     "jsonlens",
		Short:   "jsonlens discovers the schema of JSONL streams",
		Example: rootExamples,
		Version: utils.Version,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpTemplate(rootCustomHelpTemplate)
	rootCmd.SetVersionTemplate(`{{with .Version}}{{printf "jsonlens %s" .}}{{end}}{{"\n"}}`)

	if err := cmdConfigurator.AddFlags(rootCmd); err != nil {
		utils.LogError(logger, err, "failed to set root cmd flags")
		return nil
	}

	for _, hook := range Registered {
		if cmd := hook(ctx, logger, cfg, serviceFactory, cmdConfigurator); cmd != nil {
			rootCmd.AddCommand(cmd)
		}
	}
	return rootCmd
}
