// Package provider configures the commands and wires the services of the CLI.
package provider

import (
	"context"
	"errors"

	"github.com/jsonlens/jsonlens/config"
	"github.com/jsonlens/jsonlens/utils"
	"github.com/jsonlens/jsonlens/utils/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type CmdConfigurator struct {
	logger *zap.Logger
	cfg    *config.Config
}

func NewCmdConfigurator(logger *zap.Logger, cfg *config.Config) *CmdConfigurator {
	return &CmdConfigurator{
		logger: logger,
		cfg:    cfg,
	}
}

func (c *CmdConfigurator) AddFlags(cmd *cobra.Command) error {
	var err error
	switch cmd.Name() {
	case "analyze":
		cmd.Flags().StringP("file", "f", c.cfg.Path, "Path to the input jsonl file, defaults to stdin")
		cmd.Flags().BoolP("table", "t", c.cfg.Table, "Tab separated format, preempts -p")
		cmd.Flags().BoolP("pretty", "p", c.cfg.Pretty, "Prettify the json report")
		cmd.Flags().BoolP("verbose", "v", c.cfg.Verbose, "More descriptive report")
		cmd.Flags().Bool("lenient", c.cfg.Lenient, "Skip lines that are not valid json instead of aborting")
		// the config key stays "path" while the flag mirrors the -f of
		// classic line tools
		err = viper.BindPFlag("path", cmd.Flags().Lookup("file"))
		if err != nil {
			errMsg := "failed to bind the file flag to config"
			utils.LogError(c.logger, err, errMsg)
			return errors.New(errMsg)
		}
	case "generate-config":
		cmd.Flags().StringP("path", "p", ".", "Path to the local directory where the config file is generated")
	case "jsonlens":
		cmd.PersistentFlags().Bool("debug", c.cfg.Debug, "Run in debug mode")
		cmd.PersistentFlags().String("configPath", c.cfg.ConfigPath, "Path to the local directory where the jsonlens configuration file is stored")
		err = viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
		if err != nil {
			errMsg := "failed to bind flag to config"
			utils.LogError(c.logger, err, errMsg)
			return errors.New(errMsg)
		}
	default:
		return errors.New("unknown command name")
	}
	return err
}

func (c *CmdConfigurator) ValidateFlags(_ context.Context, cmd *cobra.Command) error {
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		errMsg := "failed to bind flags to config"
		utils.LogError(c.logger, err, errMsg)
		return errors.New(errMsg)
	}

	configPath, err := cmd.Flags().GetString("configPath")
	if err != nil {
		utils.LogError(c.logger, nil, "failed to read the config path")
		return err
	}
	viper.SetConfigName("jsonlens")
	viper.SetConfigType("yml")
	viper.AddConfigPath(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			errMsg := "failed to read config file"
			utils.LogError(c.logger, err, errMsg)
			return errors.New(errMsg)
		}
		c.logger.Debug("config file not found; proceeding with flags only")
	}
	if err := viper.Unmarshal(c.cfg); err != nil {
		errMsg := "failed to unmarshal the config"
		utils.LogError(c.logger, err, errMsg)
		return errors.New(errMsg)
	}

	if c.cfg.Debug {
		logger, err := log.ChangeLogLevel(zap.DebugLevel)
		if err != nil {
			errMsg := "failed to change log level"
			utils.LogError(c.logger, err, errMsg)
			return errors.New(errMsg)
		}
		*c.logger = *logger
	}
	c.logger.Debug("config has been initialised", zap.Any("for cmd", cmd.Name()), zap.Any("config", c.cfg))
	return nil
}
