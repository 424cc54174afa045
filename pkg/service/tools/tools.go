package tools

import (
	"context"
	"os"

	"github.com/jsonlens/jsonlens/config"
	"github.com/jsonlens/jsonlens/utils"
	"go.uber.org/zap"
	yamlLib "gopkg.in/yaml.v3"
)

type Tools struct {
	logger *zap.Logger
}

func NewTools(logger *zap.Logger) *Tools {
	return &Tools{
		logger: logger,
	}
}

// CreateConfig writes the yaml config file. An empty configData writes the
// default config.
func (t *Tools) CreateConfig(_ context.Context, filePath string, configData string) error {
	data := []byte(configData)
	if configData == "" {
		data = []byte(config.GetDefaultConfig())
	}

	var node yamlLib.Node
	if err := yamlLib.Unmarshal(data, &node); err != nil {
		utils.LogError(t.logger, err, "failed to unmarshal the config")
		return err
	}
	result, err := yamlLib.Marshal(node.Content[0])
	if err != nil {
		utils.LogError(t.logger, err, "failed to marshal the config")
		return err
	}

	finalOutput := append(result, []byte(utils.ConfigGuide)...)
	if err := os.WriteFile(filePath, finalOutput, 0o644); err != nil {
		utils.LogError(t.logger, err, "failed to write config file", zap.String("path", filePath))
		return err
	}

	t.logger.Info("config file generated successfully", zap.String("path", filePath))
	return nil
}
