package provider

import (
	"context"
	"errors"
	"os"

	"github.com/jsonlens/jsonlens/config"
	"github.com/jsonlens/jsonlens/pkg/service/analyze"
	"github.com/jsonlens/jsonlens/pkg/service/tools"
	"go.uber.org/zap"
)

type serviceProvider struct {
	logger *zap.Logger
	cfg    *config.Config
}

func NewServiceProvider(logger *zap.Logger, cfg *config.Config) *serviceProvider {
	return &serviceProvider{
		logger: logger,
		cfg:    cfg,
	}
}

func (n *serviceProvider) GetService(_ context.Context, cmd string) (interface{}, error) {
	switch cmd {
	case "analyze":
		return analyze.New(n.logger, n.cfg, os.Stdout), nil
	case "generate-config":
		return tools.NewTools(n.logger), nil
	default:
		return nil, errors.New("invalid command")
	}
}
