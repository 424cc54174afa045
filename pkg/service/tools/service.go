// Package tools provides housekeeping commands of the CLI.
package tools

import (
	"context"
)

type Service interface {
	CreateConfig(ctx context.Context, filePath string, configData string) error
}
