package analyze

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/jsonlens/jsonlens/config"
	"github.com/jsonlens/jsonlens/pkg/platform/jsonl"
	"github.com/jsonlens/jsonlens/pkg/scan"
	"github.com/jsonlens/jsonlens/utils"
	"go.uber.org/zap"
)

type Analyzer struct {
	logger *zap.Logger
	config *config.Config
	out    io.Writer
}

func New(logger *zap.Logger, cfg *config.Config, out io.Writer) *Analyzer {
	return &Analyzer{
		logger: logger,
		config: cfg,
		out:    out,
	}
}

// Analyze runs a single pass over the input stream. Every record is walked
// to completion before the next one is read.
func (a *Analyzer) Analyze(ctx context.Context) error {
	in := io.Reader(os.Stdin)
	if a.config.Path != "" {
		file, err := os.Open(a.config.Path)
		if err != nil {
			utils.LogError(a.logger, err, "failed to open the input file", zap.String("path", a.config.Path))
			return err
		}
		defer func() {
			if err := file.Close(); err != nil {
				utils.LogError(a.logger, err, "failed to close the input file")
			}
		}()
		in = file
	}

	reader := jsonl.NewReader(a.logger, in, a.config.Lenient)
	aggregator := scan.NewAggregator()
	records := 0
	for {
		record, err := reader.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *jsonl.ParseError
			if errors.As(err, &parseErr) {
				utils.LogError(a.logger, err, "failed to parse input line, rerun with --lenient to skip invalid lines", zap.Int("line", parseErr.Line))
			} else {
				utils.LogError(a.logger, err, "failed to read the input stream")
			}
			return err
		}
		scan.Walk(record, aggregator.Ingest)
		records++
	}

	rows := aggregator.Finalize()
	a.logger.Debug("analysis complete", zap.Int("records", records), zap.Int("fields", len(rows)))
	return a.render(rows)
}
