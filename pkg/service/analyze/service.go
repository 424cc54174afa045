// Package analyze provides the service that runs a schema analysis end to
// end: read records, walk them, aggregate and render the report.
package analyze

import (
	"context"
)

type Service interface {
	Analyze(ctx context.Context) error
}
