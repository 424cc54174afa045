package scan

import (
	"strings"

	"github.com/jsonlens/jsonlens/pkg/models"
)

type bucketKey struct {
	path string
	typ  string
}

type bucket struct {
	count      int
	countFalsy int
	example    models.Value
}

// Aggregator folds walk output into per-(path, type lineage) statistics.
// Each instance owns its bucket map, so independent analyses can run in the
// same process. It is not safe for concurrent use.
type Aggregator struct {
	buckets map[bucketKey]*bucket
	// order keeps the first-seen order of the keys, which fixes the order
	// of the final report.
	order []bucketKey
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		buckets: make(map[bucketKey]*bucket),
	}
}

// Ingest records one leaf occurrence. The bucket for the (path, lineage)
// pair is created on first sight; count is always incremented, countFalsy
// only for falsy values, and the example is last-write-wins.
func (a *Aggregator) Ingest(path []string, lineage []string, v models.Value) {
	k := bucketKey{
		path: strings.Join(path, "."),
		typ:  strings.Join(lineage, "."),
	}
	b, ok := a.buckets[k]
	if !ok {
		b = &bucket{}
		a.buckets[k] = b
		a.order = append(a.order, k)
	}
	b.count++
	if v.Falsy() {
		b.countFalsy++
	}
	b.example = v
}

// Finalize emits one row per distinct (path, lineage) key in the order the
// keys were first seen.
func (a *Aggregator) Finalize() []models.FieldSummary {
	rows := make([]models.FieldSummary, 0, len(a.order))
	for _, k := range a.order {
		b := a.buckets[k]
		rows = append(rows, models.FieldSummary{
			Count:      b.count,
			CountFalsy: b.countFalsy,
			Parse:      b.example,
			Type:       k.typ,
			Key:        k.path,
		})
	}
	return rows
}
