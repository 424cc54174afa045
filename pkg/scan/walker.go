// Package scan implements the schema-discovery core: walking parsed JSON
// records into (path, type lineage, value) triples and folding the triples
// into per-field statistics.
package scan

import (
	"github.com/jsonlens/jsonlens/pkg/models"
)

// VisitFunc receives one leaf occurrence of a record. The path and lineage
// slices are reused between calls and must not be retained.
type VisitFunc func(path []string, lineage []string, v models.Value)

// Walk traverses one record and calls visit for every leaf occurrence.
//
// Descending into an object key appends the key to the path and "dict" to
// the lineage. Descending into array elements appends nothing to the path,
// so every element of an array shares the path of the array itself, and
// appends "list" to the lineage. Empty containers are leaves: they are
// visited once as themselves, so counts reflect that a container was present
// at the path. Scalars are visited once with their own tag.
//
// Traversal order is object member order and array index order, which makes
// the walk deterministic for a given record.
func Walk(v models.Value, visit VisitFunc) {
	walk(v, make([]string, 0, 8), make([]string, 0, 8), visit)
}

func walk(v models.Value, path, lineage []string, visit VisitFunc) {
	switch v.Kind {
	case models.KindObject:
		if len(v.Obj) == 0 {
			visit(path, append(lineage, "dict"), v)
			return
		}
		lineage = append(lineage, "dict")
		for _, m := range v.Obj {
			walk(m.Value, append(path, m.Key), lineage, visit)
		}
	case models.KindArray:
		if len(v.Arr) == 0 {
			visit(path, append(lineage, "list"), v)
			return
		}
		lineage = append(lineage, "list")
		for _, el := range v.Arr {
			walk(el, path, lineage, visit)
		}
	default:
		visit(path, append(lineage, v.Tag()), v)
	}
}
