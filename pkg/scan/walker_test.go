package scan

import (
	"testing"

	"github.com/jsonlens/jsonlens/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type triple struct {
	path    []string
	lineage []string
	value   models.Value
}

// collect walks the value and copies every triple, since the walker reuses
// its slices between visits.
func collect(v models.Value) []triple {
	var out []triple
	Walk(v, func(path []string, lineage []string, v models.Value) {
		out = append(out, triple{
			path:    append([]string{}, path...),
			lineage: append([]string{}, lineage...),
			value:   v,
		})
	})
	return out
}

func TestWalk_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		value models.Value
		tag   string
	}{
		{"string", models.Str("hi"), "str"},
		{"int", models.Int(42), "int"},
		{"float", models.Float(1.5), "float"},
		{"bool", models.Bool(true), "bool"},
		{"null", models.Null(), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.value)
			require.Len(t, got, 1)
			assert.Empty(t, got[0].path)
			assert.Equal(t, []string{tt.tag}, got[0].lineage)
			assert.Equal(t, tt.value, got[0].value)
		})
	}
}

func TestWalk_EmptyContainers(t *testing.T) {
	t.Run("empty object is its own leaf", func(t *testing.T) {
		got := collect(models.Object())
		require.Len(t, got, 1)
		assert.Empty(t, got[0].path)
		assert.Equal(t, []string{"dict"}, got[0].lineage)
		assert.Equal(t, models.Object(), got[0].value)
	})

	t.Run("empty array is its own leaf", func(t *testing.T) {
		got := collect(models.Array())
		require.Len(t, got, 1)
		assert.Equal(t, []string{"list"}, got[0].lineage)
		assert.Equal(t, models.Array(), got[0].value)
	})

	t.Run("nested empty containers keep their path", func(t *testing.T) {
		record := models.Object(
			models.Member{Key: "a", Value: models.Object()},
			models.Member{Key: "b", Value: models.Array()},
		)
		got := collect(record)
		require.Len(t, got, 2)
		assert.Equal(t, []string{"a"}, got[0].path)
		assert.Equal(t, []string{"dict", "dict"}, got[0].lineage)
		assert.Equal(t, []string{"b"}, got[1].path)
		assert.Equal(t, []string{"dict", "list"}, got[1].lineage)
	})
}

func TestWalk_ObjectNesting(t *testing.T) {
	record := models.Object(
		models.Member{Key: "a", Value: models.Object(
			models.Member{Key: "b", Value: models.Int(1)},
		)},
	)
	got := collect(record)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"a", "b"}, got[0].path)
	assert.Equal(t, []string{"dict", "dict", "int"}, got[0].lineage)
}

func TestWalk_ArrayCollapsesPath(t *testing.T) {
	// every element of an array shares the path of the array itself, the
	// element index never becomes a path segment
	record := models.Object(
		models.Member{Key: "arr", Value: models.Array(
			models.Int(1),
			models.Str("x"),
			models.Object(models.Member{Key: "param_a", Value: models.Str("y")}),
		)},
	)
	got := collect(record)
	require.Len(t, got, 3)

	assert.Equal(t, []string{"arr"}, got[0].path)
	assert.Equal(t, []string{"dict", "list", "int"}, got[0].lineage)

	assert.Equal(t, []string{"arr"}, got[1].path)
	assert.Equal(t, []string{"dict", "list", "str"}, got[1].lineage)

	assert.Equal(t, []string{"arr", "param_a"}, got[2].path)
	assert.Equal(t, []string{"dict", "list", "dict", "str"}, got[2].lineage)
}

func TestWalk_MemberOrderIsTraversalOrder(t *testing.T) {
	record := models.Object(
		models.Member{Key: "z", Value: models.Int(1)},
		models.Member{Key: "a", Value: models.Int(2)},
	)
	got := collect(record)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"z"}, got[0].path)
	assert.Equal(t, []string{"a"}, got[1].path)
}

func TestWalk_Deterministic(t *testing.T) {
	record := models.Object(
		models.Member{Key: "arr", Value: models.Array(
			models.Object(
				models.Member{Key: "x", Value: models.Int(1)},
				models.Member{Key: "y", Value: models.Array(models.Str("s"), models.Null())},
			),
		)},
		models.Member{Key: "empty", Value: models.Object()},
	)
	assert.Equal(t, collect(record), collect(record))
}
