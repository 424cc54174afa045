package scan

import (
	"testing"

	"github.com/jsonlens/jsonlens/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_SingleBucketPerKey(t *testing.T) {
	agg := NewAggregator()
	for i := 0; i < 5; i++ {
		agg.Ingest([]string{"a"}, []string{"dict", "int"}, models.Int(int64(i)))
	}
	rows := agg.Finalize()
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Count)
	assert.Equal(t, "a", rows[0].Key)
	assert.Equal(t, "dict.int", rows[0].Type)
}

func TestAggregator_FalsyCounting(t *testing.T) {
	agg := NewAggregator()
	agg.Ingest([]string{"s"}, []string{"dict", "str"}, models.Str("x"))
	agg.Ingest([]string{"s"}, []string{"dict", "str"}, models.Str(""))
	agg.Ingest([]string{"s"}, []string{"dict", "str"}, models.Str("y"))
	rows := agg.Finalize()
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Count)
	assert.Equal(t, 1, rows[0].CountFalsy)
	assert.LessOrEqual(t, rows[0].CountFalsy, rows[0].Count)
}

func TestAggregator_LineagesAreNeverMerged(t *testing.T) {
	// a field that is sometimes a string and sometimes a bool at the same
	// path yields one row per lineage
	agg := NewAggregator()
	agg.Ingest([]string{"v"}, []string{"dict", "str"}, models.Str("x"))
	agg.Ingest([]string{"v"}, []string{"dict", "bool"}, models.Bool(true))
	agg.Ingest([]string{"v"}, []string{"dict", "str"}, models.Str("y"))
	rows := agg.Finalize()
	require.Len(t, rows, 2)
	assert.Equal(t, "dict.str", rows[0].Type)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, "dict.bool", rows[1].Type)
	assert.Equal(t, 1, rows[1].Count)
}

func TestAggregator_FirstSeenOrder(t *testing.T) {
	agg := NewAggregator()
	agg.Ingest([]string{"b"}, []string{"dict", "int"}, models.Int(1))
	agg.Ingest([]string{"a"}, []string{"dict", "int"}, models.Int(2))
	agg.Ingest([]string{"b"}, []string{"dict", "int"}, models.Int(3))
	agg.Ingest([]string{"c"}, []string{"dict", "int"}, models.Int(4))
	agg.Ingest([]string{"a"}, []string{"dict", "int"}, models.Int(5))

	rows := agg.Finalize()
	require.Len(t, rows, 3)
	assert.Equal(t, "b", rows[0].Key)
	assert.Equal(t, "a", rows[1].Key)
	assert.Equal(t, "c", rows[2].Key)
}

func TestAggregator_ExampleIsLastWriteWins(t *testing.T) {
	agg := NewAggregator()
	agg.Ingest([]string{"_id"}, []string{"dict", "int"}, models.Int(1))
	agg.Ingest([]string{"_id"}, []string{"dict", "int"}, models.Int(2))
	agg.Ingest([]string{"_id"}, []string{"dict", "int"}, models.Int(127))
	rows := agg.Finalize()
	require.Len(t, rows, 1)
	assert.Equal(t, models.Int(127), rows[0].Parse)
}

func TestAggregator_CountsSumAcrossLineagesOfOnePath(t *testing.T) {
	// the sum of counts across all lineages of one path equals the number
	// of times the path was reached
	agg := NewAggregator()
	reached := 0
	for i := 0; i < 4; i++ {
		agg.Ingest([]string{"v"}, []string{"dict", "int"}, models.Int(int64(i)))
		reached++
	}
	for i := 0; i < 3; i++ {
		agg.Ingest([]string{"v"}, []string{"dict", "str"}, models.Str("s"))
		reached++
	}
	total := 0
	for _, row := range agg.Finalize() {
		require.Equal(t, "v", row.Key)
		total += row.Count
	}
	assert.Equal(t, reached, total)
}

func TestAggregator_FinalizeEmpty(t *testing.T) {
	rows := NewAggregator().Finalize()
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
