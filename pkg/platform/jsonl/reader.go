// Package jsonl reads JSONL input and hands each line to the analyzer as a
// parsed record. Parse failures never reach the scan core.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/7sDream/geko"
	"github.com/jsonlens/jsonlens/pkg/models"
	"go.uber.org/zap"
)

// ParseError reports an input line that is not valid JSON.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid json: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader decodes one record per input line. In lenient mode invalid lines
// are logged and skipped instead of failing the run.
type Reader struct {
	logger  *zap.Logger
	scanner *bufio.Scanner
	line    int
	lenient bool
}

func NewReader(logger *zap.Logger, r io.Reader, lenient bool) *Reader {
	scanner := bufio.NewScanner(r)
	// single records can be far larger than the default scanner limit
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{
		logger:  logger,
		scanner: scanner,
		lenient: lenient,
	}
}

// Next returns the next record of the stream, or io.EOF once the input is
// exhausted. Blank lines are skipped.
func (r *Reader) Next(ctx context.Context) (models.Value, error) {
	for {
		select {
		case <-ctx.Done():
			return models.Value{}, ctx.Err()
		default:
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return models.Value{}, err
			}
			return models.Value{}, io.EOF
		}
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" {
			continue
		}
		// geko keeps the object key order of the document, plain maps
		// would randomize it and with it the report order
		raw, err := geko.JSONUnmarshal([]byte(text), geko.UseNumber(true))
		if err == nil {
			var v models.Value
			v, err = fromJSON(raw)
			if err == nil {
				return v, nil
			}
		}
		if r.lenient {
			r.logger.Warn("skipping invalid json line", zap.Int("line", r.line), zap.Error(err))
			continue
		}
		return models.Value{}, &ParseError{Line: r.line, Err: err}
	}
}

// fromJSON classifies a decoded value into the closed set of kinds the
// walker understands. json.Number splits into int and float depending on
// whether the literal fits an integer.
func fromJSON(raw interface{}) (models.Value, error) {
	switch t := raw.(type) {
	case geko.ObjectItems:
		keys := t.Keys()
		vals := t.Values()
		members := make([]models.Member, 0, len(keys))
		for i := range keys {
			child, err := fromJSON(vals[i])
			if err != nil {
				return models.Value{}, err
			}
			members = append(members, models.Member{Key: keys[i], Value: child})
		}
		return models.Object(members...), nil
	case geko.Array:
		elems := make([]models.Value, 0, len(t.List))
		for _, el := range t.List {
			child, err := fromJSON(el)
			if err != nil {
				return models.Value{}, err
			}
			elems = append(elems, child)
		}
		return models.Array(elems...), nil
	case string:
		return models.Str(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return models.Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return models.Value{}, fmt.Errorf("unsupported number literal %q", t.String())
		}
		return models.Float(f), nil
	case float64:
		// only reached if the decoder was built without UseNumber
		return models.Float(t), nil
	case bool:
		return models.Bool(t), nil
	case nil:
		return models.Null(), nil
	default:
		return models.Value{}, fmt.Errorf("unsupported json value of type %T", raw)
	}
}
