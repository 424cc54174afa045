// Package models holds the domain types shared across the analyzer.
package models

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind classifies a JSON value. The set is closed: every decoded value is
// exactly one of these seven kinds.
type Kind uint8

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindInt
	KindFloat
	KindBool
	KindNull
)

// Member is one key/value entry of an object. Objects are kept as member
// slices instead of maps so that the decoded key order survives; the walker
// depends on that order being stable within a record.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value as a tagged variant. Only the field matching Kind
// carries meaning.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Arr   []Value
	Obj   []Member
}

// Constructors.
func Object(members ...Member) Value {
	return Value{Kind: KindObject, Obj: members}
}

func Array(elems ...Value) Value {
	return Value{Kind: KindArray, Arr: elems}
}

func Str(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func Int(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

func Float(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

func Null() Value {
	return Value{Kind: KindNull}
}

// Tag returns the type tag that makes up the type lineage of a field.
func (v Value) Tag() string {
	switch v.Kind {
	case KindObject:
		return "dict"
	case KindArray:
		return "list"
	case KindString:
		return "str"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

// Falsy reports whether the value counts towards $count_falsy. The rule is
// spelled out per kind: empty string, numeric zero, false, null and empty
// containers are falsy, everything else is not.
func (v Value) Falsy() bool {
	switch v.Kind {
	case KindObject:
		return len(v.Obj) == 0
	case KindArray:
		return len(v.Arr) == 0
	case KindString:
		return v.Str == ""
	case KindInt:
		return v.Int == 0
	case KindFloat:
		return v.Float == 0
	case KindBool:
		return !v.Bool
	default:
		return true
	}
}

// MarshalJSON writes the value back out as JSON. Object members are written
// in insertion order, which the stdlib map encoding would not preserve.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindObject:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, m := range v.Obj {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(m.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := json.Marshal(m.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, el := range v.Arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			val, err := json.Marshal(el)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindString:
		return json.Marshal(v.Str)
	case KindInt:
		return strconv.AppendInt(nil, v.Int, 10), nil
	case KindFloat:
		return json.Marshal(v.Float)
	case KindBool:
		return strconv.AppendBool(nil, v.Bool), nil
	default:
		return []byte("null"), nil
	}
}

// String renders the value for a table cell. Strings are rendered raw, every
// other kind is rendered as compact JSON.
func (v Value) String() string {
	if v.Kind == KindString {
		return v.Str
	}
	out, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(out)
}
