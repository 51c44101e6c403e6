package apijson

//
// Object: an ordered JSON object
//

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a JSON object whose members keep their original order and whose
// values are kept as raw JSON text.
type Object = orderedmap.OrderedMap[string, json.RawMessage]

// NewObject creates a new empty [*Object].
func NewObject() *Object {
	return orderedmap.New[string, json.RawMessage]()
}

// ErrInvalidJSON indicates that the input is not valid JSON.
var ErrInvalidJSON = errors.New("apijson: invalid JSON")

// parseValue parses data as a JSON value. An empty (or all-whitespace) input is
// equivalent to JSON null, which we represent using the zero [gjson.Result].
func parseValue(data []byte) (gjson.Result, error) {
	if len(bytes.TrimSpace(data)) <= 0 {
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, ErrInvalidJSON
	}
	return gjson.ParseBytes(data), nil
}

// ParseObject parses data, which MUST contain a JSON object, into an [*Object].
func ParseObject(data []byte) (*Object, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	value := gjson.ParseBytes(data)
	if !value.IsObject() {
		return nil, newTypeMismatchError("object", value)
	}
	return objectFromResult(value), nil
}

// objectFromResult converts a result containing an object to an [*Object].
func objectFromResult(value gjson.Result) *Object {
	obj := NewObject()
	value.ForEach(func(key, member gjson.Result) bool {
		obj.Set(key.Str, json.RawMessage(member.Raw))
		return true
	})
	return obj
}

// MarshalObject serializes obj. The raw member values are copied verbatim.
func MarshalObject(obj *Object) ([]byte, error) {
	if obj == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := marshalValue(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value := bytes.TrimSpace(pair.Value)
		if len(value) <= 0 {
			value = []byte("null")
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EqualObjects returns whether a and b contain the same keys, in the same
// order, bound to byte-by-byte equal raw values. A nil [*Object] is equal
// to an empty [*Object].
func EqualObjects(a, b *Object) bool {
	if objectLen(a) != objectLen(b) {
		return false
	}
	if objectLen(a) <= 0 {
		return true
	}
	for pa, pb := a.Oldest(), b.Oldest(); pa != nil && pb != nil; pa, pb = pa.Next(), pb.Next() {
		if pa.Key != pb.Key || !bytes.Equal(pa.Value, pb.Value) {
			return false
		}
	}
	return true
}

func objectLen(obj *Object) int {
	if obj == nil {
		return 0
	}
	return obj.Len()
}

// marshalValue is like [json.Marshal] but does not escape HTML characters.
func marshalValue(v any) ([]byte, error) {
	var sb strings.Builder
	encoder := json.NewEncoder(&sb)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(sb.String(), "\n")), nil
}
