package apijson

//
// Lists and maps
//

import (
	"bytes"
	"slices"
	"strconv"

	"github.com/tidwall/gjson"
)

// decodeList decodes a JSON array into out. A null or absent array becomes an empty
// list unless optional is true, in which case it becomes nil. A null scalar
// element becomes the zero value of T and a null model the empty instance.
func decodeList[T any](c codec[T], value gjson.Result, optional bool, out *[]T) error {
	if value.Type == gjson.Null {
		if optional {
			*out = nil
		} else {
			*out = []T{}
		}
		return nil
	}
	if !value.IsArray() {
		return newTypeMismatchError("array", value)
	}
	elements := value.Array()
	list := make([]T, len(elements))
	for idx, element := range elements {
		if element.Type == gjson.Null && !c.decodesNull {
			continue
		}
		if err := c.decode(element, &list[idx]); err != nil {
			return withPath(err, "["+strconv.Itoa(idx)+"]")
		}
	}
	*out = list
	return nil
}

// encodeList encodes list as a JSON array. A nil list becomes an empty array.
func encodeList[T any](c codec[T], list []T) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for idx := range list {
		if idx > 0 {
			buf.WriteByte(',')
		}
		data, err := c.encode(&list[idx])
		if err != nil {
			return nil, withPath(err, "["+strconv.Itoa(idx)+"]")
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func listField[T any](key string, c codec[T], p *[]T) Field {
	return Field{
		Key: key,
		decode: func(value gjson.Result, optional bool) error {
			return decodeList(c, value, optional, p)
		},
		encode: func() ([]byte, error) {
			return encodeList(c, *p)
		},
		isSet: func() bool {
			return *p != nil
		},
		collection: true,
	}
}

// List binds key to a list of models.
func List[T any, PT ModelPtr[T]](key string, p *[]T) Field {
	return listField(key, modelCodec[T, PT](), p)
}

// ScalarList binds key to a list of scalars.
func ScalarList[T Scalar](key string, p *[]T) Field {
	return listField(key, scalarCodec[T](), p)
}

// MapKey is the constraint satisfied by the map key types we support. JSON
// object keys are always strings, so integer keys use their decimal form.
type MapKey interface {
	string | int | int64
}

func parseKey[K MapKey](key string) (K, error) {
	var out K
	switch p := any(&out).(type) {
	case *string:
		*p = key
	case *int:
		v, err := strconv.Atoi(key)
		if err != nil {
			return out, &TypeMismatchError{Want: "integer key", Got: strconv.Quote(key)}
		}
		*p = v
	case *int64:
		v, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return out, &TypeMismatchError{Want: "integer key", Got: strconv.Quote(key)}
		}
		*p = v
	}
	return out, nil
}

func formatKey[K MapKey](key K) string {
	switch v := any(key).(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return v.(string)
	}
}

// decodeMap decodes a JSON object into out, with the same null handling as decodeList.
func decodeMap[K MapKey, T any](c codec[T], value gjson.Result, optional bool, out *map[K]T) error {
	if value.Type == gjson.Null {
		if optional {
			*out = nil
		} else {
			*out = map[K]T{}
		}
		return nil
	}
	if !value.IsObject() {
		return newTypeMismatchError("object", value)
	}
	result := map[K]T{}
	var err error
	value.ForEach(func(rawKey, member gjson.Result) bool {
		var key K
		if key, err = parseKey[K](rawKey.Str); err != nil {
			err = withPath(err, "["+rawKey.Str+"]")
			return false
		}
		var entry T
		if member.Type != gjson.Null || c.decodesNull {
			if err = c.decode(member, &entry); err != nil {
				err = withPath(err, "["+rawKey.Str+"]")
				return false
			}
		}
		result[key] = entry
		return true
	})
	if err != nil {
		return err
	}
	*out = result
	return nil
}

// encodeMap encodes m as a JSON object whose keys are sorted. A nil map
// becomes an empty object.
func encodeMap[K MapKey, T any](c codec[T], m map[K]T) ([]byte, error) {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, key := range keys {
		if idx > 0 {
			buf.WriteByte(',')
		}
		name, err := marshalValue(formatKey(key))
		if err != nil {
			return nil, err
		}
		entry := m[key]
		data, err := c.encode(&entry)
		if err != nil {
			return nil, withPath(err, "["+formatKey(key)+"]")
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func mapField[K MapKey, T any](key string, c codec[T], p *map[K]T) Field {
	return Field{
		Key: key,
		decode: func(value gjson.Result, optional bool) error {
			return decodeMap(c, value, optional, p)
		},
		encode: func() ([]byte, error) {
			return encodeMap(c, *p)
		},
		isSet: func() bool {
			return *p != nil
		},
		collection: true,
	}
}

// Map binds key to a map from K to models.
func Map[K MapKey, T any, PT ModelPtr[T]](key string, p *map[K]T) Field {
	return mapField(key, modelCodec[T, PT](), p)
}

// ScalarMap binds key to a map from K to scalars.
func ScalarMap[K MapKey, T Scalar](key string, p *map[K]T) Field {
	return mapField(key, scalarCodec[T](), p)
}

//
// Top-level collections
//

func unmarshalList[T any](c codec[T], name string, data []byte) ([]T, error) {
	value, err := parseValue(data)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := decodeList(c, value, false, &out); err != nil {
		return nil, withModel(err, name)
	}
	return out, nil
}

func unmarshalMap[K MapKey, T any](c codec[T], name string, data []byte) (map[K]T, error) {
	value, err := parseValue(data)
	if err != nil {
		return nil, err
	}
	var out map[K]T
	if err := decodeMap(c, value, false, &out); err != nil {
		return nil, withModel(err, name)
	}
	return out, nil
}

// UnmarshalList parses a JSON array of models. Empty input or null
// yields an empty, non-nil list.
func UnmarshalList[T any, PT ModelPtr[T]](data []byte) ([]T, error) {
	return unmarshalList(modelCodec[T, PT](), "[]"+modelName(PT(nil)), data)
}

// UnmarshalMap parses a JSON object mapping K to models. Empty input or
// null yields an empty, non-nil map.
func UnmarshalMap[K MapKey, T any, PT ModelPtr[T]](data []byte) (map[K]T, error) {
	var zero K
	return unmarshalMap[K](modelCodec[T, PT](), "map["+modelName(zero)+"]"+modelName(PT(nil)), data)
}

// UnmarshalScalarList is like [UnmarshalList] but for scalars.
func UnmarshalScalarList[T Scalar](data []byte) ([]T, error) {
	var zero T
	return unmarshalList(scalarCodec[T](), "[]"+modelName(zero), data)
}

// UnmarshalScalarMap is like [UnmarshalMap] but for scalars.
func UnmarshalScalarMap[K MapKey, T Scalar](data []byte) (map[K]T, error) {
	var zeroKey K
	var zero T
	return unmarshalMap[K](scalarCodec[T](), "map["+modelName(zeroKey)+"]"+modelName(zero), data)
}
