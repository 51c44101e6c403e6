package apijson

//
// Field: a row of a model schema table
//

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/vaultline/backupsdk/internal/runtimex"
)

// Field binds a JSON key to a field of a model. Construct using the
// constructors in this package (e.g., [String], [Nested], [List]).
type Field struct {
	// Key is the JSON key.
	Key string

	decode   func(value gjson.Result, optional bool) error
	encode   func() ([]byte, error)
	isSet    func() bool
	optional bool

	// collection is true for list and map fields.
	collection bool
}

// Optional returns a copy of the field marked as optional. When decoding, an
// absent or null optional list or map remains nil. When encoding, we omit an
// optional field that is not set.
//
// Optional only applies to list and map fields and panics otherwise. Use
// [OptionalScalar] or [OptionalNested] for the other kinds of fields.
func (f Field) Optional() Field {
	runtimex.Assert(f.collection, "apijson: Optional used on a non-collection field: "+f.Key)
	f.optional = true
	return f
}

// IsOptional returns whether the field is optional.
func (f Field) IsOptional() bool {
	return f.optional
}

// Scalar is the constraint satisfied by the scalar types we support.
type Scalar interface {
	string | bool | int | int64 | float64
}

// codec knows how to decode and encode values of type T.
type codec[T any] struct {
	decode func(value gjson.Result, out *T) error
	encode func(v *T) ([]byte, error)

	// decodesNull is true when decode maps null to a value. Otherwise, a null
	// list element or map value becomes the zero value of T.
	decodesNull bool
}

func scalarCodec[T Scalar]() codec[T] {
	return codec[T]{
		decode: decodeScalar[T],
		encode: func(v *T) ([]byte, error) {
			return marshalValue(*v)
		},
	}
}

func modelCodec[T any, PT ModelPtr[T]]() codec[T] {
	return codec[T]{
		decode: decodeModel[T, PT],
		encode: func(v *T) ([]byte, error) {
			return Marshal(PT(v))
		},
		decodesNull: true,
	}
}

// decodeScalar decodes a scalar from value into out.
func decodeScalar[T Scalar](value gjson.Result, out *T) error {
	switch p := any(out).(type) {
	case *string:
		if value.Type != gjson.String {
			return newTypeMismatchError("string", value)
		}
		*p = value.Str

	case *bool:
		switch value.Type {
		case gjson.Null, gjson.False:
			*p = false
		case gjson.True:
			*p = true
		default:
			return newTypeMismatchError("boolean", value)
		}

	case *int:
		v, err := decodeInteger(value, strconv.IntSize)
		if err != nil {
			return err
		}
		*p = int(v)

	case *int64:
		v, err := decodeInteger(value, 64)
		if err != nil {
			return err
		}
		*p = v

	case *float64:
		switch value.Type {
		case gjson.Null:
			*p = 0
		case gjson.Number:
			*p = value.Num
		default:
			return newTypeMismatchError("number", value)
		}
	}
	return nil
}

// decodeInteger decodes an integer that fits into bitSize bits. We also accept
// integral numbers written using a fraction or an exponent (e.g., 1e3).
func decodeInteger(value gjson.Result, bitSize int) (int64, error) {
	switch value.Type {
	case gjson.Null:
		return 0, nil
	case gjson.Number:
		raw := strings.TrimSpace(value.Raw)
		if v, err := strconv.ParseInt(raw, 10, bitSize); err == nil {
			return v, nil
		}
		limit := math.Ldexp(1, bitSize-1)
		if f := value.Num; f == math.Trunc(f) && f >= -limit && f < limit {
			return int64(f), nil
		}
		return 0, &TypeMismatchError{Want: "integer", Got: "number " + raw}
	default:
		return 0, newTypeMismatchError("integer", value)
	}
}

func scalarField[T Scalar](key string, p *T) Field {
	c := scalarCodec[T]()
	return Field{
		Key: key,
		decode: func(value gjson.Result, optional bool) error {
			if !value.Exists() {
				return nil // keep the zero value
			}
			return c.decode(value, p)
		},
		encode: func() ([]byte, error) {
			return c.encode(p)
		},
		isSet: func() bool {
			return true
		},
	}
}

// String binds key to a string field.
func String(key string, p *string) Field {
	return scalarField(key, p)
}

// Bool binds key to a boolean field.
func Bool(key string, p *bool) Field {
	return scalarField(key, p)
}

// Int binds key to an int field.
func Int(key string, p *int) Field {
	return scalarField(key, p)
}

// Int64 binds key to an int64 field.
func Int64(key string, p *int64) Field {
	return scalarField(key, p)
}

// Float64 binds key to a float64 field.
func Float64(key string, p *float64) Field {
	return scalarField(key, p)
}

// OptionalScalar binds key to an optional scalar field, which is nil
// when the JSON value is absent or null and is omitted when nil.
func OptionalScalar[T Scalar](key string, p **T) Field {
	c := scalarCodec[T]()
	return Field{
		Key: key,
		decode: func(value gjson.Result, optional bool) error {
			if value.Type == gjson.Null {
				*p = nil
				return nil
			}
			var v T
			if err := c.decode(value, &v); err != nil {
				return err
			}
			*p = &v
			return nil
		},
		encode: func() ([]byte, error) {
			return c.encode(*p)
		},
		isSet: func() bool {
			return *p != nil
		},
		optional: true,
	}
}

// Raw binds key to a field containing arbitrary JSON, which we copy without
// interpreting it. The field is omitted when nil.
func Raw(key string, p *json.RawMessage) Field {
	return Field{
		Key: key,
		decode: func(value gjson.Result, optional bool) error {
			if !value.Exists() {
				*p = nil
				return nil
			}
			*p = json.RawMessage(value.Raw)
			return nil
		},
		encode: func() ([]byte, error) {
			return *p, nil
		},
		isSet: func() bool {
			return *p != nil
		},
		optional: true,
	}
}

// Nested binds key to a field containing a nested model. A null or absent
// value yields the empty instance of the model.
func Nested[T any, PT ModelPtr[T]](key string, p *T) Field {
	c := modelCodec[T, PT]()
	return Field{
		Key: key,
		decode: func(value gjson.Result, optional bool) error {
			return c.decode(value, p)
		},
		encode: func() ([]byte, error) {
			return c.encode(p)
		},
		isSet: func() bool {
			return true
		},
	}
}

// OptionalNested binds key to a field containing an optional nested model,
// which is nil when the JSON value is absent or null and is omitted when nil.
func OptionalNested[T any, PT ModelPtr[T]](key string, p **T) Field {
	c := modelCodec[T, PT]()
	return Field{
		Key: key,
		decode: func(value gjson.Result, optional bool) error {
			if value.Type == gjson.Null {
				*p = nil
				return nil
			}
			var v T
			if err := c.decode(value, &v); err != nil {
				return err
			}
			*p = &v
			return nil
		},
		encode: func() ([]byte, error) {
			return c.encode(*p)
		},
		isSet: func() bool {
			return *p != nil
		},
		optional: true,
	}
}
