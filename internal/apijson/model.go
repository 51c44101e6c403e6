package apijson

//
// Model encoding and decoding
//

import "github.com/tidwall/gjson"

// Overflow holds the JSON members that do not map to any declared field. It
// is embedded in every model to ensure forward compatibility.
type Overflow struct {
	// Extra contains the undeclared members in the order in which we read
	// them, or nil if there were none. You MAY modify Extra before serializing
	// a model, provided that you do not add keys declared by the model.
	Extra *Object
}

func (o *Overflow) overflow() *Overflow {
	return o
}

// Equal returns whether o and other contain the same members. The
// github.com/google/go-cmp package uses this method when comparing models.
func (o Overflow) Equal(other Overflow) bool {
	return EqualObjects(o.Extra, other.Extra)
}

// Model is the interface implemented by pointers to API models. To implement it,
// a model embeds [Overflow] and returns its schema table from Fields.
type Model interface {
	// Fields returns the model schema table bound to the receiver's fields.
	Fields() []Field

	overflow() *Overflow
}

// ModelPtr is the constraint satisfied by a pointer to a model type T.
type ModelPtr[T any] interface {
	*T
	Model
}

// Unmarshal parses data, which MUST contain a JSON object, into out. On failure,
// out is not modified.
func Unmarshal[T any, PT ModelPtr[T]](data []byte, out PT) error {
	obj, err := ParseObject(data)
	if err != nil {
		return withModel(err, modelName(out))
	}
	return FromObject[T, PT](obj, out)
}

// FromObject populates out from obj. On failure, out is not modified.
func FromObject[T any, PT ModelPtr[T]](obj *Object, out PT) error {
	var fresh T
	if err := decodeInto(obj, PT(&fresh)); err != nil {
		return withModel(err, modelName(out))
	}
	*out = fresh
	return nil
}

// decodeInto applies the schema table of m to obj.
func decodeInto(obj *Object, m Model) error {
	fields := m.Fields()
	declared := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		declared[field.Key] = struct{}{}
		var value gjson.Result
		if raw, found := obj.Get(field.Key); found {
			value = gjson.ParseBytes(raw)
		}
		if err := field.decode(value, field.optional); err != nil {
			return withPath(err, field.Key)
		}
	}
	var extra *Object
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if _, found := declared[pair.Key]; found {
			continue
		}
		if extra == nil {
			extra = NewObject()
		}
		extra.Set(pair.Key, pair.Value)
	}
	m.overflow().Extra = extra
	return nil
}

// decodeModel decodes a model from value into out, which is only modified
// on success. A null value yields the empty instance, i.e., the model decoded
// from an empty object, so its lists and maps are empty rather than nil.
func decodeModel[T any, PT ModelPtr[T]](value gjson.Result, out *T) error {
	obj := NewObject()
	switch {
	case value.Type == gjson.Null:
		// use the empty object
	case value.IsObject():
		obj = objectFromResult(value)
	default:
		return newTypeMismatchError("object", value)
	}
	var fresh T
	if err := decodeInto(obj, PT(&fresh)); err != nil {
		return err
	}
	*out = fresh
	return nil
}

// ToObject converts m to an [*Object] containing the declared fields, in
// declaration order, followed by the overflow members.
func ToObject(m Model) (*Object, error) {
	fields := m.Fields()
	out := NewObject()
	for _, field := range fields {
		if field.optional && !field.isSet() {
			continue
		}
		raw, err := field.encode()
		if err != nil {
			return nil, err
		}
		out.Set(field.Key, raw)
	}
	extra := m.overflow().Extra
	if extra == nil {
		return out, nil
	}
	for pair := extra.Oldest(); pair != nil; pair = pair.Next() {
		for _, field := range fields {
			if field.Key == pair.Key {
				return nil, &CollisionError{Model: modelName(m), Key: pair.Key}
			}
		}
		out.Set(pair.Key, pair.Value)
	}
	return out, nil
}

// Marshal serializes m as a JSON object.
func Marshal(m Model) ([]byte, error) {
	obj, err := ToObject(m)
	if err != nil {
		return nil, err
	}
	return MarshalObject(obj)
}
