package apijson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// TypeMismatchError indicates that a JSON value does not have the type
// required by the corresponding model field.
type TypeMismatchError struct {
	// Model is the name of the model we were decoding.
	Model string

	// Path is the path of the offending value inside the model (e.g.,
	// `Destinations[abc].Statistics` or `ClauseChildren[1].RuleField`).
	Path string

	// Want is the expected JSON type.
	Want string

	// Got is the JSON type we have seen.
	Got string
}

var _ error = &TypeMismatchError{}

// Error implements error.
func (err *TypeMismatchError) Error() string {
	location := err.Path
	if err.Model != "" {
		location = joinPath(err.Model, err.Path)
	}
	if location == "" {
		return fmt.Sprintf("apijson: expected %s, got %s", err.Want, err.Got)
	}
	return fmt.Sprintf("apijson: %s: expected %s, got %s", location, err.Want, err.Got)
}

func newTypeMismatchError(want string, value gjson.Result) *TypeMismatchError {
	return &TypeMismatchError{Want: want, Got: jsonTypeName(value)}
}

// jsonTypeName returns the name of the JSON type of value.
func jsonTypeName(value gjson.Result) string {
	switch value.Type {
	case gjson.Null:
		if !value.Exists() {
			return "nothing"
		}
		return "null"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		if value.IsArray() {
			return "array"
		}
		return "object"
	}
}

// withPath prepends segment to the path of a [*TypeMismatchError].
func withPath(err error, segment string) error {
	var tme *TypeMismatchError
	if errors.As(err, &tme) {
		tme.Path = joinPath(segment, tme.Path)
	}
	return err
}

// withModel sets the model name of a [*TypeMismatchError].
func withModel(err error, name string) error {
	var tme *TypeMismatchError
	if errors.As(err, &tme) {
		tme.Model = name
	}
	return err
}

func joinPath(head, tail string) string {
	switch {
	case tail == "":
		return head
	case head == "" || strings.HasPrefix(tail, "["):
		return head + tail
	default:
		return head + "." + tail
	}
}

// CollisionError indicates that the [Overflow] of a model contains a key that
// is also declared by the model schema. We refuse to serialize such a model
// because either value would silently mask the other.
type CollisionError struct {
	// Model is the name of the model we were encoding.
	Model string

	// Key is the colliding key.
	Key string
}

var _ error = &CollisionError{}

// Error implements error.
func (err *CollisionError) Error() string {
	return fmt.Sprintf("apijson: %s: overflow key %q collides with a declared field", err.Model, err.Key)
}

// modelName returns the name of the type of v without the pointer star.
func modelName(v any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}
