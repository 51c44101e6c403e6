package apijson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnmarshalList(t *testing.T) {
	t.Run("empty input yields an empty list", func(t *testing.T) {
		for _, input := range []string{"", "  ", "null"} {
			out, err := UnmarshalList[testSchedule]([]byte(input))
			if err != nil {
				t.Fatal(err)
			}
			if out == nil || len(out) != 0 {
				t.Fatal("expected empty non-nil list for", input)
			}
		}
	})

	t.Run("list of models", func(t *testing.T) {
		out, err := UnmarshalList[testSchedule]([]byte(`[{"Frequency": 1}, {"Enabled": true, "New": 1}]`))
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != 2 || out[0].Frequency != 1 || !out[1].Enabled {
			t.Fatal("unexpected list", out)
		}
		if out[1].Extra == nil || out[1].Extra.Len() != 1 {
			t.Fatal("expected overflow in the second element")
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := UnmarshalList[testSchedule]([]byte(`[{"Frequency": "1"}]`))
		var tme *TypeMismatchError
		if !errors.As(err, &tme) {
			t.Fatal("unexpected error", err)
		}
		if tme.Path != "[0].Frequency" || tme.Model != "[]apijson.testSchedule" {
			t.Fatal("unexpected error", tme)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		if _, err := UnmarshalList[testSchedule]([]byte(`[`)); !errors.Is(err, ErrInvalidJSON) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestUnmarshalMap(t *testing.T) {
	t.Run("integer keys", func(t *testing.T) {
		out, err := UnmarshalMap[int, testSchedule]([]byte(`{"7": {"Frequency": 7}}`))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(map[int]testSchedule{7: {Frequency: 7}}, out); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("null yields an empty map", func(t *testing.T) {
		out, err := UnmarshalMap[string, testSchedule]([]byte(`null`))
		if err != nil {
			t.Fatal(err)
		}
		if out == nil || len(out) != 0 {
			t.Fatal("expected empty non-nil map")
		}
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := UnmarshalMap[string, testSchedule]([]byte(`[]`))
		var tme *TypeMismatchError
		if !errors.As(err, &tme) || tme.Want != "object" {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestUnmarshalScalars(t *testing.T) {
	list, err := UnmarshalScalarList[string]([]byte(`["a", "b"]`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, list); diff != "" {
		t.Fatal(diff)
	}
	m, err := UnmarshalScalarMap[string, string]([]byte(`{"k": "v"}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]string{"k": "v"}, m); diff != "" {
		t.Fatal(diff)
	}
	if _, err := UnmarshalScalarMap[int64, bool]([]byte(`{"1": 1}`)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestMarshalObject(t *testing.T) {
	t.Run("nil object", func(t *testing.T) {
		data, err := MarshalObject(nil)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "null" {
			t.Fatal("unexpected data", string(data))
		}
	})

	t.Run("empty raw values become null", func(t *testing.T) {
		obj := NewObject()
		obj.Set("a", nil)
		obj.Set("b&c", json.RawMessage(" 1 "))
		data, err := MarshalObject(obj)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != `{"a":null,"b&c":1}` {
			t.Fatal("unexpected data", string(data))
		}
	})
}

func TestEqualObjects(t *testing.T) {
	a := NewObject()
	if !EqualObjects(nil, a) {
		t.Fatal("nil and empty objects should be equal")
	}
	a.Set("x", json.RawMessage("1"))
	b := NewObject()
	b.Set("x", json.RawMessage("1"))
	if !EqualObjects(a, b) {
		t.Fatal("expected equal objects")
	}
	b.Set("x", json.RawMessage("2"))
	if EqualObjects(a, b) {
		t.Fatal("expected different objects")
	}
}
