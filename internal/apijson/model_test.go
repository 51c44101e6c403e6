package apijson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testSchedule struct {
	Overflow
	Frequency int
	Enabled   bool
}

func (r *testSchedule) Fields() []Field {
	return []Field{
		Int("Frequency", &r.Frequency),
		Bool("Enabled", &r.Enabled),
	}
}

type testJob struct {
	Overflow
	GUID       string
	Size       int64
	Ratio      float64
	Schedule   testSchedule
	Retention  *testSchedule
	Tags       []string
	Children   []testJob
	Sizes      map[int64]int64
	Named      map[string]testSchedule
	LastRun    *int64
	Metadata   json.RawMessage
	OptionalTS []string
}

func (r *testJob) Fields() []Field {
	return []Field{
		String("GUID", &r.GUID),
		Int64("Size", &r.Size),
		Float64("Ratio", &r.Ratio),
		Nested[testSchedule]("Schedule", &r.Schedule),
		OptionalNested[testSchedule]("Retention", &r.Retention),
		ScalarList("Tags", &r.Tags),
		List[testJob]("Children", &r.Children),
		ScalarMap("Sizes", &r.Sizes),
		Map[string, testSchedule]("Named", &r.Named),
		OptionalScalar("LastRun", &r.LastRun),
		Raw("Metadata", &r.Metadata),
		ScalarList("OptionalTS", &r.OptionalTS).Optional(),
	}
}

func TestUnmarshal(t *testing.T) {
	t.Run("we decode all the declared fields", func(t *testing.T) {
		input := `{
			"GUID": "abc", "Size": 1024, "Ratio": 0.5,
			"Schedule": {"Frequency": 3600, "Enabled": true},
			"Retention": {"Frequency": 7},
			"Tags": ["a", "b"],
			"Children": [{"GUID": "child", "Children": null}],
			"Sizes": {"1": 10, "2": 20},
			"Named": {"daily": {"Enabled": true}},
			"LastRun": 1700000000,
			"Metadata": {"k": [1, 2]}
		}`
		var job testJob
		if err := Unmarshal([]byte(input), &job); err != nil {
			t.Fatal(err)
		}
		lastRun := int64(1700000000)
		expect := testJob{
			GUID:      "abc",
			Size:      1024,
			Ratio:     0.5,
			Schedule:  testSchedule{Frequency: 3600, Enabled: true},
			Retention: &testSchedule{Frequency: 7},
			Tags:      []string{"a", "b"},
			Children: []testJob{{
				GUID:     "child",
				Tags:     []string{},
				Children: []testJob{},
				Sizes:    map[int64]int64{},
				Named:    map[string]testSchedule{},
			}},
			Sizes:    map[int64]int64{1: 10, 2: 20},
			Named:    map[string]testSchedule{"daily": {Enabled: true}},
			LastRun:  &lastRun,
			Metadata: json.RawMessage(`{"k": [1, 2]}`),
		}
		if diff := cmp.Diff(expect, job); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we preserve unknown members in order", func(t *testing.T) {
		input := `{"Zeta": 1, "GUID": "x", "Alpha": {"nested": [true,  false]}, "Html": "<a&b>"}`
		var job testJob
		if err := Unmarshal([]byte(input), &job); err != nil {
			t.Fatal(err)
		}
		if job.Extra == nil || job.Extra.Len() != 3 {
			t.Fatal("unexpected overflow", job.Extra)
		}
		var keys []string
		for pair := job.Extra.Oldest(); pair != nil; pair = pair.Next() {
			keys = append(keys, pair.Key)
		}
		if diff := cmp.Diff([]string{"Zeta", "Alpha", "Html"}, keys); diff != "" {
			t.Fatal(diff)
		}
		data, err := Marshal(&job)
		if err != nil {
			t.Fatal(err)
		}
		expect := `{"GUID":"x","Size":0,"Ratio":0,"Schedule":{"Frequency":0,"Enabled":false},` +
			`"Tags":[],"Children":[],"Sizes":{},"Named":{},` +
			`"Zeta":1,"Alpha":{"nested": [true,  false]},"Html":"<a&b>"}`
		if diff := cmp.Diff(expect, string(data)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("overflow is nil without unknown members", func(t *testing.T) {
		var job testJob
		if err := Unmarshal([]byte(`{"GUID": "x"}`), &job); err != nil {
			t.Fatal(err)
		}
		if job.Extra != nil {
			t.Fatal("expected nil overflow")
		}
	})

	t.Run("null and absent optional fields", func(t *testing.T) {
		var job testJob
		input := `{"Retention": null, "LastRun": null, "OptionalTS": null, "Tags": null}`
		if err := Unmarshal([]byte(input), &job); err != nil {
			t.Fatal(err)
		}
		if job.Retention != nil || job.LastRun != nil || job.OptionalTS != nil {
			t.Fatal("expected nil optional fields")
		}
		if job.Tags == nil || len(job.Tags) != 0 {
			t.Fatal("expected empty non-nil list")
		}
	})

	t.Run("null elements become zero values", func(t *testing.T) {
		var job testJob
		if err := Unmarshal([]byte(`{"Tags": ["a", null], "Sizes": {"3": null}}`), &job); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"a", ""}, job.Tags); diff != "" {
			t.Fatal(diff)
		}
		if diff := cmp.Diff(map[int64]int64{3: 0}, job.Sizes); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("integers written as integral floats", func(t *testing.T) {
		var job testJob
		if err := Unmarshal([]byte(`{"Size": 1e3}`), &job); err != nil {
			t.Fatal(err)
		}
		if job.Size != 1000 {
			t.Fatal("unexpected size", job.Size)
		}
	})

	t.Run("type mismatches", func(t *testing.T) {
		cases := []struct {
			name   string
			input  string
			expect string
		}{{
			name:   "number for string",
			input:  `{"GUID": 17}`,
			expect: "apijson: apijson.testJob.GUID: expected string, got number",
		}, {
			name:   "null for string",
			input:  `{"GUID": null}`,
			expect: "apijson: apijson.testJob.GUID: expected string, got null",
		}, {
			name:   "fractional integer",
			input:  `{"Size": 1.5}`,
			expect: "apijson: apijson.testJob.Size: expected integer, got number 1.5",
		}, {
			name:   "string for bool inside a nested model",
			input:  `{"Schedule": {"Enabled": "yes"}}`,
			expect: "apijson: apijson.testJob.Schedule.Enabled: expected boolean, got string",
		}, {
			name:   "object for list",
			input:  `{"Tags": {}}`,
			expect: "apijson: apijson.testJob.Tags: expected array, got object",
		}, {
			name:   "bad element in a recursive list",
			input:  `{"Children": [{}, {"Children": [{"Ratio": "x"}]}]}`,
			expect: "apijson: apijson.testJob.Children[1].Children[0].Ratio: expected number, got string",
		}, {
			name:   "non-numeric map key",
			input:  `{"Sizes": {"abc": 1}}`,
			expect: `apijson: apijson.testJob.Sizes[abc]: expected integer key, got "abc"`,
		}, {
			name:   "bad map entry",
			input:  `{"Named": {"x": []}}`,
			expect: "apijson: apijson.testJob.Named[x]: expected object, got array",
		}, {
			name:   "not an object",
			input:  `[]`,
			expect: "apijson: apijson.testJob: expected object, got array",
		}}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				job := testJob{GUID: "unchanged"}
				err := Unmarshal([]byte(tc.input), &job)
				var tme *TypeMismatchError
				if !errors.As(err, &tme) {
					t.Fatal("unexpected error", err)
				}
				if diff := cmp.Diff(tc.expect, err.Error()); diff != "" {
					t.Fatal(diff)
				}
				if job.GUID != "unchanged" {
					t.Fatal("the model has been partially populated")
				}
			})
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		var job testJob
		if err := Unmarshal([]byte(`{"GUID":`), &job); !errors.Is(err, ErrInvalidJSON) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestMarshal(t *testing.T) {
	t.Run("optional fields are omitted when unset", func(t *testing.T) {
		lastRun := int64(5)
		job := testJob{
			GUID:       "a<b",
			LastRun:    &lastRun,
			Sizes:      map[int64]int64{10: 1, 2: 2},
			OptionalTS: []string{"x"},
			Metadata:   json.RawMessage(`[1]`),
		}
		data, err := Marshal(&job)
		if err != nil {
			t.Fatal(err)
		}
		expect := `{"GUID":"a<b","Size":0,"Ratio":0,"Schedule":{"Frequency":0,"Enabled":false},` +
			`"Tags":[],"Children":[],"Sizes":{"2":2,"10":1},"Named":{},"LastRun":5,` +
			`"Metadata":[1],"OptionalTS":["x"]}`
		if diff := cmp.Diff(expect, string(data)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		input := `{"GUID":"g","Size":1,"Ratio":1.25,"Schedule":{"Frequency":1,"Enabled":true,"X":null},` +
			`"Retention":{"Frequency":2,"Enabled":false},"Tags":["t"],` +
			`"Children":[{"GUID":"c","Size":0,"Ratio":0,"Schedule":{"Frequency":0,"Enabled":false},` +
			`"Tags":[],"Children":[],"Sizes":{},"Named":{}}],` +
			`"Sizes":{"1":1},"Named":{"n":{"Frequency":3,"Enabled":true}},"Future":"value"}`
		var job testJob
		if err := Unmarshal([]byte(input), &job); err != nil {
			t.Fatal(err)
		}
		data, err := Marshal(&job)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(input, string(data)); diff != "" {
			t.Fatal(diff)
		}
		var again testJob
		if err := Unmarshal(data, &again); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(job, again); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("overflow keys colliding with declared fields", func(t *testing.T) {
		job := testJob{}
		job.Extra = NewObject()
		job.Extra.Set("GUID", json.RawMessage(`"shadow"`))
		_, err := Marshal(&job)
		var ce *CollisionError
		if !errors.As(err, &ce) {
			t.Fatal("unexpected error", err)
		}
		if ce.Model != "apijson.testJob" || ce.Key != "GUID" {
			t.Fatal("unexpected collision", ce)
		}
	})

	t.Run("colliding key of an optional field that is unset", func(t *testing.T) {
		job := testJob{}
		job.Extra = NewObject()
		job.Extra.Set("LastRun", json.RawMessage(`1`))
		if _, err := Marshal(&job); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestFromObject(t *testing.T) {
	obj, err := ParseObject([]byte(`{"Frequency": 10, "Other": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	var schedule testSchedule
	if err := FromObject(obj, &schedule); err != nil {
		t.Fatal(err)
	}
	if schedule.Frequency != 10 {
		t.Fatal("unexpected frequency", schedule.Frequency)
	}
	back, err := ToObject(&schedule)
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalObject(back)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"Frequency":10,"Enabled":false,"Other":"x"}`, string(data)); diff != "" {
		t.Fatal(diff)
	}
}

func TestFieldOptional(t *testing.T) {
	t.Run("lists and maps can be optional", func(t *testing.T) {
		var (
			tags  []string
			props map[string]string
		)
		if !ScalarList("Tags", &tags).Optional().IsOptional() {
			t.Fatal("expected an optional list")
		}
		if !ScalarMap("Props", &props).Optional().IsOptional() {
			t.Fatal("expected an optional map")
		}
	})

	t.Run("other fields panic", func(t *testing.T) {
		var (
			name     string
			schedule testSchedule
		)
		fields := []Field{
			String("Name", &name),
			Nested[testSchedule]("Schedule", &schedule),
		}
		for _, field := range fields {
			t.Run(field.Key, func(t *testing.T) {
				var panicked bool
				func() {
					defer func() {
						panicked = recover() != nil
					}()
					field.Optional()
				}()
				if !panicked {
					t.Fatal("expected a panic")
				}
			})
		}
	})
}
