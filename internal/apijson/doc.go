// Package apijson implements the JSON encoding shared by all the API models.
//
// Each model declares a schema table, i.e., the ordered list of its [Field]s,
// where each [Field] binds a JSON key to a Go struct field. The [Unmarshal],
// [FromObject], [ToObject] and [Marshal] functions walk such a table to convert
// between JSON and Go values with explicit type checks.
//
// Every model embeds an [Overflow] where we store the JSON members that the
// schema does not declare. We keep their raw bytes and their order, and we write
// them back verbatim when serializing, so that we can round trip objects produced
// by newer server versions without losing information.
//
// The decoding rules are the following:
//
// - string fields MUST contain a JSON string (null is also rejected);
//
// - numeric fields MUST contain a JSON number, boolean fields a JSON boolean,
// and null maps to the zero value;
//
// - nested models, lists and maps map null and absent values to the zero
// value, an empty list and an empty map, respectively (or to nil, when
// the field is optional);
//
// - decoding is atomic: on failure the target model is not modified.
//
// When serializing, we emit the declared fields in declaration order, skipping
// the optional fields that are not set, and then the overflow members.
package apijson
