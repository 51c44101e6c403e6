package main

import (
	"encoding/json"
	"io"
)

// printJSON writes v as indented JSON. Models serialize through their
// MarshalJSON methods, hence unknown keys survive.
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printText writes text followed by a newline unless text already ends with one.
func printText(w io.Writer, text string) error {
	if text != "" && text[len(text)-1] != '\n' {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
