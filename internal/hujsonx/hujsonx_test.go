package hujsonx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnmarshal(t *testing.T) {
	type config struct {
		Server   string `json:"server"`
		Username string `json:"username"`
	}

	t.Run("with comments and trailing commas", func(t *testing.T) {
		input := []byte(`{
			// the server to use
			"server": "https://backup.example.com/",
			"username": "admin", /* trailing comma below */
		}`)
		var got config
		if err := Unmarshal(input, &got); err != nil {
			t.Fatal(err)
		}
		expect := config{Server: "https://backup.example.com/", Username: "admin"}
		if diff := cmp.Diff(expect, got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with invalid input", func(t *testing.T) {
		var got config
		if err := Unmarshal([]byte(`{`), &got); err == nil {
			t.Fatal("expected an error")
		}
	})
}
