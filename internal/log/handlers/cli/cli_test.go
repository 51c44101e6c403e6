package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/fatih/color"
)

func TestHandler(t *testing.T) {
	color.NoColor = true

	t.Run("DefaultLog", func(t *testing.T) {
		var buf bytes.Buffer
		h := New(&buf)
		err := h.HandleLog(&log.Entry{
			Level:   log.WarnLevel,
			Message: "cannot read config",
			Fields:  log.Fields{"path": "/tmp/x.hujson", "attempt": 2},
		})
		if err != nil {
			t.Fatal(err)
		}
		got := buf.String()
		if !strings.HasPrefix(got, "   • cannot read config") {
			t.Fatalf("unexpected prefix: %q", got)
		}
		if !strings.HasSuffix(got, " attempt=2 path=/tmp/x.hujson\n") {
			t.Fatalf("unexpected suffix: %q", got)
		}
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		h := New(&buf)
		err := h.HandleLog(&log.Entry{
			Level: log.InfoLevel,
			Fields: log.Fields{
				"type":    "table",
				"Version": "23.9.4",
				"Server":  "https://backup.example.com/",
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != 4 {
			t.Fatalf("unexpected lines: %q", lines)
		}
		if lines[1] != "┃ Server: https://backup.example.com/ ┃" {
			t.Fatalf("unexpected line: %q", lines[1])
		}
		if lines[2] != "┃ Version: 23.9.4                     ┃" {
			t.Fatalf("unexpected line: %q", lines[2])
		}
	})
}

func TestRightPad(t *testing.T) {
	if got := rightPad("\x1b[34mab\x1b[0m", 4); got != "\x1b[34mab\x1b[0m  " {
		t.Fatalf("unexpected result: %q", got)
	}
	if got := rightPad("abcdef", 4); got != "abcdef" {
		t.Fatalf("unexpected result: %q", got)
	}
}
