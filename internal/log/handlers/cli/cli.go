// Package cli contains the apex/log handler used by backupctl.
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
)

// Default handler outputting to stderr.
var Default = New(os.Stderr)

var bold = color.New(color.Bold)

// Colors mapping.
var Colors = [...]*color.Color{
	log.DebugLevel: color.New(color.FgWhite),
	log.InfoLevel:  color.New(color.FgBlue),
	log.WarnLevel:  color.New(color.FgYellow),
	log.ErrorLevel: color.New(color.FgRed),
	log.FatalLevel: color.New(color.FgRed),
}

// Strings mapping.
var Strings = [...]string{
	log.DebugLevel: "•",
	log.InfoLevel:  "•",
	log.WarnLevel:  "•",
	log.ErrorLevel: "⨯",
	log.FatalLevel: "⨯",
}

// Handler implementation.
type Handler struct {
	mu      sync.Mutex
	Writer  io.Writer
	Padding int
}

// New handler.
func New(w io.Writer) *Handler {
	if f, ok := w.(*os.File); ok {
		return &Handler{
			Writer:  colorable.NewColorable(f),
			Padding: 3,
		}
	}

	return &Handler{
		Writer:  w,
		Padding: 3,
	}
}

// sortedNames returns the field names except type in alphabetical order.
func sortedNames(f log.Fields) []string {
	var names []string
	for name := range f {
		if name != "type" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// logTable prints the fields inside a box. We use it to summarize
// the server we are talking to.
func logTable(w io.Writer, f log.Fields) error {
	color := color.New(color.FgBlue)

	var lines []string
	colWidth := 0
	for _, name := range sortedNames(f) {
		line := fmt.Sprintf("%s: %v", color.Sprint(name), f.Get(name))
		if lineLength := escapeAwareRuneCount(line); colWidth < lineLength {
			colWidth = lineLength
		}
		lines = append(lines, line)
	}

	var sb strings.Builder
	sb.WriteString("┏" + strings.Repeat("━", colWidth+2) + "┓\n")
	for _, line := range lines {
		fmt.Fprintf(&sb, "┃ %s ┃\n", rightPad(line, colWidth))
	}
	sb.WriteString("┗" + strings.Repeat("━", colWidth+2) + "┛\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// TypedLog handles entries with a "type" field.
func (h *Handler) TypedLog(t string, e *log.Entry) error {
	switch t {
	case "table":
		return logTable(h.Writer, e.Fields)
	default:
		return h.DefaultLog(e)
	}
}

// DefaultLog is the default way of printing out logs
func (h *Handler) DefaultLog(e *log.Entry) error {
	color := Colors[e.Level]
	level := Strings[e.Level]

	s := color.Sprintf("%s %-25s", bold.Sprintf("%*s", h.Padding+1, level), e.Message)
	for _, name := range sortedNames(e.Fields) {
		s += fmt.Sprintf(" %s=%v", color.Sprint(name), e.Fields.Get(name))
	}

	_, err := fmt.Fprintln(h.Writer, s)
	return err
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, isTyped := e.Fields["type"].(string)
	if isTyped {
		return h.TypedLog(t, e)
	}

	return h.DefaultLog(e)
}
