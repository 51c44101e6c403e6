package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiEscape matches the color escape sequences emitted by fatih/color.
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// escapeAwareRuneCount counts the runes of str ignoring color escapes.
func escapeAwareRuneCount(str string) int {
	return utf8.RuneCountInString(ansiEscape.ReplaceAllString(str, ""))
}

// rightPad pads str with spaces until it is length runes long.
func rightPad(str string, length int) string {
	count := escapeAwareRuneCount(str)
	if count >= length {
		return str
	}
	return str + strings.Repeat(" ", length-count)
}
