package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	indicatorSingle = " 📄"
	indicatorMore   = " 📄+"
	ellipsis        = "..."
)

// Preview returns the first line of note cut to width display cells, and
// the indicator shown after the index: "+" when the note has more lines or
// was cut.
func Preview(note string, width int) (string, string) {
	first, _, multiline := strings.Cut(note, "\n")
	first = strings.TrimRight(first, "\r")
	if width > 0 && runewidth.StringWidth(first) > width {
		return runewidth.Truncate(first, width, ellipsis), indicatorMore
	}
	if multiline {
		return first, indicatorMore
	}
	return first, indicatorSingle
}

// Shorten keeps the first n runes of s and marks the cut with "...".
func Shorten(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + ellipsis
}

// Highlight wraps every case-insensitive occurrence of query in text with
// brackets and passes the bracketed part through mark. Matching walks text
// rune by rune, so the cut points always fall on rune boundaries of text.
func Highlight(text, query string, mark func(string) string) string {
	if query == "" {
		return text
	}
	var b strings.Builder
	pos := 0
	for i := 0; i < len(text); {
		if end, ok := foldPrefix(text[i:], query); ok {
			b.WriteString(text[pos:i])
			b.WriteString(mark("[" + text[i:i+end] + "]"))
			i += end
			pos = i
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	b.WriteString(text[pos:])
	return b.String()
}

// foldPrefix reports whether s starts with query under simple case folding,
// and the byte length of the matched prefix of s.
func foldPrefix(s, query string) (int, bool) {
	n := 0
	for _, q := range query {
		if n >= len(s) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s[n:])
		if !equalFoldRune(r, q) {
			return 0, false
		}
		n += size
	}
	return n, n > 0
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
