package render

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratchpad/internal/i18n"
	"scratchpad/internal/notes"
)

func newTestScreen(clear bool) (*Screen, *bytes.Buffer) {
	var buf bytes.Buffer
	s := NewScreen(Options{
		Out:          &buf,
		Color:        false,
		ClearScreen:  clear,
		PreviewWidth: 70,
		Messages:     i18n.New("en"),
	})
	return s, &buf
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name          string
		note          string
		wantText      string
		wantIndicator string
	}{
		{"short", "buy milk", "buy milk", indicatorSingle},
		{"multiline", "first\nsecond", "first", indicatorMore},
		{"crlf", "first\r\nsecond", "first", indicatorMore},
		{"exactly width", strings.Repeat("a", 70), strings.Repeat("a", 70), indicatorSingle},
		{"too long", strings.Repeat("b", 80), strings.Repeat("b", 67) + "...", indicatorMore},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, indicator := Preview(tc.note, 70)
			assert.Equal(t, tc.wantText, text)
			assert.Equal(t, tc.wantIndicator, indicator)
		})
	}
}

func TestPreview_WideRunesFitWidth(t *testing.T) {
	text, indicator := Preview(strings.Repeat("你", 50), 70)
	assert.Equal(t, indicatorMore, indicator)
	assert.LessOrEqual(t, runewidth.StringWidth(text), 70)
	assert.True(t, strings.HasSuffix(text, "..."))
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", Shorten("short", 30))
	assert.Equal(t, strings.Repeat("x", 30)+"...", Shorten(strings.Repeat("x", 31), 30))
	assert.Equal(t, "你好...", Shorten("你好世界", 2))
}

func TestHighlight(t *testing.T) {
	id := func(s string) string { return s }
	assert.Equal(t, "[Hello] world, [hello]", Highlight("Hello world, hello", "HELLO", id))
	assert.Equal(t, "no match", Highlight("no match", "zzz", id))
	assert.Equal(t, "plain", Highlight("plain", "", id))
	assert.Equal(t, "[Äpfel] und [äPFEL]", Highlight("Äpfel und äPFEL", "äpfel", id))
}

func TestHighlight_LowercaseChangesByteLengths(t *testing.T) {
	id := func(s string) string { return s }
	// İ shrinks and Ⱥ grows under strings.ToLower
	got := Highlight("İhelloȺ", "hello", id)
	assert.Equal(t, "İ[hello]Ⱥ", got)
	assert.True(t, utf8.ValidString(got))

	got = Highlight("Ⱥ Ⱥ", "ⱥ", id)
	assert.Equal(t, "[Ⱥ] [Ⱥ]", got)
}

func TestMain_EmptyStore(t *testing.T) {
	s, buf := newTestScreen(false)
	s.Main(View{MaxNotes: 100})
	out := buf.String()
	assert.Contains(t, out, "SCRATCHPAD")
	assert.Contains(t, out, "No notes yet")
	assert.Contains(t, out, "Notes (0/100)")
	assert.Contains(t, out, "Clipboard: OFF")
	assert.Contains(t, out, commandHintLine)
	assert.NotContains(t, out, "\x1b[", "color disabled output must not carry escapes")
}

func TestMain_ListsNotesAndMessages(t *testing.T) {
	s, buf := newTestScreen(true)
	s.Main(View{
		Notes:       []string{"buy milk", "line one\nline two"},
		MaxNotes:    2,
		ClipboardOn: true,
		Messages: []Message{
			{Kind: KindStatus, Text: "Removed oldest note (limit: 2)"},
			{Kind: KindError, Text: "Failed to write to history: disk full"},
			{Kind: KindPlain, Text: "📋 Text content: x"},
		},
	})
	out := buf.String()
	require.True(t, strings.HasPrefix(out, clearSequence))
	assert.Contains(t, out, "    1. 📄 buy milk")
	assert.Contains(t, out, "    2. 📄+ line one")
	assert.NotContains(t, out, "line two")
	assert.Contains(t, out, "Notes (2/2)")
	assert.Contains(t, out, "Clipboard: ON")

	evicted := strings.Index(out, "✓ Removed oldest note")
	failed := strings.Index(out, "❌ Failed to write")
	fallback := strings.Index(out, "📋 Text content: x")
	require.True(t, evicted > 0 && failed > evicted && fallback > failed, "messages out of order:\n%s", out)
}

func TestSearchPage(t *testing.T) {
	s, buf := newTestScreen(false)
	s.SearchPage("hello", []notes.Match{{Index: 1, Text: "Hello world"}, {Index: 3, Text: "say hello"}})
	out := buf.String()
	assert.Contains(t, out, "Search results for 'hello'")
	assert.Contains(t, out, " 1. 📄 [Hello] world")
	assert.Contains(t, out, " 3. 📄 say [hello]")
	assert.Contains(t, out, "Found 2 match(es)")
}

func TestHelpPage(t *testing.T) {
	s, buf := newTestScreen(false)
	s.HelpPage(HelpInfo{HistoryFile: "Scratchmd.md", MaxNotes: 42})
	out := buf.String()
	for _, want := range []string{"copy all", "delete all", "search", "Exit the application", "Scratchmd.md", "Maximum 42 notes", "Press Enter to continue"} {
		assert.Contains(t, out, want)
	}
}

func TestMessageAndFatal(t *testing.T) {
	s, buf := newTestScreen(false)
	s.Message(Message{Kind: KindStatus, Text: "Added note #1"})
	s.Fatal(errors.New("boom"))
	s.Goodbye()
	assert.Equal(t, "✓ Added note #1\n❌ Unexpected error: boom\n👋 Goodbye!\n", buf.String())
}

func TestRenderMarkdown_Empty(t *testing.T) {
	assert.Empty(t, RenderMarkdown("   ", 80, false))
}

func TestScreen_ConcurrentWritesKeepLinesWhole(t *testing.T) {
	s, buf := newTestScreen(true)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Main(View{Notes: []string{"a", "b"}, MaxNotes: 10})
		}()
		go func() {
			defer wg.Done()
			s.Goodbye()
		}()
	}
	wg.Wait()

	out := buf.String()
	assert.Equal(t, 8, strings.Count(out, "👋 Goodbye!\n"))
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Goodbye") {
			assert.Equal(t, "👋 Goodbye!", strings.ReplaceAll(line, clearSequence, ""))
		}
	}
}
