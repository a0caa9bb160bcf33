package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"scratchpad/internal/i18n"
	"scratchpad/internal/notes"
)

const (
	ruleWidth       = 63
	pageRuleWidth   = 50
	clearSequence   = "\x1b[H\x1b[2J"
	commandHintLine = "add <text> | copy <n> | copy all | delete <n> | delete all | search <term> | exit"
)

// MessageKind selects how a status line is styled.
type MessageKind int

const (
	KindStatus MessageKind = iota
	KindError
	KindPlain
	KindBanner
)

// Message is one line of feedback shown under the command hints.
type Message struct {
	Kind MessageKind
	Text string
}

// View is everything the main screen shows.
type View struct {
	Notes       []string
	MaxNotes    int
	ClipboardOn bool
	Messages    []Message
}

// HelpInfo fills the tips section of the help page.
type HelpInfo struct {
	HistoryFile string
	MaxNotes    int
}

type Options struct {
	Out          io.Writer
	Color        bool
	ClearScreen  bool
	PreviewWidth int
	Messages     *i18n.I18n
}

// Screen draws the scratchpad. It only writes; it never queries the terminal.
// Writes are serialized, so the signal watcher may print while a redraw runs.
type Screen struct {
	mu           sync.Mutex
	out          io.Writer
	theme        Theme
	color        bool
	clear        bool
	previewWidth int
	msgs         *i18n.I18n
}

func NewScreen(opts Options) *Screen {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	r := lipgloss.NewRenderer(out)
	if !opts.Color {
		r.SetColorProfile(termenv.Ascii)
	}
	msgs := opts.Messages
	if msgs == nil {
		msgs = i18n.Global()
	}
	width := opts.PreviewWidth
	if width <= 0 {
		width = 70
	}
	return &Screen{
		out:          out,
		theme:        DarkTheme(r),
		color:        opts.Color,
		clear:        opts.ClearScreen,
		previewWidth: width,
		msgs:         msgs,
	}
}

// Clear wipes the terminal when clearing is enabled.
func (s *Screen) Clear() {
	if s.clear {
		s.write(clearSequence)
	}
}

// Prompt returns the styled input prompt.
func (s *Screen) Prompt() string {
	return s.theme.PromptStyle.Render(s.msgs.T("app.prompt"))
}

func (s *Screen) Goodbye() {
	s.println(s.theme.SuccessStyle.Render(s.msgs.T("app.goodbye")))
}

// Fatal reports an error that ends the session.
func (s *Screen) Fatal(err error) {
	s.println(s.theme.ErrorStyle.Render("❌ " + s.msgs.T("app.unexpected", err)))
}

// Message writes a single feedback line.
func (s *Screen) Message(m Message) {
	switch m.Kind {
	case KindStatus:
		s.println(s.theme.SuccessStyle.Render("✓ " + m.Text))
	case KindError:
		s.println(s.theme.ErrorStyle.Render("❌ " + m.Text))
	case KindBanner:
		s.println(s.theme.TitleStyle.Render(m.Text))
	default:
		s.println(m.Text)
	}
}

// Main redraws the full note list with footer, hints and pending messages.
func (s *Screen) Main(v View) {
	s.Clear()
	s.println(s.theme.BoxStyle.Render(s.msgs.T("screen.title")))
	s.println("")

	if len(v.Notes) == 0 {
		s.println(s.theme.MutedStyle.Render("   " + s.msgs.T("screen.empty")))
	} else {
		for i, note := range v.Notes {
			idx := i + 1
			preview, indicator := Preview(note, s.previewWidth)
			style := s.theme.RowOddStyle
			if idx%2 == 0 {
				style = s.theme.RowEvenStyle
			}
			s.println(style.Render(fmt.Sprintf("   %2d.%s %s", idx, indicator, preview)))
		}
	}
	s.println("")

	clip := s.msgs.T("screen.clipboard_off")
	if v.ClipboardOn {
		clip = s.msgs.T("screen.clipboard_on")
	}
	s.rule(ruleWidth)
	s.println(s.theme.StatusStyle.Render(s.msgs.T("screen.status", len(v.Notes), v.MaxNotes, clip)))
	s.rule(ruleWidth)
	s.println(s.theme.StatusStyle.Render(s.msgs.T("screen.commands")))
	s.println(s.theme.HintStyle.Render("   " + commandHintLine))
	s.rule(ruleWidth)

	for _, m := range v.Messages {
		s.Message(m)
	}
}

// SearchPage lists search hits with the query highlighted.
func (s *Screen) SearchPage(query string, matches []notes.Match) {
	s.Clear()
	s.println(s.theme.TitleStyle.Render(s.msgs.T("search.title", query)))
	s.rule(pageRuleWidth)
	mark := func(m string) string { return s.theme.HighlightStyle.Render(m) }
	for _, m := range matches {
		line := fmt.Sprintf("   %2d. 📄 %s", m.Index, Highlight(m.Text, query, mark))
		s.println(line)
	}
	s.rule(pageRuleWidth)
	s.println(s.theme.StatusStyle.Render(s.msgs.T("search.found", len(matches))))
}

// HelpPage renders the command reference through glamour.
func (s *Screen) HelpPage(info HelpInfo) {
	s.Clear()
	s.println(RenderMarkdown(s.helpMarkdown(info), 80, s.color))
	s.println("")
	s.println(s.theme.StatusStyle.Render(s.msgs.T("help.continue")))
}

func (s *Screen) helpMarkdown(info HelpInfo) string {
	rows := []struct{ cmd, key string }{
		{"add <text>", "help.add"},
		{"copy <n>", "help.copy"},
		{"copy all", "help.copy_all"},
		{"delete <n>", "help.delete"},
		{"delete all", "help.delete_all"},
		{"search <term>", "help.search"},
		{"help", "help.help"},
		{"exit", "help.exit"},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.msgs.T("help.title"))
	fmt.Fprintf(&b, "## %s\n\n", s.msgs.T("help.commands"))
	for _, r := range rows {
		fmt.Fprintf(&b, "- `%s` %s\n", r.cmd, s.msgs.T(r.key))
	}
	fmt.Fprintf(&b, "\n## %s\n\n", s.msgs.T("help.tips"))
	fmt.Fprintf(&b, "- %s\n", s.msgs.T("help.tip_history", "`"+info.HistoryFile+"`"))
	fmt.Fprintf(&b, "- %s\n", s.msgs.T("help.tip_truncate"))
	fmt.Fprintf(&b, "- %s\n", s.msgs.T("help.tip_max", info.MaxNotes))
	return b.String()
}

func (s *Screen) rule(width int) {
	s.println(s.theme.RuleStyle.Render(strings.Repeat("─", width)))
}

func (s *Screen) println(line string) {
	s.write(line + "\n")
}

func (s *Screen) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, text)
}
