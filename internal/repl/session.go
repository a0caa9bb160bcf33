package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"scratchpad/internal/clipboard"
	"scratchpad/internal/i18n"
	"scratchpad/internal/notes"
	"scratchpad/internal/render"
)

// deletePreviewRunes bounds the text echoed back after a delete.
const deletePreviewRunes = 30

// HistoryWriter receives every accepted note.
type HistoryWriter interface {
	Append(text string) error
}

type Options struct {
	Store       *notes.Store
	History     HistoryWriter
	HistoryPath string
	Clipboard   clipboard.Clipboard
	Input       LineInput
	Screen      *render.Screen
	Messages    *i18n.I18n
	Logger      *slog.Logger
}

// Session owns the note store for one interactive run: it redraws, reads a
// line, dispatches it and queues feedback for the next redraw.
type Session struct {
	store       *notes.Store
	history     HistoryWriter
	historyPath string
	clip        clipboard.Clipboard
	input       LineInput
	screen      *render.Screen
	msgs        *i18n.I18n
	logger      *slog.Logger

	pending []render.Message
}

func New(opts Options) *Session {
	s := &Session{
		store:       opts.Store,
		history:     opts.History,
		historyPath: opts.HistoryPath,
		clip:        opts.Clipboard,
		input:       opts.Input,
		screen:      opts.Screen,
		msgs:        opts.Messages,
		logger:      opts.Logger,
	}
	if s.store == nil {
		s.store = notes.New(notes.DefaultMaxNotes)
	}
	if s.clip == nil {
		s.clip = clipboard.Unavailable{}
	}
	if s.msgs == nil {
		s.msgs = i18n.Global()
	}
	if s.screen == nil {
		s.screen = render.NewScreen(render.Options{Out: io.Discard, Messages: s.msgs})
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Store exposes the session's notes.
func (s *Session) Store() *notes.Store { return s.store }

// Run loops until exit, end of input or interrupt, all of which return nil.
// A non-nil error means something the dispatcher does not know how to
// recover from.
func (s *Session) Run(ctx context.Context) error {
	if s.input == nil {
		return fmt.Errorf("line input is nil")
	}
	// queued so the first redraw, which may clear the terminal, shows it
	s.pending = append(s.pending, render.Message{Kind: render.KindBanner, Text: s.msgs.T("app.welcome")})
	for {
		if ctx.Err() != nil {
			s.screen.Goodbye()
			return nil
		}
		s.redraw()

		line, err := s.input.ReadLine(s.screen.Prompt())
		if err != nil {
			if isEndOfInput(err) {
				s.logger.Debug("input closed", "reason", err)
				s.screen.Goodbye()
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		quit, err := s.Execute(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			s.screen.Goodbye()
			return nil
		}
	}
}

// Execute dispatches one input line. It reports whether the session should
// end; recoverable failures become messages, anything else is returned.
func (s *Session) Execute(ctx context.Context, line string) (quit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while handling %q: %v", strings.TrimSpace(line), r)
		}
	}()

	cmd, err := Parse(line)
	if err != nil {
		return false, s.recoverable(err)
	}

	switch cmd.Kind {
	case KindNoop:
		return false, nil
	case KindAdd:
		return false, s.add(cmd.Arg)
	case KindCopy:
		return false, s.copyOne(ctx, cmd.Index)
	case KindCopyAll:
		return false, s.copyAll(ctx)
	case KindDelete:
		return false, s.deleteOne(cmd.Index)
	case KindDeleteAll:
		return false, s.deleteAll()
	case KindSearch:
		return s.search(cmd.Arg)
	case KindHelp:
		s.screen.HelpPage(render.HelpInfo{HistoryFile: s.historyPath, MaxNotes: s.store.Cap()})
		return s.pause()
	case KindExit:
		return true, nil
	default:
		return false, fmt.Errorf("unhandled command kind %s", cmd.Kind)
	}
}

func (s *Session) add(text string) error {
	res, err := s.store.Add(text)
	if err != nil {
		return s.recoverable(err)
	}
	if res.Evicted {
		s.logger.Info("evicted oldest note", "limit", s.store.Cap())
		s.status(s.msgs.T("add.evicted", s.store.Cap()))
	}
	if s.history != nil {
		if err := s.history.Append(res.Text); err != nil {
			s.logger.Warn("history write failed", "err", err)
			s.fail(s.msgs.T("history.failed", err))
		}
	}
	s.logger.Debug("note added", "index", res.Index)
	s.status(s.msgs.T("add.done", res.Index))
	return nil
}

func (s *Session) copyOne(ctx context.Context, index int) error {
	text, err := s.store.Get(index)
	if err != nil {
		return s.recoverable(err)
	}
	if s.copyText(ctx, text) {
		s.status(s.msgs.T("copy.done", index))
	}
	return nil
}

func (s *Session) copyAll(ctx context.Context) error {
	text, err := s.store.CopyAll()
	if errors.Is(err, notes.ErrEmptyStore) {
		s.fail(s.msgs.T("copy.empty"))
		return nil
	}
	if err != nil {
		return s.recoverable(err)
	}
	if s.copyText(ctx, text) {
		s.status(s.msgs.T("copy.all_done", s.store.Len()))
	}
	return nil
}

// copyText hands text to the clipboard. When that is impossible the text is
// shown verbatim so it can be copied by hand.
func (s *Session) copyText(ctx context.Context, text string) bool {
	var err error
	if !s.clip.Available() {
		err = clipboard.ErrUnavailable
	} else {
		err = s.clip.Copy(ctx, text)
	}
	if err == nil {
		return true
	}
	s.logger.Warn("clipboard copy failed", "clipboard", s.clip.Name(), "err", err)
	if errors.Is(err, clipboard.ErrUnavailable) {
		s.fail(s.msgs.T("clipboard.unavailable"))
	} else {
		s.fail(s.msgs.T("clipboard.failed", err))
	}
	s.plain(s.msgs.T("clipboard.fallback", text))
	return false
}

func (s *Session) deleteOne(index int) error {
	removed, err := s.store.Delete(index)
	if err != nil {
		return s.recoverable(err)
	}
	s.logger.Debug("note deleted", "index", index)
	s.status(s.msgs.T("delete.done", render.Shorten(removed, deletePreviewRunes)))
	return nil
}

func (s *Session) deleteAll() error {
	n, err := s.store.DeleteAll()
	if errors.Is(err, notes.ErrEmptyStore) {
		s.fail(s.msgs.T("delete.empty"))
		return nil
	}
	if err != nil {
		return s.recoverable(err)
	}
	s.logger.Debug("notes cleared", "count", n)
	s.status(s.msgs.T("delete.all_done", n))
	return nil
}

func (s *Session) search(query string) (bool, error) {
	matches, err := s.store.Search(query)
	if err != nil {
		return false, s.recoverable(err)
	}
	query = strings.TrimSpace(query)
	if len(matches) == 0 {
		s.fail(s.msgs.T("search.none", query))
		return false, nil
	}
	s.screen.SearchPage(query, matches)
	return s.pause()
}

// pause waits for Enter after a full-page view. Closing the input here ends
// the session like it does at the prompt.
func (s *Session) pause() (bool, error) {
	_, err := s.input.ReadLine("")
	if err == nil {
		return false, nil
	}
	if isEndOfInput(err) {
		return true, nil
	}
	return false, fmt.Errorf("read input: %w", err)
}

// recoverable turns the error kinds the loop knows about into messages and
// returns nil; anything else is passed back up.
func (s *Session) recoverable(err error) error {
	var usage *UsageError
	switch {
	case errors.Is(err, notes.ErrEmptyInput):
		s.fail(s.msgs.T("add.empty"))
	case errors.Is(err, notes.ErrIndexOutOfRange):
		s.fail(s.msgs.T("error.index"))
	case errors.Is(err, notes.ErrEmptyStore):
		s.fail(s.msgs.T("copy.empty"))
	case errors.Is(err, notes.ErrEmptyQuery):
		s.fail(s.msgs.T("search.empty_query"))
	case errors.As(err, &usage):
		s.fail(s.msgs.T("error.usage", usage.Usage))
	case errors.Is(err, ErrUnknownCommand):
		s.fail(s.msgs.T("error.unknown"))
	default:
		return err
	}
	s.logger.Debug("command rejected", "err", err)
	return nil
}

func (s *Session) redraw() {
	s.screen.Main(render.View{
		Notes:       s.store.List(),
		MaxNotes:    s.store.Cap(),
		ClipboardOn: s.clip.Available(),
		Messages:    s.pending,
	})
	s.pending = nil
}

func (s *Session) status(text string) {
	s.pending = append(s.pending, render.Message{Kind: render.KindStatus, Text: text})
}

func (s *Session) fail(text string) {
	s.pending = append(s.pending, render.Message{Kind: render.KindError, Text: text})
}

func (s *Session) plain(text string) {
	s.pending = append(s.pending, render.Message{Kind: render.KindPlain, Text: text})
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupt)
}
