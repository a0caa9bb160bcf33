package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

var (
	ErrUnavailable = errors.New("clipboard not available")
	ErrCopy        = errors.New("clipboard copy failed")
)

// Modes accepted by Select.
const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
	ModeOff    = "off"
)

// DefaultTimeout bounds a single system clipboard write.
const DefaultTimeout = 2 * time.Second

// Clipboard is the copy capability handed to the session.
type Clipboard interface {
	Name() string
	Available() bool
	Copy(ctx context.Context, text string) error
}

// System writes through the platform clipboard helpers (pbcopy, xclip,
// wl-copy, the Windows API).
type System struct {
	timeout     time.Duration
	write       func(string) error
	unsupported func() bool
}

func NewSystem(timeout time.Duration) *System {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &System{
		timeout:     timeout,
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

func (s *System) Name() string { return ModeSystem }

func (s *System) Available() bool { return !s.unsupported() }

// Copy runs the write in the background so a stuck helper process cannot
// hold the session past the timeout.
func (s *System) Copy(ctx context.Context, text string) error {
	if !s.Available() {
		return ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.write(text) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCopy, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrCopy, ctx.Err())
	}
}

// OSC52 asks the terminal emulator to set the clipboard through an escape
// sequence, which also works over SSH.
type OSC52 struct {
	out  io.Writer
	tmux bool
	scr  bool
}

func NewOSC52(out io.Writer) *OSC52 {
	term := os.Getenv("TERM")
	return &OSC52{
		out:  out,
		tmux: os.Getenv("TMUX") != "",
		scr:  strings.HasPrefix(term, "screen") && os.Getenv("TMUX") == "",
	}
}

func (o *OSC52) Name() string { return ModeOSC52 }

func (o *OSC52) Available() bool { return o.out != nil }

func (o *OSC52) Copy(_ context.Context, text string) error {
	if o.out == nil {
		return ErrUnavailable
	}
	seq := osc52.New(text)
	switch {
	case o.tmux:
		seq = seq.Tmux()
	case o.scr:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.out); err != nil {
		return fmt.Errorf("%w: %v", ErrCopy, err)
	}
	return nil
}

// Unavailable is used when no clipboard can be reached; every copy fails.
type Unavailable struct{}

func (Unavailable) Name() string { return ModeOff }

func (Unavailable) Available() bool { return false }

func (Unavailable) Copy(context.Context, string) error { return ErrUnavailable }

// Select picks the adapter for mode. In auto mode the system clipboard wins,
// then OSC 52 when out is a terminal, then Unavailable.
func Select(mode string, timeout time.Duration, out io.Writer, outIsTerminal bool) (Clipboard, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto:
		if sys := NewSystem(timeout); sys.Available() {
			return sys, nil
		}
		if outIsTerminal {
			return NewOSC52(out), nil
		}
		return Unavailable{}, nil
	case ModeSystem:
		return NewSystem(timeout), nil
	case ModeOSC52:
		return NewOSC52(out), nil
	case ModeOff:
		return Unavailable{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q", mode)
	}
}
