package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-colorable"
	"golang.org/x/term"

	"scratchpad/internal/clipboard"
	"scratchpad/internal/config"
	"scratchpad/internal/history"
	"scratchpad/internal/i18n"
	"scratchpad/internal/logging"
	"scratchpad/internal/notes"
	"scratchpad/internal/render"
	"scratchpad/internal/repl"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		return 1
	}
	msgs := i18n.Init(cfg.UI.Locale)

	logger, closeLog, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init log failed: %v\n", err)
		return 1
	}
	defer closeLog()

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	out := colorable.NewColorableStdout()

	screen := render.NewScreen(render.Options{
		Out:          out,
		Color:        useColor(cfg.UI.Color, stdoutTTY, os.Getenv("TERM")),
		ClearScreen:  cfg.UI.ClearScreen && stdoutTTY,
		PreviewWidth: cfg.UI.PreviewWidth,
		Messages:     msgs,
	})
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic", "value", r)
			screen.Fatal(fmt.Errorf("%v", r))
			code = 1
		}
	}()

	clip, err := clipboard.Select(cfg.Clipboard.Mode, time.Duration(cfg.Clipboard.TimeoutMS)*time.Millisecond, out, stdoutTTY)
	if err != nil {
		logger.Warn("clipboard selection failed", "mode", cfg.Clipboard.Mode, "err", err)
		clip = clipboard.Unavailable{}
	}

	hist := history.New(cfg.History.File)
	if err := hist.Init(); err != nil {
		logger.Warn("history init failed", "path", hist.Path(), "err", err)
		fmt.Fprintln(os.Stderr, msgs.T("warn.history_init", err))
	}

	input, inputErr := repl.NewLineInput(stdinTTY && stdoutTTY, repl.ReadlineOptions{
		HistoryFile:  cfg.Input.HistoryFile,
		HistoryLimit: cfg.Input.HistoryLimit,
		Stdout:       out,
	})
	if inputErr != nil {
		logger.Warn("line editor unavailable", "err", inputErr)
		fmt.Fprintln(os.Stderr, msgs.T("warn.line_editor", inputErr))
	}
	defer input.Close()

	watchSignals(input, screen, logger, closeLog)

	logger.Info("session start",
		"history", hist.Path(),
		"max_notes", cfg.Notes.MaxNotes,
		"clipboard", clip.Name(),
		"locale", msgs.Locale(),
	)
	session := repl.New(repl.Options{
		Store:       notes.New(cfg.Notes.MaxNotes),
		History:     hist,
		HistoryPath: hist.Path(),
		Clipboard:   clip,
		Input:       input,
		Screen:      screen,
		Messages:    msgs,
		Logger:      logger,
	})
	if err := session.Run(context.Background()); err != nil {
		logger.Error("session failed", "err", err)
		screen.Fatal(err)
		return 1
	}
	logger.Info("session end")
	return 0
}

// watchSignals ends the process with a farewell on SIGINT or SIGTERM. The
// line editor sees Ctrl+C itself while it owns the terminal, so this mostly
// fires for piped input and external kills. The main goroutine may still be
// drawing or reading: Screen serializes the farewell against a redraw, and
// os.Exit ends whatever read was pending.
func watchSignals(input io.Closer, screen *render.Screen, logger *slog.Logger, closeLog func() error) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		logger.Info("signal received", "signal", sig.String())
		_ = input.Close()
		screen.Goodbye()
		_ = closeLog()
		os.Exit(0)
	}()
}

func useColor(enabled, stdoutTTY bool, termName string) bool {
	return enabled && stdoutTTY && !strings.EqualFold(strings.TrimSpace(termName), "dumb")
}
