package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned by ReadLine when the user presses Ctrl+C.
var ErrInterrupt = errors.New("interrupt")

// LineInput reads one line per call. io.EOF ends the session.
type LineInput interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type basicLineInput struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewBasicLineInput reads plain lines from in, for pipes and dumb terminals.
func NewBasicLineInput(in io.Reader, out io.Writer) LineInput {
	return &basicLineInput{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (b *basicLineInput) ReadLine(prompt string) (string, error) {
	if b.out != nil {
		fmt.Fprint(b.out, prompt)
	}
	line, err := b.reader.ReadString('\n')
	if err != nil {
		// a final line without newline still counts
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (b *basicLineInput) Close() error { return nil }

type readlineInput struct {
	instance *readline.Instance
}

// ReadlineOptions configures the interactive line editor.
type ReadlineOptions struct {
	HistoryFile  string
	HistoryLimit int
	Stdout       io.Writer
}

// NewReadlineInput builds a line editor with command completion and a
// persisted input history.
func NewReadlineInput(opts ReadlineOptions) (LineInput, error) {
	if opts.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.HistoryFile), 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	cfg := &readline.Config{
		Prompt:            "> ",
		HistoryFile:       opts.HistoryFile,
		HistoryLimit:      opts.HistoryLimit,
		HistorySearchFold: true,
		AutoComplete:      commandCompleter(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	}
	if opts.Stdout != nil {
		cfg.Stdout = opts.Stdout
	}
	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return &readlineInput{instance: instance}, nil
}

func (r *readlineInput) ReadLine(prompt string) (string, error) {
	r.instance.SetPrompt(prompt)
	line, err := r.instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	return line, err
}

func (r *readlineInput) Close() error {
	if r == nil || r.instance == nil {
		return nil
	}
	return r.instance.Close()
}

// NewLineInput prefers the line editor and falls back to plain reads; the
// error reports why the editor could not be used.
func NewLineInput(interactive bool, opts ReadlineOptions) (LineInput, error) {
	if !interactive {
		return NewBasicLineInput(os.Stdin, opts.Stdout), nil
	}
	in, err := NewReadlineInput(opts)
	if err == nil {
		return in, nil
	}
	return NewBasicLineInput(os.Stdin, opts.Stdout), err
}

func commandCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("add"),
		readline.PcItem("copy", readline.PcItem("all")),
		readline.PcItem("delete", readline.PcItem("all")),
		readline.PcItem("search"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}
