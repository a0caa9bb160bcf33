package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Kind identifies a parsed command.
type Kind int

const (
	KindNoop Kind = iota
	KindAdd
	KindCopy
	KindCopyAll
	KindDelete
	KindDeleteAll
	KindSearch
	KindHelp
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindNoop:
		return "noop"
	case KindAdd:
		return "add"
	case KindCopy:
		return "copy"
	case KindCopyAll:
		return "copy all"
	case KindDelete:
		return "delete"
	case KindDeleteAll:
		return "delete all"
	case KindSearch:
		return "search"
	case KindHelp:
		return "help"
	case KindExit:
		return "exit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Command is one parsed input line. Index is set for copy and delete,
// Arg for add and search.
type Command struct {
	Kind  Kind
	Index int
	Arg   string
}

var (
	ErrUsage          = errors.New("usage")
	ErrUnknownCommand = errors.New("unknown command")
)

// UsageError reports a recognized command with a malformed argument.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string { return "usage: " + e.Usage }

func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// Parse splits line at the first whitespace run into a lowercased command
// token and its argument, which keeps its case and inner whitespace.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: KindNoop}, nil
	}

	token, arg := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		token, arg = line[:i], strings.TrimSpace(line[i:])
	}
	token = strings.ToLower(token)

	switch token {
	case "add":
		return Command{Kind: KindAdd, Arg: arg}, nil
	case "copy":
		if strings.EqualFold(arg, "all") {
			return Command{Kind: KindCopyAll}, nil
		}
		n, err := parseIndex(arg, "copy <number>")
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindCopy, Index: n}, nil
	case "delete":
		if strings.EqualFold(arg, "all") {
			return Command{Kind: KindDeleteAll}, nil
		}
		n, err := parseIndex(arg, "delete <number>")
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindDelete, Index: n}, nil
	case "search":
		return Command{Kind: KindSearch, Arg: arg}, nil
	case "help", "?":
		if arg == "" {
			return Command{Kind: KindHelp}, nil
		}
	case "exit":
		if arg == "" {
			return Command{Kind: KindExit}, nil
		}
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}

// parseIndex accepts only plain decimal digits with a value of at least 1.
func parseIndex(arg, usage string) (int, error) {
	if arg == "" || strings.IndexFunc(arg, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, &UsageError{Usage: usage}
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, &UsageError{Usage: usage}
	}
	return n, nil
}
