package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Header is written at the top of a new or empty history file.
const Header = "# Scratchpad History\n\n"

const timestampLayout = "2006-01-02 15:04:05"

// ErrWrite marks every failure to create or append to the history file.
var ErrWrite = errors.New("history write failed")

// Log appends one timestamped line per accepted note. It never reads the
// file back and never rewrites existing content.
type Log struct {
	path string
	now  func() time.Time
}

func New(path string) *Log {
	return &Log{path: strings.TrimSpace(path), now: time.Now}
}

// Path returns the history file location.
func (l *Log) Path() string { return l.path }

// Init creates the file with its header if it does not exist yet.
func (l *Log) Init() error {
	if l.path == "" {
		return fmt.Errorf("%w: history path is empty", ErrWrite)
	}
	if _, err := os.Stat(l.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %v", ErrWrite, l.path, err)
	}
	return l.write("")
}

// Append writes "- [YYYY-MM-DD HH:MM:SS] text". The file is opened and
// closed on every call.
func (l *Log) Append(text string) error {
	if l.path == "" {
		return fmt.Errorf("%w: history path is empty", ErrWrite)
	}
	line := fmt.Sprintf("- [%s] %s\n", l.now().Format(timestampLayout), text)
	return l.write(line)
}

func (l *Log) write(line string) (err error) {
	if dir := filepath.Dir(l.path); dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return fmt.Errorf("%w: create dir %s: %v", ErrWrite, dir, mkErr)
		}
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrWrite, l.path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %v", ErrWrite, l.path, closeErr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", ErrWrite, l.path, err)
	}
	if info.Size() == 0 {
		line = Header + line
	}
	if line == "" {
		return nil
	}
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("%w: append %s: %v", ErrWrite, l.path, err)
	}
	return nil
}
