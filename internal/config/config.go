package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type HistoryConfig struct {
	File string `json:"file"`
}

type NotesConfig struct {
	MaxNotes int `json:"max_notes"`
}

type ClipboardConfig struct {
	// Mode is one of auto, system, osc52, off.
	Mode      string `json:"mode"`
	TimeoutMS int    `json:"timeout_ms"`
}

type UIConfig struct {
	Locale       string `json:"locale"`
	Color        bool   `json:"color"`
	ClearScreen  bool   `json:"clear_screen"`
	PreviewWidth int    `json:"preview_width"`
}

type InputConfig struct {
	HistoryFile  string `json:"history_file"`
	HistoryLimit int    `json:"history_limit"`
}

type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

type Config struct {
	History   HistoryConfig   `json:"history"`
	Notes     NotesConfig     `json:"notes"`
	Clipboard ClipboardConfig `json:"clipboard"`
	UI        UIConfig        `json:"ui"`
	Input     InputConfig     `json:"input"`
	Log       LogConfig       `json:"log"`
}

// file* mirrors use pointers so a config file can switch a bool off without
// losing the difference between "false" and "not set".
type fileUIConfig struct {
	Locale       *string `json:"locale"`
	Color        *bool   `json:"color"`
	ClearScreen  *bool   `json:"clear_screen"`
	PreviewWidth *int    `json:"preview_width"`
}

type fileConfig struct {
	History   *HistoryConfig   `json:"history"`
	Notes     *NotesConfig     `json:"notes"`
	Clipboard *ClipboardConfig `json:"clipboard"`
	UI        *fileUIConfig    `json:"ui"`
	Input     *InputConfig     `json:"input"`
	Log       *LogConfig       `json:"log"`
}

func Default() Config {
	return Config{
		History: HistoryConfig{File: DefaultHistoryFile},
		Notes:   NotesConfig{MaxNotes: DefaultMaxNotes},
		Clipboard: ClipboardConfig{
			Mode:      "auto",
			TimeoutMS: DefaultClipboardTimeoutMS,
		},
		UI: UIConfig{
			Color:        true,
			ClearScreen:  true,
			PreviewWidth: DefaultPreviewWidth,
		},
		Input: InputConfig{
			HistoryFile:  "~/.scratchpad/input.history",
			HistoryLimit: DefaultInputHistoryLimit,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load merges defaults, the global file, the project file (or path, or
// SCRATCHPAD_CONFIG_PATH) and finally environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	for _, globalPath := range globalConfigPaths() {
		if err := mergeFromFile(&cfg, globalPath); err != nil {
			return Config{}, err
		}
	}

	resolvedPath := strings.TrimSpace(path)
	if envPath := strings.TrimSpace(os.Getenv("SCRATCHPAD_CONFIG_PATH")); envPath != "" {
		resolvedPath = envPath
	}
	if resolvedPath == "" {
		resolvedPath = findProjectConfigPath()
	}
	if err := mergeFromFile(&cfg, resolvedPath); err != nil {
		return Config{}, err
	}

	cfg, err := applyEnv(cfg)
	if err != nil {
		return Config{}, err
	}
	if err := normalize(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func globalConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(home, ".scratchpad", "config.json")}
}

func findProjectConfigPath() string {
	candidates := []string{
		"scratchpad.config.json",
		".scratchpad/config.json",
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func mergeFromFile(cfg *Config, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("expand config path %q: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %q: %w", resolved, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(stripJSONComments(data), &fc); err != nil {
		return fmt.Errorf("parse config %q: %w", resolved, err)
	}
	applyFileConfig(cfg, fc)
	return nil
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if fc.History != nil && strings.TrimSpace(fc.History.File) != "" {
		cfg.History.File = fc.History.File
	}
	if fc.Notes != nil && fc.Notes.MaxNotes > 0 {
		cfg.Notes.MaxNotes = fc.Notes.MaxNotes
	}
	if fc.Clipboard != nil {
		if strings.TrimSpace(fc.Clipboard.Mode) != "" {
			cfg.Clipboard.Mode = fc.Clipboard.Mode
		}
		if fc.Clipboard.TimeoutMS > 0 {
			cfg.Clipboard.TimeoutMS = fc.Clipboard.TimeoutMS
		}
	}
	if fc.UI != nil {
		if fc.UI.Locale != nil {
			cfg.UI.Locale = *fc.UI.Locale
		}
		if fc.UI.Color != nil {
			cfg.UI.Color = *fc.UI.Color
		}
		if fc.UI.ClearScreen != nil {
			cfg.UI.ClearScreen = *fc.UI.ClearScreen
		}
		if fc.UI.PreviewWidth != nil {
			cfg.UI.PreviewWidth = *fc.UI.PreviewWidth
		}
	}
	if fc.Input != nil {
		if strings.TrimSpace(fc.Input.HistoryFile) != "" {
			cfg.Input.HistoryFile = fc.Input.HistoryFile
		}
		if fc.Input.HistoryLimit != 0 {
			cfg.Input.HistoryLimit = fc.Input.HistoryLimit
		}
	}
	if fc.Log != nil {
		if strings.TrimSpace(fc.Log.File) != "" {
			cfg.Log.File = fc.Log.File
		}
		if strings.TrimSpace(fc.Log.Level) != "" {
			cfg.Log.Level = fc.Log.Level
		}
	}
}

func applyEnv(cfg Config) (Config, error) {
	if v := strings.TrimSpace(os.Getenv("SCRATCHPAD_HISTORY_FILE")); v != "" {
		cfg.History.File = v
	}
	if v := strings.TrimSpace(os.Getenv("SCRATCHPAD_MAX_NOTES")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid SCRATCHPAD_MAX_NOTES: %q", v)
		}
		cfg.Notes.MaxNotes = n
	}
	if v := strings.TrimSpace(os.Getenv("SCRATCHPAD_CLIPBOARD")); v != "" {
		cfg.Clipboard.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv("SCRATCHPAD_LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("SCRATCHPAD_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		cfg.UI.Color = false
	}
	return cfg, nil
}

func normalize(cfg *Config) error {
	def := Default()

	if strings.TrimSpace(cfg.History.File) == "" {
		cfg.History.File = def.History.File
	}
	historyFile, err := expandPath(cfg.History.File)
	if err != nil {
		return err
	}
	cfg.History.File = historyFile

	if cfg.Notes.MaxNotes <= 0 {
		cfg.Notes.MaxNotes = def.Notes.MaxNotes
	}

	cfg.Clipboard.Mode = strings.ToLower(strings.TrimSpace(cfg.Clipboard.Mode))
	switch cfg.Clipboard.Mode {
	case "":
		cfg.Clipboard.Mode = def.Clipboard.Mode
	case "auto", "system", "osc52", "off":
	default:
		return fmt.Errorf("invalid clipboard mode: %q", cfg.Clipboard.Mode)
	}
	if cfg.Clipboard.TimeoutMS <= 0 {
		cfg.Clipboard.TimeoutMS = def.Clipboard.TimeoutMS
	}

	cfg.UI.Locale = strings.TrimSpace(cfg.UI.Locale)
	if cfg.UI.PreviewWidth < MinPreviewWidth {
		cfg.UI.PreviewWidth = def.UI.PreviewWidth
	}

	inputHistory, err := expandPath(cfg.Input.HistoryFile)
	if err != nil {
		return err
	}
	cfg.Input.HistoryFile = inputHistory
	if cfg.Input.HistoryLimit == 0 {
		cfg.Input.HistoryLimit = def.Input.HistoryLimit
	}

	logFile, err := expandPath(cfg.Log.File)
	if err != nil {
		return err
	}
	cfg.Log.File = logFile
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	switch cfg.Log.Level {
	case "":
		cfg.Log.Level = def.Log.Level
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", cfg.Log.Level)
	}
	return nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}
	return filepath.Abs(path)
}

func stripJSONComments(data []byte) []byte {
	const (
		stateNormal = iota
		stateString
		stateLineComment
		stateBlockComment
	)

	state := stateNormal
	escaped := false
	out := bytes.Buffer{}

	for i := 0; i < len(data); i++ {
		c := data[i]
		next := byte(0)
		if i+1 < len(data) {
			next = data[i+1]
		}

		switch state {
		case stateNormal:
			if c == '"' {
				state = stateString
				out.WriteByte(c)
				continue
			}
			if c == '/' && next == '/' {
				state = stateLineComment
				i++
				continue
			}
			if c == '/' && next == '*' {
				state = stateBlockComment
				i++
				continue
			}
			out.WriteByte(c)
		case stateString:
			out.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == '"' {
				state = stateNormal
			}
		case stateLineComment:
			if c == '\n' {
				state = stateNormal
				out.WriteByte(c)
			}
		case stateBlockComment:
			if c == '*' && next == '/' {
				state = stateNormal
				i++
			}
		}
	}

	return out.Bytes()
}
