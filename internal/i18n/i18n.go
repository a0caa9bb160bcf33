package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// I18n 用户可见文案目录
// I18n is the catalog of user-visible messages
type I18n struct {
	locale   string
	messages map[string]string
	mu       sync.RWMutex
}

var (
	global   *I18n
	globalMu sync.RWMutex
)

// Global returns the process-wide catalog, detecting the locale on first use.
func Global() *I18n {
	globalMu.RLock()
	g := global
	globalMu.RUnlock()
	if g != nil {
		return g
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = New("")
	}
	return global
}

// Init replaces the process-wide catalog.
func Init(locale string) *I18n {
	i := New(locale)
	globalMu.Lock()
	global = i
	globalMu.Unlock()
	return i
}

// T is a shortcut for Global().T.
func T(key string, args ...any) string {
	return Global().T(key, args...)
}

// New 创建目录；locale 为空时从环境变量检测
// New builds a catalog; an empty locale is detected from the environment
func New(locale string) *I18n {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DetectLocale()
	}
	locale = normalizeLocale(locale)

	i := &I18n{
		locale:   locale,
		messages: make(map[string]string, len(EnMessages)),
	}

	// 先加载英文作为 fallback / Load English as fallback first
	for k, v := range EnMessages {
		i.messages[k] = v
	}
	if locale == "zh-CN" {
		for k, v := range ZhCNMessages {
			i.messages[k] = v
		}
	}
	return i
}

// T formats the message for key; unknown keys are returned as-is.
func (i *I18n) T(key string, args ...any) string {
	i.mu.RLock()
	tmpl, ok := i.messages[key]
	i.mu.RUnlock()

	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

func (i *I18n) Locale() string {
	return i.locale
}

// DetectLocale 自动检测 locale
// DetectLocale reads the first non-empty locale variable
func DetectLocale() string {
	for _, env := range []string{"SCRATCHPAD_LANG", "LC_ALL", "LC_MESSAGES", "LANG"} {
		v := strings.TrimSpace(os.Getenv(env))
		if v == "" {
			continue
		}
		return normalizeLocale(v)
	}
	return "en"
}

func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "C" || s == "POSIX" {
		return "en"
	}
	// 去掉 .UTF-8 等后缀 / Remove .UTF-8 suffix
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.ReplaceAll(s, "_", "-")
	lower := strings.ToLower(s)

	if strings.HasPrefix(lower, "zh") {
		return "zh-CN"
	}
	if strings.HasPrefix(lower, "en") {
		return "en"
	}
	return s
}
