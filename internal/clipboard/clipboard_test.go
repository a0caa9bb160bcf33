package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnavailable(t *testing.T) {
	var c Clipboard = Unavailable{}
	assert.False(t, c.Available())
	assert.ErrorIs(t, c.Copy(context.Background(), "x"), ErrUnavailable)
}

func TestOSC52_WritesSequence(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")
	var buf bytes.Buffer
	c := NewOSC52(&buf)
	require.True(t, c.Available())
	require.NoError(t, c.Copy(context.Background(), "hello"))

	encoded := base64.StdEncoding.EncodeToString([]byte("hello"))
	assert.Contains(t, buf.String(), "\x1b]52;c;"+encoded)
}

func TestOSC52_NilWriterUnavailable(t *testing.T) {
	c := NewOSC52(nil)
	assert.False(t, c.Available())
	assert.ErrorIs(t, c.Copy(context.Background(), "x"), ErrUnavailable)
}

// newTestSystem returns a System that reports a clipboard helper is present.
func newTestSystem(timeout time.Duration) *System {
	s := NewSystem(timeout)
	s.unsupported = func() bool { return false }
	return s
}

func TestSystem_WrapsWriteError(t *testing.T) {
	s := newTestSystem(time.Second)
	require.True(t, s.Available())
	s.write = func(string) error { return errors.New("xclip exploded") }
	err := s.Copy(context.Background(), "x")
	require.ErrorIs(t, err, ErrCopy)
	assert.Contains(t, err.Error(), "xclip exploded")
}

func TestSystem_Timeout(t *testing.T) {
	s := newTestSystem(20 * time.Millisecond)
	release := make(chan struct{})
	defer close(release)
	s.write = func(string) error {
		<-release
		return nil
	}
	err := s.Copy(context.Background(), "x")
	require.ErrorIs(t, err, ErrCopy)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSystem_CopiesText(t *testing.T) {
	s := newTestSystem(time.Second)
	var got string
	s.write = func(text string) error {
		got = text
		return nil
	}
	require.NoError(t, s.Copy(context.Background(), "1. a\n2. b"))
	assert.Equal(t, "1. a\n2. b", got)
}

func TestSystem_UnsupportedHost(t *testing.T) {
	s := NewSystem(time.Second)
	s.unsupported = func() bool { return true }
	called := false
	s.write = func(string) error {
		called = true
		return nil
	}
	assert.False(t, s.Available())
	assert.ErrorIs(t, s.Copy(context.Background(), "x"), ErrUnavailable)
	assert.False(t, called)
}

func TestSystem_TimeoutReturnsPromptly(t *testing.T) {
	s := newTestSystem(10 * time.Millisecond)
	block := make(chan struct{})
	defer close(block)
	s.write = func(string) error {
		<-block
		return nil
	}
	start := time.Now()
	err := s.Copy(context.Background(), "x")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSelect(t *testing.T) {
	var buf bytes.Buffer

	c, err := Select("off", 0, &buf, true)
	require.NoError(t, err)
	assert.Equal(t, ModeOff, c.Name())

	c, err = Select("OSC52", 0, &buf, false)
	require.NoError(t, err)
	assert.Equal(t, ModeOSC52, c.Name())

	c, err = Select("system", 0, &buf, false)
	require.NoError(t, err)
	assert.Equal(t, ModeSystem, c.Name())

	c, err = Select("auto", 0, &buf, false)
	require.NoError(t, err)
	assert.Contains(t, []string{ModeSystem, ModeOff}, c.Name())

	_, err = Select("carrier-pigeon", 0, &buf, false)
	assert.Error(t, err)
}
