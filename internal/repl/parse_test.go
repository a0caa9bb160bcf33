package repl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"", Command{Kind: KindNoop}},
		{"   \t ", Command{Kind: KindNoop}},
		{"add buy milk", Command{Kind: KindAdd, Arg: "buy milk"}},
		{"ADD  Keep  Inner   Spacing ", Command{Kind: KindAdd, Arg: "Keep  Inner   Spacing"}},
		{"add", Command{Kind: KindAdd}},
		{"add\tTabbed", Command{Kind: KindAdd, Arg: "Tabbed"}},
		{"copy 2", Command{Kind: KindCopy, Index: 2}},
		{"copy all", Command{Kind: KindCopyAll}},
		{"Copy ALL", Command{Kind: KindCopyAll}},
		{"delete 10", Command{Kind: KindDelete, Index: 10}},
		{"delete   all", Command{Kind: KindDeleteAll}},
		{"search Hello World", Command{Kind: KindSearch, Arg: "Hello World"}},
		{"search", Command{Kind: KindSearch}},
		{"help", Command{Kind: KindHelp}},
		{"?", Command{Kind: KindHelp}},
		{"EXIT", Command{Kind: KindExit}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_UsageErrors(t *testing.T) {
	tests := []struct {
		in    string
		usage string
	}{
		{"copy", "copy <number>"},
		{"copy two", "copy <number>"},
		{"copy -1", "copy <number>"},
		{"copy +1", "copy <number>"},
		{"copy 0", "copy <number>"},
		{"copy 1.5", "copy <number>"},
		{"copy 99999999999999999999999", "copy <number>"},
		{"delete", "delete <number>"},
		{"delete x", "delete <number>"},
		{"delete 1 2", "delete <number>"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := Parse(tc.in)
			require.ErrorIs(t, err, ErrUsage)
			var ue *UsageError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tc.usage, ue.Usage)
		})
	}
}

func TestParse_UnknownCommand(t *testing.T) {
	for _, in := range []string{"list", "addition", "exit now?", "quit"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrUnknownCommand, in)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "copy all", KindCopyAll.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}
