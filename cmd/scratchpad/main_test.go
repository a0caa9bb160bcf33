package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseColor(t *testing.T) {
	assert.True(t, useColor(true, true, "xterm-256color"))
	assert.False(t, useColor(false, true, "xterm-256color"))
	assert.False(t, useColor(true, false, "xterm-256color"))
	assert.False(t, useColor(true, true, "dumb"))
	assert.False(t, useColor(true, true, " DUMB "))
	assert.True(t, useColor(true, true, ""))
}
