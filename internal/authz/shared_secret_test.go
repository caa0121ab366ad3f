package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedSecretGate(t *testing.T) {
	gate := NewSharedSecretGate("hunter2")

	assert.True(t, gate.Authorize("hunter2"))
	assert.False(t, gate.Authorize("hunter3"))
	assert.False(t, gate.Authorize(""))
}

func TestSharedSecretGate_EmptySecretFailsClosed(t *testing.T) {
	gate := NewSharedSecretGate("")

	assert.False(t, gate.Authorize(""))
	assert.False(t, gate.Authorize("anything"))
}
