package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimple(t *testing.T) {
	log := NewSimple("test")
	require.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.Info("hello")
		log.Debug("hello")
		log.Trace("hello")
	})
}

func TestNoOp(t *testing.T) {
	log := NoOp()
	require.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.Info("discarded")
	})
}

func TestNamed(t *testing.T) {
	log := NewSimple("parent")
	child := log.Named("child")
	require.NotNil(t, child)
}

func TestNew_WritesToStderrWithoutLogDir(t *testing.T) {
	log, err := New("test", "", false)
	require.NoError(t, err)
	require.NotNil(t, log)
}
