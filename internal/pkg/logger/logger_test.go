package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Production(t *testing.T) {
	l, err := New("production")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(0))
	assert.False(t, l.Core().Enabled(-1), "debug must be disabled in production")
}

func TestNew_Development(t *testing.T) {
	l, err := New("local")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
