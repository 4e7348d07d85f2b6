package logutil

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	l, err := New(false)
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zap.DebugLevel))
	require.True(t, l.Core().Enabled(zap.InfoLevel))

	l, err = New(true)
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zap.DebugLevel))
}

func TestNewWritesToStderr(t *testing.T) {
	stdoutR, stdoutW, err := os.Pipe()
	require.NoError(t, err)
	stderrR, stderrW, err := os.Pipe()
	require.NoError(t, err)
	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdoutW, stderrW
	defer func() { os.Stdout, os.Stderr = origOut, origErr }()

	l, err := New(false)
	require.NoError(t, err)
	l.Info("part 1", zap.Int("answer", 40))
	_ = l.Sync()
	require.NoError(t, stdoutW.Close())
	require.NoError(t, stderrW.Close())

	out, err := io.ReadAll(stdoutR)
	require.NoError(t, err)
	require.Empty(t, out)
	logged, err := io.ReadAll(stderrR)
	require.NoError(t, err)
	require.Contains(t, string(logged), "part 1")
}
