package transport

import (
	"bytes"
	"context"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pingRequest = `{"jsonrpc":"2.0","id":7,"method":"ping"}` + "\n"

func TestRunStdio(t *testing.T) {
	out := &bytes.Buffer{}
	err := RunStdio(context.Background(), whoamiServer(), strings.NewReader(pingRequest), out, StdioConfig{Logger: quietLogger()})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"id":7`)
}

func TestRunStdioCommandLogging(t *testing.T) {
	logger := log.New()
	logger.SetLevel(log.DebugLevel)
	logBuf := &bytes.Buffer{}
	logger.SetOutput(logBuf)

	out := &bytes.Buffer{}
	err := RunStdio(context.Background(), whoamiServer(), strings.NewReader(pingRequest), out, StdioConfig{
		CommandLogging: true,
		Logger:         logger,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `"id":7`)
	assert.Contains(t, logBuf.String(), "Command logging enabled")
	assert.Contains(t, logBuf.String(), "IN:")
	assert.Contains(t, logBuf.String(), "OUT:")
}

func TestRunStdioCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunStdio(ctx, whoamiServer(), strings.NewReader(""), &bytes.Buffer{}, StdioConfig{})
	assert.NoError(t, err)
}
