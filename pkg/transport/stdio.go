package transport

import (
	"context"
	"errors"
	"io"
	stdlog "log"

	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	iolog "github.com/InkyQuill/gitlab-rest-mcp/pkg/log"
)

// StdioConfig configures the stdio transport.
type StdioConfig struct {
	// CommandLogging logs every JSON-RPC message at debug level, with
	// credentials redacted.
	CommandLogging bool
	Logger         *log.Logger
}

// RunStdio serves s on in/out until ctx is cancelled or in is closed.
// Cancellation is not an error.
func RunStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, cfg StdioConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	stdioServer := server.NewStdioServer(s)
	stdioServer.SetErrorLogger(stdlog.New(logger.Writer(), "[StdioServer] ", 0))

	if cfg.CommandLogging {
		logger.Warn("Command logging enabled - sensitive data will be redacted but not guaranteed")
		loggedIO := iolog.NewIOLogger(in, out, logger)
		in, out = loggedIO, loggedIO
	}

	logger.Info("Starting to listen on stdio...")
	err := stdioServer.Listen(ctx, in, out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		logger.Info("Stdio listener stopped")
		return nil
	}
	return err
}
