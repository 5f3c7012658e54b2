package log

import (
	"encoding/json"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	redacted       = "***REDACTED***"
	maxLoggedBytes = 2000
)

// sensitiveKeys are matched case-insensitively at any depth of a message.
var sensitiveKeys = map[string]bool{
	"token":         true,
	"password":      true,
	"secret":        true,
	"apikey":        true,
	"accesstoken":   true,
	"access_token":  true,
	"private_token": true,
	"private-token": true,
	"authorization": true,
	"newtoken":      true,
}

// IOLogger wraps io.Reader/io.Writer to log JSON-RPC messages
type IOLogger struct {
	in     io.Reader
	out    io.Writer
	logger *log.Logger
}

// NewIOLogger creates a new IOLogger instance
func NewIOLogger(in io.Reader, out io.Writer, logger *log.Logger) *IOLogger {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &IOLogger{
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Read implements io.Reader, logging incoming messages
func (iol *IOLogger) Read(p []byte) (n int, err error) {
	n, err = iol.in.Read(p)
	if n > 0 && iol.logger.IsLevelEnabled(log.DebugLevel) {
		iol.logger.Debugf("IN: %s", redactSensitive(string(p[:n])))
	}
	return
}

// Write implements io.Writer, logging outgoing messages
func (iol *IOLogger) Write(p []byte) (n int, err error) {
	if iol.logger.IsLevelEnabled(log.DebugLevel) {
		iol.logger.Debugf("OUT: %s", redactSensitive(string(p)))
	}
	return iol.out.Write(p)
}

// redactSensitive masks credential fields of a JSON object message and caps
// its length. Anything that is not a JSON object is returned unchanged.
func redactSensitive(msg string) string {
	var raw map[string]any
	if err := json.Unmarshal([]byte(msg), &raw); err != nil {
		return msg
	}
	if !redactValue(raw) && len(msg) <= maxLoggedBytes {
		return msg
	}

	out, err := json.Marshal(raw)
	if err != nil {
		return msg
	}
	result := string(out)
	if len(result) > maxLoggedBytes {
		result = result[:maxLoggedBytes] + "... (truncated)"
	}
	return result
}

// redactValue reports whether anything was masked.
func redactValue(v any) bool {
	changed := false
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if sensitiveKeys[strings.ToLower(k)] {
				t[k] = redacted
				changed = true
				continue
			}
			if redactValue(child) {
				changed = true
			}
		}
	case []any:
		for _, child := range t {
			if redactValue(child) {
				changed = true
			}
		}
	}
	return changed
}
