// Package sensor feeds motion samples into a running game: recorded gyro
// traces replayed on their original timing, and live samples streamed from
// a phone over a WebSocket.
package sensor

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/racketball/internal/core"
)

// Sink receives samples. Implementations must be safe for concurrent use.
type Sink interface {
	Feed(s core.Sample)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(core.Sample)

// Feed calls f(s).
func (f SinkFunc) Feed(s core.Sample) {
	f(s)
}

func loggerOrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}
