package sensor

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// loopGap separates passes of a looping replay.
const loopGap = time.Second / 60

// ReplayFeed plays a trace into a sink, spacing samples by their recorded
// timestamps.
type ReplayFeed struct {
	Trace  Trace
	Loop   bool // Start over after the last point
	Logger *log.Logger
}

// Run replays until the trace ends (or forever with Loop) and returns nil.
// Cancelling ctx stops the replay early; that is not an error.
func (f *ReplayFeed) Run(ctx context.Context, sink Sink) error {
	logger := loggerOrDiscard(f.Logger)
	if len(f.Trace) == 0 {
		logger.Warn("empty gyro trace, nothing to replay")
		return nil
	}

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for pass := 1; ; pass++ {
		logger.Debug("replaying gyro trace", "points", len(f.Trace), "pass", pass)

		prev := f.Trace[0].TMs
		for _, p := range f.Trace {
			if wait := time.Duration(p.TMs-prev) * time.Millisecond; wait > 0 {
				timer.Reset(wait)
				select {
				case <-ctx.Done():
					return nil
				case <-timer.C:
				}
			} else if ctx.Err() != nil {
				return nil
			}
			if p.TMs > prev {
				prev = p.TMs
			}
			sink.Feed(p.Sample())
		}

		if !f.Loop {
			return nil
		}

		timer.Reset(loopGap)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}
