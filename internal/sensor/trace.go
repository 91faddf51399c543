package sensor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/racketball/internal/core"
)

// TracePoint is one recorded gyro reading.
type TracePoint struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Z   float64 `yaml:"z"`
	TMs int64   `yaml:"t_ms"` // Milliseconds since recording start
}

// Sample converts the point to a gyro sample.
func (p TracePoint) Sample() core.GyroSample {
	return core.GyroSample{X: p.X, Y: p.Y, Z: p.Z, TimestampMs: p.TMs}
}

// Trace is a recorded sequence of gyro readings.
type Trace []TracePoint

// ParseTrace decodes a YAML list of trace points.
func ParseTrace(data []byte) (Trace, error) {
	var tr Trace
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	return tr, nil
}

// LoadTrace reads a trace file.
func LoadTrace(path string) (Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace %s: %w", path, err)
	}
	tr, err := ParseTrace(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tr, nil
}
