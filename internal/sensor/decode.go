package sensor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/racketball/internal/core"
)

// ErrMalformedSample is returned for frames that do not describe a sample.
var ErrMalformedSample = errors.New("sensor: malformed sample")

// wireSample is the JSON frame a phone sends. Kind selects which fields apply.
type wireSample struct {
	Kind string `json:"kind"`

	// gyro
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Z         float64  `json:"z"`
	Timestamp int64    `json:"timestamp"`

	// touch
	Type      string  `json:"type"`
	DeltaX    float64 `json:"deltaX"`
	LocationX float64 `json:"locationX"`
	LocationY float64 `json:"locationY"`
}

// DecodeSample parses one JSON frame:
//
//	{"kind":"gyro","x":0.1,"y":-0.3,"z":0,"timestamp":1700000000000}
//	{"kind":"touch","type":"move","deltaX":-4}
//	{"kind":"touch","type":"tap","locationX":120,"locationY":300}
func DecodeSample(data []byte) (core.Sample, error) {
	var w wireSample
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSample, err)
	}

	switch w.Kind {
	case "gyro":
		if w.X == nil || w.Y == nil {
			return nil, fmt.Errorf("%w: gyro sample needs x and y", ErrMalformedSample)
		}
		return core.GyroSample{X: *w.X, Y: *w.Y, Z: w.Z, TimestampMs: w.Timestamp}, nil

	case "touch":
		var tt core.TouchType
		switch w.Type {
		case core.TouchMove.String():
			tt = core.TouchMove
		case core.TouchTap.String():
			tt = core.TouchTap
		default:
			return nil, fmt.Errorf("%w: unknown touch type %q", ErrMalformedSample, w.Type)
		}
		return core.TouchEvent{Type: tt, DeltaX: w.DeltaX, LocationX: w.LocationX, LocationY: w.LocationY}, nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformedSample, w.Kind)
	}
}
