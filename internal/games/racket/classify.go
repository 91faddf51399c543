package racket

import "github.com/vovakirdan/racketball/internal/physics"

// Classification is the game meaning of a collision.
type Classification int

const (
	Ignored Classification = iota
	BallHitFloor
)

func (c Classification) String() string {
	switch c {
	case BallHitFloor:
		return "ball_hit_floor"
	default:
		return "ignored"
	}
}

// Classify reports BallHitFloor when the pair is exactly the ball and the
// floor, in either order.
func Classify(p physics.Pair) Classification {
	a, b := p.Tags()
	if (a == physics.TagBall && b == physics.TagFloor) || (a == physics.TagFloor && b == physics.TagBall) {
		return BallHitFloor
	}
	return Ignored
}

// ClassifyEvent classifies the first pair of an event only. Contacts that
// began in the same engine update after the first are not inspected.
func ClassifyEvent(ev physics.CollisionEvent) Classification {
	if len(ev.Pairs) == 0 {
		return Ignored
	}
	return Classify(ev.Pairs[0])
}
