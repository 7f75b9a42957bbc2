// Package guidance types: the event sum, instance records, options and
// sentinel errors.
package guidance

import (
	"errors"
	"fmt"
)

// Sentinel errors for guidance extraction.
var (
	// ErrBadOptions indicates an out-of-range option value; the wrapped
	// message names the field.
	ErrBadOptions = errors.New("guidance: invalid options")
)

// Kind discriminates the event variants.
type Kind uint8

const (
	KindTurn Kind = iota
	KindStraight
	KindCheckpoint
	KindProgress
	KindArrive
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindTurn:
		return "turn"
	case KindStraight:
		return "straight"
	case KindCheckpoint:
		return "checkpoint"
	case KindProgress:
		return "progress"
	case KindArrive:
		return "arrive"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// TurnClass is the magnitude band of a turn's bearing change.
type TurnClass uint8

const (
	TurnSlight TurnClass = iota // [min_turn, 45°)
	TurnNormal                  // [45°, 120°)
	TurnSharp                   // [120°, 160°)
	TurnUTurn                   // [160°, 180°]
)

// String returns the lower-case class name.
func (c TurnClass) String() string {
	switch c {
	case TurnSlight:
		return "slight"
	case TurnNormal:
		return "normal"
	case TurnSharp:
		return "sharp"
	case TurnUTurn:
		return "u_turn"
	default:
		return fmt.Sprintf("class(%d)", c)
	}
}

// Direction is the side of a turn.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}

	return "right"
}

// Event is one abstract navigation event anchored to a route vertex.
// Kind selects which of the kind-specific fields are meaningful; the
// unexported constructors below are the only producers, so a Checkpoint
// always carries its km mark and a Turn always carries class and direction.
type Event struct {
	Kind              Kind
	Vertex            int // index into the route polyline
	DistanceFromStart float64
	DistanceToNext    float64 // filled after the final sort

	// Turn only.
	Direction Direction
	Class     TurnClass
	DeltaDeg  float64 // signed bearing change, (-180°, 180°]

	// Checkpoint only.
	KmMark int

	// Progress only.
	Percent int
}

func turnEvent(vertex int, dist, delta float64, class TurnClass) Event {
	dir := DirRight
	if delta < 0 {
		dir = DirLeft
	}

	return Event{
		Kind: KindTurn, Vertex: vertex, DistanceFromStart: dist,
		Direction: dir, Class: class, DeltaDeg: delta,
	}
}

func straightEvent(vertex int, dist float64) Event {
	return Event{Kind: KindStraight, Vertex: vertex, DistanceFromStart: dist}
}

func checkpointEvent(vertex int, dist float64, km int) Event {
	return Event{Kind: KindCheckpoint, Vertex: vertex, DistanceFromStart: dist, KmMark: km}
}

func progressEvent(vertex int, dist float64, pct int) Event {
	return Event{Kind: KindProgress, Vertex: vertex, DistanceFromStart: dist, Percent: pct}
}

func arriveEvent(vertex int, dist float64) Event {
	return Event{Kind: KindArrive, Vertex: vertex, DistanceFromStart: dist}
}

// Instance is one concrete deliverable instruction: an event expanded to a
// trigger radius and a stable instruction identifier, positioned in
// geographic coordinates.
type Instance struct {
	Sequence          int     // 1-based, final ordering
	Kind              Kind    //
	Lat               float64 //
	Lng               float64 //
	Direction         string  // "left"/"right" for turns, "" otherwise
	AngleDeg          float64 // signed bearing change for turns, 0 otherwise
	DistanceFromStart float64 // meters along the route
	DistanceToNext    float64 // meters to the next event, 0 for the last
	TriggerDistance   float64 // meters before the point at which to announce
	GuidanceID        string  // stable instruction identifier
}

// Script is the full guidance output for one route.
type Script struct {
	Instances     []Instance
	TotalPoints   int
	TotalDistance float64 // meters
}

// Options tunes the extraction state machine.
type Options struct {
	MinTurnDeg        float64 // bearing change below this is not a turn, >0
	StraightIntervalM float64 // straight event spacing, >0
	TriggerDistanceM  float64 // confirm-instruction trigger radius, ≥0
}

// DefaultOptions returns the tuning that ships with the engine.
func DefaultOptions() Options {
	return Options{
		MinTurnDeg:        20,
		StraightIntervalM: 100,
		TriggerDistanceM:  15,
	}
}

// validate checks every range constraint; the returned error wraps
// ErrBadOptions with the offending field.
func (o Options) validate() error {
	switch {
	case o.MinTurnDeg <= 0:
		return fmt.Errorf("%w: MinTurnDeg must be positive", ErrBadOptions)
	case o.StraightIntervalM <= 0:
		return fmt.Errorf("%w: StraightIntervalM must be positive", ErrBadOptions)
	case o.TriggerDistanceM < 0:
		return fmt.Errorf("%w: TriggerDistanceM must be non-negative", ErrBadOptions)
	}

	return nil
}
