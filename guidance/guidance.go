package guidance

import (
	"fmt"
	"math"
	"sort"

	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
)

// Turn magnitude band boundaries, degrees. The lower bound of the slight
// band is Options.MinTurnDeg.
const (
	normalBandDeg = 45
	sharpBandDeg  = 120
	uTurnBandDeg  = 160
)

// warnTriggerM is the radius of the "upcoming" warning instance emitted
// ahead of normal, sharp and u-turn maneuvers.
const warnTriggerM = 50

// progressMarks are the route fractions that emit Progress events.
var progressMarks = [...]int{30, 50, 80}

// nearArrivalFrac suppresses a Progress mark whose snapped vertex already
// sits at ≥99% of the route, so it cannot shadow the Arrive instruction.
const nearArrivalFrac = 0.99

// Extract runs the event-construction state machine over a routed polyline
// (planar meters) and returns the ordered instruction script. Positions are
// emitted in geographic coordinates through proj.
//
// A line with fewer than two vertices yields an empty script, not an error.
func Extract(line geom.Polyline, proj geom.Projection, opt Options) (*Script, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	n := len(line)
	if n < 2 {
		return &Script{Instances: []Instance{}}, nil
	}

	cum := line.Cumulative()
	total := cum[n-1]

	bearings := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		bearings[i] = geom.Bearing(line[i], line[i+1])
	}

	events := scanTurns(cum, bearings, opt)
	events = append(events, checkpoints(cum, total)...)
	events = append(events, progress(cum, total)...)
	events = append(events, arriveEvent(n-1, total))

	// Merge: ascending by distance, then fill the gap to the next event.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].DistanceFromStart < events[j].DistanceFromStart
	})
	for i := range events {
		if i+1 < len(events) {
			events[i].DistanceToNext = events[i+1].DistanceFromStart - events[i].DistanceFromStart
		}
	}

	instances := expand(events, line, proj, opt)

	return &Script{
		Instances:     instances,
		TotalPoints:   len(instances),
		TotalDistance: total,
	}, nil
}

// scanTurns walks the interior vertices tracking the bearing of the last
// emitted event. A delta at or above MinTurnDeg emits a Turn and resets the
// reference bearing; below it, distance accumulates until a Straight is due.
func scanTurns(cum, bearings []float64, opt Options) []Event {
	var events []Event
	prev := bearings[0]
	lastDist := 0.0

	for i := 1; i < len(bearings); i++ {
		delta := geom.NormalizeAngle(bearings[i] - prev)
		here := cum[i]

		if math.Abs(delta) >= opt.MinTurnDeg {
			events = append(events, turnEvent(i, here, delta, classify(math.Abs(delta))))
			prev = bearings[i]
			lastDist = here

			continue
		}
		if here-lastDist >= opt.StraightIntervalM {
			events = append(events, straightEvent(i, here))
			prev = bearings[i]
			lastDist = here
		}
	}

	return events
}

// classify maps an absolute bearing change (already ≥ MinTurnDeg) to its
// magnitude band.
func classify(absDelta float64) TurnClass {
	switch {
	case absDelta >= uTurnBandDeg:
		return TurnUTurn
	case absDelta >= sharpBandDeg:
		return TurnSharp
	case absDelta >= normalBandDeg:
		return TurnNormal
	default:
		return TurnSlight
	}
}

// checkpoints emits one event per completed kilometer, each snapped to the
// first vertex at or past its km boundary.
func checkpoints(cum []float64, total float64) []Event {
	var events []Event
	for km := 1; float64(km)*1000 <= total; km++ {
		boundary := float64(km) * 1000
		idx := sort.SearchFloat64s(cum, boundary)
		events = append(events, checkpointEvent(idx, cum[idx], km))
	}

	return events
}

// progress emits the 30/50/80% marks, skipping any whose snapped vertex
// already sits within the arrival window.
func progress(cum []float64, total float64) []Event {
	var events []Event
	for _, pct := range progressMarks {
		boundary := total * float64(pct) / 100
		idx := sort.SearchFloat64s(cum, boundary)
		if cum[idx] >= nearArrivalFrac*total {
			continue
		}
		events = append(events, progressEvent(idx, cum[idx], pct))
	}

	return events
}

// expand turns the sorted event list into concrete instances: turns fan out
// into a warning and/or a confirm instruction by magnitude class, everything
// else maps one-to-one. Sequence numbers follow expansion order, which
// preserves the distance sort.
func expand(events []Event, line geom.Polyline, proj geom.Projection, opt Options) []Instance {
	instances := make([]Instance, 0, len(events))

	emit := func(ev Event, trigger float64, id string) {
		lat, lng := proj.ToGeographic(line[ev.Vertex])
		inst := Instance{
			Sequence:          len(instances) + 1,
			Kind:              ev.Kind,
			Lat:               lat,
			Lng:               lng,
			DistanceFromStart: ev.DistanceFromStart,
			DistanceToNext:    ev.DistanceToNext,
			TriggerDistance:   trigger,
			GuidanceID:        id,
		}
		if ev.Kind == KindTurn {
			inst.Direction = ev.Direction.String()
			inst.AngleDeg = ev.DeltaDeg
		}
		instances = append(instances, inst)
	}

	for _, ev := range events {
		switch ev.Kind {
		case KindTurn:
			side := "LEFT"
			if ev.Direction == DirRight {
				side = "RIGHT"
			}
			switch ev.Class {
			case TurnSlight:
				emit(ev, opt.TriggerDistanceM, "TURN_"+side)
			case TurnNormal:
				emit(ev, warnTriggerM, "TURN_"+side+"_AHEAD")
				emit(ev, opt.TriggerDistanceM, "TURN_"+side)
			case TurnSharp:
				emit(ev, warnTriggerM, "TURN_"+side+"_AHEAD")
				emit(ev, opt.TriggerDistanceM, "SHARP_"+side)
			case TurnUTurn:
				emit(ev, warnTriggerM, "U_TURN")
				emit(ev, opt.TriggerDistanceM, "U_TURN")
			}
		case KindStraight:
			emit(ev, opt.TriggerDistanceM, "GO_STRAIGHT")
		case KindCheckpoint:
			emit(ev, opt.TriggerDistanceM, fmt.Sprintf("CHECKPOINT_%dKM", ev.KmMark))
		case KindProgress:
			emit(ev, opt.TriggerDistanceM, fmt.Sprintf("PROGRESS_%d", ev.Percent))
		case KindArrive:
			emit(ev, opt.TriggerDistanceM, "ARRIVE")
		}
	}

	return instances
}
