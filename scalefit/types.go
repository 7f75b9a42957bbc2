// Package scalefit defines the fitting options bundle, FitResult, and
// sentinel errors.
package scalefit

import (
	"errors"
	"fmt"

	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
	"github.com/AI-DreDaline/AI-DreDaline-AI/router"
)

// Sentinel errors for scale fitting.
var (
	// ErrNilGraph indicates a nil street graph.
	ErrNilGraph = errors.New("scalefit: graph is nil")

	// ErrNilRouter indicates the fitter was built without a router.
	ErrNilRouter = errors.New("scalefit: router is nil")

	// ErrEmptyTemplate indicates a template with fewer than two vertices.
	ErrEmptyTemplate = errors.New("scalefit: template needs at least two vertices")

	// ErrBadTarget indicates a non-positive target length.
	ErrBadTarget = errors.New("scalefit: target length must be positive")

	// ErrBadOptions indicates an out-of-range option value; the wrapped
	// message names the field.
	ErrBadOptions = errors.New("scalefit: invalid options")

	// ErrInfeasibleShape indicates no bootstrap scale produced any route:
	// the template cannot be fitted onto this network at all.
	ErrInfeasibleShape = errors.New("scalefit: no feasible route at any bootstrap scale")
)

// Options is the full configuration bundle of one fitting run.
type Options struct {
	// Placement
	CanvasBoxFrac float64 // template box as a fraction of the graph box, (0,1]
	GlobalRotDeg  float64 // rotation applied at placement time

	// Routing
	SampleStepM   float64 // dense strategy waypoint spacing, >0
	MinWpGapM     float64 // dense strategy minimum waypoint gap, ≥0
	ReturnToStart bool    // close the route back at the start node

	// Fitting
	TolRatio float64 // accepted relative length error, (0,1)
	Iters    int     // binary-search iteration budget, >0

	// Shape preservation
	ShapeBiasLambda float64 // λ of the cost model, ≥0
	AnchorCount     int     // anchor divisions, ≥2
	UseAnchors      bool    // anchor strategy as primary

	// Start proximity
	ConnectFromStart   bool    // prepend the capped start connector
	MaxConnectorM      float64 // connector cap, ≥0
	ProximityAlpha     float64 // pull fraction toward the start, [0,1]
	ProximityMaxShiftM float64 // pull displacement cap, ≥0
}

// DefaultOptions returns the tuning that ships with the engine.
func DefaultOptions() Options {
	return Options{
		CanvasBoxFrac:      0.75,
		GlobalRotDeg:       0,
		SampleStepM:        60,
		MinWpGapM:          12,
		ReturnToStart:      true,
		TolRatio:           0.08,
		Iters:              16,
		ShapeBiasLambda:    0.045,
		AnchorCount:        10,
		UseAnchors:         true,
		ConnectFromStart:   true,
		MaxConnectorM:      450,
		ProximityAlpha:     0.75,
		ProximityMaxShiftM: 2000,
	}
}

// validate checks every range constraint; the returned error wraps
// ErrBadOptions with the offending field.
func (o Options) validate() error {
	switch {
	case o.CanvasBoxFrac <= 0 || o.CanvasBoxFrac > 1:
		return badOption("CanvasBoxFrac must be in (0,1]")
	case o.SampleStepM <= 0:
		return badOption("SampleStepM must be positive")
	case o.MinWpGapM < 0:
		return badOption("MinWpGapM must be non-negative")
	case o.TolRatio <= 0 || o.TolRatio >= 1:
		return badOption("TolRatio must be in (0,1)")
	case o.Iters <= 0:
		return badOption("Iters must be positive")
	case o.ShapeBiasLambda < 0:
		return badOption("ShapeBiasLambda must be non-negative")
	case o.AnchorCount < 2:
		return badOption("AnchorCount must be at least 2")
	case o.MaxConnectorM < 0:
		return badOption("MaxConnectorM must be non-negative")
	case o.ProximityAlpha < 0 || o.ProximityAlpha > 1:
		return badOption("ProximityAlpha must be in [0,1]")
	case o.ProximityMaxShiftM < 0:
		return badOption("ProximityMaxShiftM must be non-negative")
	}

	return nil
}

func badOption(msg string) error {
	return fmt.Errorf("%w: %s", ErrBadOptions, msg)
}

// routerOptions projects the bundle onto the router's option set.
func (o Options) routerOptions() router.Options {
	return router.Options{
		UseAnchors:       o.UseAnchors,
		AnchorCount:      o.AnchorCount,
		ConnectFromStart: o.ConnectFromStart,
		MaxConnectorM:    o.MaxConnectorM,
		ReturnToStart:    o.ReturnToStart,
		SampleStepM:      o.SampleStepM,
		MinGapM:          o.MinWpGapM,
	}
}

// FitResult is the outcome of one fitting run: the scale that won, the
// winning route, and the template as it stood for that trial (scaled and
// pulled toward the start — exactly the polyline the costs were built from).
type FitResult struct {
	ScaleUsed float64
	Route     *router.Result
	Template  geom.Polyline
}
