package scalefit

import (
	"errors"
	"math"

	"honnef.co/go/curve"

	"github.com/AI-DreDaline/AI-DreDaline-AI/costmodel"
	"github.com/AI-DreDaline/AI-DreDaline-AI/geom"
	"github.com/AI-DreDaline/AI-DreDaline-AI/placement"
	"github.com/AI-DreDaline/AI-DreDaline-AI/router"
	"github.com/AI-DreDaline/AI-DreDaline-AI/streetgraph"
)

// bootstrapScales is the fixed probe set tried, in order, when scale 1.0
// yields no route.
var bootstrapScales = [...]float64{0.5, 0.8, 1.5, 2.0, 2.5}

// Bracket clamps.
const (
	minRatio = 0.1
	maxRatio = 10.0
	minLo    = 0.05
	maxHi    = 6.0
	spread   = 2.5
)

// Fitter runs the binary-search length-fitting loop.
type Fitter struct {
	r *router.Router
}

// New builds a Fitter over the given router.
func New(r *router.Router) (*Fitter, error) {
	if r == nil {
		return nil, ErrNilRouter
	}

	return &Fitter{r: r}, nil
}

// PlaceAndFit places the normalized template into the graph's bounding box
// (CanvasBoxFrac, GlobalRotDeg) and runs Fit on the placed polyline. This is
// the usual entry point when the template still lives in its own coordinate
// space.
func (f *Fitter) PlaceAndFit(g *streetgraph.Graph, template geom.Polyline, start curve.Point, targetM float64, opt Options) (*FitResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := opt.validate(); err != nil {
		return nil, err
	}
	placed, err := placement.Place(template, g.Bounds(), opt.CanvasBoxFrac, opt.GlobalRotDeg)
	if err != nil {
		if errors.Is(err, placement.ErrEmptyTemplate) {
			return nil, ErrEmptyTemplate
		}

		return nil, err
	}

	return f.Fit(g, placed, start, targetM, opt)
}

// Fit searches for the uniform scale of base (already placed in graph
// coordinates) whose routed length lands within targetM·(1±TolRatio).
//
// Returns the best candidate seen, converged or not; ErrInfeasibleShape is
// the only hard failure (no bootstrap scale routed at all).
func (f *Fitter) Fit(g *streetgraph.Graph, base geom.Polyline, start curve.Point, targetM float64, opt Options) (*FitResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(base) < 2 {
		return nil, ErrEmptyTemplate
	}
	if targetM <= 0 {
		return nil, ErrBadTarget
	}
	if err := opt.validate(); err != nil {
		return nil, err
	}

	// 1) Bootstrap: scale 1.0, then the fixed probe set.
	bootScale := 1.0
	res, tuned, err := f.tryScale(g, base, bootScale, start, opt)
	if err != nil && !errors.Is(err, router.ErrNoRoute) {
		return nil, err
	}
	if res == nil {
		for _, s := range bootstrapScales {
			res, tuned, err = f.tryScale(g, base, s, start, opt)
			if err != nil && !errors.Is(err, router.ErrNoRoute) {
				return nil, err
			}
			if res != nil {
				bootScale = s

				break
			}
		}
		if res == nil {
			return nil, ErrInfeasibleShape
		}
	}

	// 2) Bracket around the ratio of target to achieved bootstrap length.
	lo, hi := bracket(targetM, res.Length)

	targetMin := targetM * (1 - opt.TolRatio)
	targetMax := targetM * (1 + opt.TolRatio)

	best := &FitResult{ScaleUsed: bootScale, Route: res, Template: tuned}

	// 3) Binary search; a failed trial is read as "scale too small".
	for i := 0; i < opt.Iters; i++ {
		mid := 0.5 * (lo + hi)
		res, tuned, err = f.tryScale(g, base, mid, start, opt)
		if err != nil {
			if errors.Is(err, router.ErrNoRoute) {
				lo = mid

				continue
			}

			return nil, err
		}

		if math.Abs(res.Length-targetM) < math.Abs(best.Route.Length-targetM) {
			best = &FitResult{ScaleUsed: mid, Route: res, Template: tuned}
		}

		if res.Length >= targetMin && res.Length <= targetMax {
			best = &FitResult{ScaleUsed: mid, Route: res, Template: tuned}

			break
		}

		if res.Length < targetMin {
			lo = mid
		} else {
			hi = mid
		}
	}

	return best, nil
}

// tryScale evaluates one trial scale: scale about the centroid, pull toward
// the start, rebuild the cost map from scratch, route.
func (f *Fitter) tryScale(g *streetgraph.Graph, base geom.Polyline, scale float64, start curve.Point, opt Options) (*router.Result, geom.Polyline, error) {
	tuned := placement.ScaleAbout(base, scale)
	tuned = placement.PullToward(tuned, start, opt.ProximityAlpha, opt.ProximityMaxShiftM)

	costs, err := costmodel.ShapeCosts(g, tuned, opt.ShapeBiasLambda)
	if err != nil {
		return nil, nil, err
	}

	res, err := f.r.Route(g, tuned, &start, costs.Weight(), opt.routerOptions())
	if err != nil {
		return nil, nil, err
	}

	return res, tuned, nil
}

// bracket derives the binary-search bounds from the target and the
// bootstrap's achieved length. The bracket is asymmetric and generous on
// purpose — snapping makes scale↔length non-monotonic near the edges.
func bracket(targetM, achievedM float64) (lo, hi float64) {
	ratio := targetM / math.Max(achievedM, 1e-6)
	ratio = math.Min(math.Max(ratio, minRatio), maxRatio)

	lo = math.Max(minLo, ratio/spread)
	hi = math.Min(maxHi, ratio*spread)

	return lo, hi
}
