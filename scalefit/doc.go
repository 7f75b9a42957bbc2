// Package scalefit is the control loop of the engine: it binary-searches a
// uniform template scale so the routed path's length lands inside a
// tolerance band around the caller's target distance, while the shape bias
// keeps the route tracing the template.
//
// Algorithm (Fit):
//
//  1. Bootstrap — try scale 1.0; on failure, walk the fixed probe set
//     {0.5, 0.8, 1.5, 2.0, 2.5} until one scale routes. If none does, the
//     run fails with ErrInfeasibleShape — the only hard failure the engine
//     surfaces.
//  2. Bracket — from the bootstrap length L0, ratio = clamp(target/L0,
//     0.1, 10); lo = max(0.05, ratio/2.5), hi = min(6.0, ratio·2.5).
//     Deliberately generous: the scale↔length relation is not strictly
//     monotonic (snapping and connector hops introduce steps), so a tight
//     bracket would exclude workable scales.
//  3. Binary search — up to Iters midpoint evaluations. A trial that fails
//     to route raises lo (failure is read as "scale too small"; this is a
//     heuristic inherited from the search's design, not a guarantee — large
//     scales that exit the network's coverage also fail). A successful
//     trial updates the best-seen candidate by absolute length error, and
//     a length inside target·(1±TolRatio) is accepted immediately.
//  4. Every trial reruns scaling, pull-toward-start placement, and the full
//     cost-map computation from scratch; nothing carries over between trial
//     scales.
//
// Fit returns the best candidate seen even when the loop exhausts Iters
// without entering the band: best-effort, not guaranteed-tolerance, and not
// guaranteed globally optimal when convergence happens late. Callers can
// compare FitResult route length against their target.
//
// The whole loop is synchronous and deterministic — iteration k+1's bracket
// depends on iteration k's measured length.
package scalefit
