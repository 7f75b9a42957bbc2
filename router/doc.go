// Package router turns a placed template into one stitched path over the
// street network, using the shortest-path oracle for every hop.
//
// Two strategies, primary/fallback:
//
//   - Anchor routing (primary). The template is sampled at n+1 equally
//     spaced arc-length fractions (anchor i at i/n). Each anchor snaps to
//     its nearest node; consecutive duplicate snaps collapse. When a start
//     point is given and ConnectFromStart is set, the start node is
//     prepended with a single connector hop to the nearest anchor — but only
//     if that anchor lies within MaxConnectorM, otherwise the shape is left
//     unconnected rather than deformed by a long detour. ReturnToStart
//     appends a closing hop back to the start node. Consecutive snap pairs
//     are stitched with the caller's shape-biased weight.
//
//   - Dense routing (fallback). The template is densified at SampleStepM
//     spacing, thinned below MinGapM, optionally bracketed by the start
//     point at both ends, snapped, and stitched by raw physical length.
//     This recovers a route when anchor stitching finds nothing at all; it
//     preserves length feedback for the scale fitter, not shape fidelity.
//
// Failure semantics: a hop with no path is skipped silently — the stitched
// route simply omits it and comes back shorter than expected, which the
// scale fitter's length measurement absorbs. Only a route with zero nodes
// overall is reported as ErrNoRoute.
package router
