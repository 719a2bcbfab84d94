// Package route defines the navigation route model and its single-owner
// store.
//
// A Route bundles densified geometry, a precomputed cumulative distance
// table and the ordered turn maneuvers derived from a routing engine
// response. Routes are immutable; rerouting builds a new Route and swaps it
// into the Store atomically.
package route
