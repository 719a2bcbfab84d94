// Package nav implements the live-navigation state machine.
//
// This package handles:
// - Projecting each GNSS fix onto the active route geometry
// - Tracking along-route progress and perpendicular drift
// - Deciding when sustained drift warrants a routing engine call
// - Publishing the next-maneuver summary consumed by map clients
//
// The Tracker and Policy are driven per fix by the Navigator; NavStatus is
// recomputed on demand and carries no state of its own.
package nav
