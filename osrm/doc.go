// Package osrm is the client for the external routing engine.
//
// The engine is treated as an opaque request/response boundary: ordered
// lon,lat waypoints in, route geometry plus step maneuvers out. Calls are
// stateless and idempotent, so retrying after ErrUnavailable is always safe.
package osrm
