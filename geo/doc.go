// Package geo provides the geodesy primitives used by route construction and
// progress tracking: haversine distances, segment projection, cumulative
// distance tables, polyline densification and encoded-polyline decoding.
//
// Points are lon,lat in degrees (GeoJSON axis order). Distances are meters.
package geo
