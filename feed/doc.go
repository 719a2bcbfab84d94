// Package feed is the position feed adapter.
//
// It normalizes raw GNSS samples into Fix values, validates their ranges,
// and keeps the latest fix plus a short time-bounded history. Two inbound
// transports are supported: plain JSON pushes and GTFS-Realtime
// VehiclePosition protobuf messages.
package feed
