// Package livenav exposes the live-navigation core over HTTP: route
// lifecycle commands, GNSS fix ingestion, the nav status query and a
// websocket push channel for reroute events.
package livenav
