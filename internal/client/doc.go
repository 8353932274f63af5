// Package client implements the Go client for the task board API: typed
// HTTP calls, local session decoding, and an in-memory task cache kept in
// sync by the broadcast channel.
package client
