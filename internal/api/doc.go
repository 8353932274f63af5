// Package api provides the HTTP handlers for the task board API.
package api
