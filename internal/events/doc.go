// Package events defines the task mutation events carried on the
// broadcast channel and the publisher interface the task service emits
// them through.
package events
