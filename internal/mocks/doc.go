// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations can be reused across packages. Each mock
// exposes function fields to override individual methods, plus default
// values (and for the stores, an in-memory map) used when no override is
// set.
package mocks
