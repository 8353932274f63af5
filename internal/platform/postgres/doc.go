// Package postgres implements the store interfaces on top of PostgreSQL,
// using database/sql with the pgx stdlib driver. Driver-level errors are
// mapped to the sentinel errors in internal/store.
package postgres
