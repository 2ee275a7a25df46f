// Package postgres provides PostgreSQL implementations of the store
// interfaces (users and tasks), the embedded goose migrations that create
// their schema, and the mapping from driver errors to store errors.
package postgres
