// Package domain defines the core business entities of the task tracker
// (users and their tasks) together with their validation rules and errors.
// It has no knowledge of HTTP or persistence.
package domain
