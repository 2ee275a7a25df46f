// Package service contains the application use cases: registering and
// authenticating users, and managing a user's tasks.
//
// Services depend only on domain types and the store interfaces. Writes run
// through a store.Transactor so that a multi-step operation (such as
// read-lock-flip-write for a task toggle) commits or rolls back as a unit.
package service
