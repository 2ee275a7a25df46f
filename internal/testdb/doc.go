//go:build integration

// Package testdb provides utilities for database integration tests.
//
// Each test runs in its own transaction that is rolled back when the test
// completes, so tests can run in parallel against a shared database without
// cleanup.
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDBWithT(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			userStore := postgres.NewPostgresUserStore(tx, nil)
//			// ...
//		})
//	}
//
// Tests are skipped when no database URL is set, except in CI where they fail.
package testdb
