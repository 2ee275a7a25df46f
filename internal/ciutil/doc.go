// Package ciutil detects CI environments and resolves the environment
// variables the integration tests read, so that database-backed tests skip
// locally without a database but fail loudly in CI.
package ciutil
