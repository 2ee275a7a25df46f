// Package mocks provides shared test doubles for the store, auth and service
// interfaces.
//
// Function-field fakes (MockUserStore, MockTaskStore, MockJWTService,
// MockPasswordHasher, MockTransactor) behave as small in-memory
// implementations when no functions are set, which is enough to drive the
// whole HTTP stack without a database. TestifyMockTaskStore is a testify/mock
// type for tests that assert on calls.
//
// Setting a function field overrides one method:
//
//	userStore := mocks.NewMockUserStore()
//	userStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
//		return nil, store.ErrUserNotFound
//	}
package mocks
