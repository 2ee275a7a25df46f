//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/phrazzld/tasks-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, tx *sql.Tx, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(email, "secret123")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$notarealhashbutlongenough"
	user.Password = ""
	require.NoError(t, postgres.NewPostgresUserStore(tx, nil).Create(context.Background(), user))
	return user
}

func TestUserStoreIntegration(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		users := postgres.NewPostgresUserStore(tx, nil)
		email := "user-" + uuid.NewString() + "@example.com"

		created := createUser(t, tx, email)

		got, err := users.GetByEmail(ctx, "  "+email+"  ")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		dup := *created
		dup.ID = uuid.New()
		assert.ErrorIs(t, users.Create(ctx, &dup), store.ErrEmailExists)

		require.NoError(t, users.Delete(ctx, created.ID))
		_, err = users.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestTaskStoreIntegration(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		tasks := postgres.NewPostgresTaskStore(tx, nil)
		alice := createUser(t, tx, "alice-"+uuid.NewString()+"@example.com")
		bob := createUser(t, tx, "bob-"+uuid.NewString()+"@example.com")

		empty, err := tasks.ListByUser(ctx, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, empty)

		due := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
		desc := "details"
		task, err := domain.NewTask(alice.ID, "Buy milk", &desc, &due)
		require.NoError(t, err)
		require.NoError(t, tasks.Create(ctx, task))

		list, err := tasks.ListByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "details", *list[0].Description)
		assert.True(t, due.Equal(*list[0].DueDate))

		_, err = tasks.GetForUpdate(ctx, bob.ID, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		locked, err := tasks.GetForUpdate(ctx, alice.ID, task.ID)
		require.NoError(t, err)
		locked.Toggle()
		require.NoError(t, tasks.UpdateStatus(ctx, locked))

		list, err = tasks.ListByUser(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, list[0].Status)

		assert.ErrorIs(t, tasks.Delete(ctx, bob.ID, task.ID), store.ErrTaskNotFound)
		require.NoError(t, tasks.Delete(ctx, alice.ID, task.ID))
		assert.ErrorIs(t, tasks.Delete(ctx, alice.ID, task.ID), store.ErrTaskNotFound)
	})
}

// Concurrent toggles must commit, so this test works on the shared pool and
// removes its user (and, by cascade, the task) afterwards.
func TestTaskServiceConcurrentToggleIntegration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	users := postgres.NewPostgresUserStore(db, nil)
	user, err := domain.NewUser("toggle-"+uuid.NewString()+"@example.com", "secret123")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$notarealhashbutlongenough"
	user.Password = ""
	require.NoError(t, users.Create(ctx, user))
	t.Cleanup(func() { _ = users.Delete(context.Background(), user.ID) })

	svc, err := service.NewTaskService(postgres.NewPostgresTaskStore(db, nil), store.NewDBTransactor(db), nil)
	require.NoError(t, err)

	task, err := svc.Create(ctx, user.ID, service.CreateTaskParams{Title: "race"})
	require.NoError(t, err)

	const toggles = 10
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Toggle(ctx, user.ID, task.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.TaskStatusPending, list[0].Status, "row lock must serialize toggles")
}
