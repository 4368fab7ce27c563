package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/storage"
)

func ptr[T any](v T) *T {
	return &v
}

func TestTasksAreScopedToOwner(t *testing.T) {
	s := New()

	require.NoError(t, s.CreateTask(&models.Task{UserID: 1, Title: "Book venue"}))
	require.NoError(t, s.CreateTask(&models.Task{UserID: 1, Title: "Order flowers"}))
	require.NoError(t, s.CreateTask(&models.Task{UserID: 2, Title: "Someone else's task"}))

	tasks, err := s.GetTasks(1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Book venue", tasks[0].Title)
	assert.Equal(t, "Order flowers", tasks[1].Title)

	other, err := s.GetTasks(2)
	require.NoError(t, err)
	require.Len(t, other, 1)
}

func TestGetTasksEmptyForUnknownUser(t *testing.T) {
	s := New()

	tasks, err := s.GetTasks(42)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskIDsAreNeverReused(t *testing.T) {
	s := New()

	first := &models.Task{UserID: 1, Title: "first"}
	require.NoError(t, s.CreateTask(first))

	removed, err := s.DeleteTask(first.ID)
	require.NoError(t, err)
	require.True(t, removed)

	second := &models.Task{UserID: 1, Title: "second"}
	require.NoError(t, s.CreateTask(second))
	assert.Greater(t, second.ID, first.ID)
}

func TestUpdateTaskMergesOnlySuppliedFields(t *testing.T) {
	s := New()

	due := models.NewDate(2026, 10, 3)
	task := &models.Task{
		UserID:   1,
		Title:    "Send invitations",
		DueDate:  &due,
		Priority: models.TaskPriorityHigh,
	}
	require.NoError(t, s.CreateTask(task))

	updated, err := s.UpdateTask(task.ID, models.UpdateTaskRequest{Completed: ptr(true)})
	require.NoError(t, err)

	assert.True(t, updated.Completed)
	assert.Equal(t, "Send invitations", updated.Title)
	assert.Equal(t, models.TaskPriorityHigh, updated.Priority)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, due.Time, updated.DueDate.Time)
}

func TestUpdateMissingTaskReturnsNotFound(t *testing.T) {
	s := New()

	_, err := s.UpdateTask(99, models.UpdateTaskRequest{Title: ptr("nope")})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteTaskIsIdempotent(t *testing.T) {
	s := New()

	task := &models.Task{UserID: 1, Title: "doomed"}
	require.NoError(t, s.CreateTask(task))

	removed, err := s.DeleteTask(task.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteTask(task.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCreateTaskSetsCreatedAt(t *testing.T) {
	s := New()

	task := &models.Task{UserID: 1, Title: "timestamped"}
	require.NoError(t, s.CreateTask(task))
	assert.False(t, task.CreatedAt.IsZero())
}

func TestWeddingSettingsGetByUser(t *testing.T) {
	s := New()

	settings := &models.WeddingSettings{UserID: 7, Partner1Name: "Alex", Partner2Name: "Sam"}
	require.NoError(t, s.CreateWeddingSettings(settings))

	got, err := s.GetWeddingSettings(7)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, got.ID)
	assert.Equal(t, "Alex", got.Partner1Name)

	_, err = s.GetWeddingSettings(8)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateWeddingSettingsRewritesDocument(t *testing.T) {
	s := New()

	settings := &models.WeddingSettings{UserID: 7, Partner1Name: "Alex", VenueName: "Old Hall"}
	require.NoError(t, s.CreateWeddingSettings(settings))

	updated, err := s.UpdateWeddingSettings(settings.ID, models.WeddingSettingsRequest{
		Partner1Name: "Alex",
		Partner2Name: "Sam",
		VenueName:    "New Hall",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Hall", updated.VenueName)
	assert.Equal(t, "Sam", updated.Partner2Name)

	got, err := s.GetWeddingSettings(7)
	require.NoError(t, err)
	assert.Equal(t, "New Hall", got.VenueName)
}

func TestGetReturnsCopy(t *testing.T) {
	s := New()

	guest := &models.Guest{UserID: 1, Name: "Uncle Bob", RsvpStatus: models.RsvpPending}
	require.NoError(t, s.CreateGuest(guest))

	got, err := s.GetGuest(guest.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := s.GetGuest(guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Uncle Bob", again.Name)
}

func TestUserLookups(t *testing.T) {
	s := New()

	user := &models.User{Username: "alex", Email: "alex@example.com", Password: "hash"}
	require.NoError(t, s.CreateUser(user))
	require.NotZero(t, user.ID)

	byName, err := s.GetUserByUsername("alex")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := s.GetUserByEmail("alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = s.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
