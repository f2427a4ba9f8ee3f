package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell/internal/domain"
	"github.com/taskwell/taskwell/internal/models"
)

func TestCreateTaskDefaults(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")

	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "  buy milk  "})
	require.Equal(t, "buy milk", task.Title)
	require.Equal(t, models.PriorityMedium, task.Priority)
	require.False(t, task.Completed)
	require.False(t, task.Important)
	require.Nil(t, task.DueDate)
	require.Nil(t, task.ProjectID)
	require.False(t, task.CreatedAt.IsZero())
}

func TestCreateTaskRejectsEmptyTitle(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")

	_, err := NewTaskService(gdb).Create(owner.ID, CreateTaskRequest{Title: "   "})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "title", validation.Field)
}

func TestCreateTaskRejectsUnknownPriority(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")

	_, err := NewTaskService(gdb).Create(owner.ID, CreateTaskRequest{Title: "x", Priority: "urgent"})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateTaskRejectsForeignProject(t *testing.T) {
	gdb := testStore(t)
	alice := testUser(t, gdb, "alice")
	bob := testUser(t, gdb, "bob")

	project, err := NewProjectService(gdb).Create(bob.ID, "bob's", "", "")
	require.NoError(t, err)

	_, err = NewTaskService(gdb).Create(alice.ID, CreateTaskRequest{Title: "x", ProjectID: &project.ID})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCreateTaskLogsActivity(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "buy milk"})

	entries, err := NewActivityService(gdb).List(owner.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, models.ActionCreated, entries[0].Action)
	require.Equal(t, models.TargetTask, entries[0].TargetType)
	require.Equal(t, task.ID, entries[0].TargetID)
}

func TestUpdateCompletionSetsTimestampAndLogsCompleted(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "buy milk"})

	svc := NewTaskService(gdb)
	// Pinned after the CREATED entry so it sorts newest in the log.
	at := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	svc.now = fixedClock(at)

	done := true
	got, err := svc.Update(owner.ID, task.ID, UpdateTaskRequest{Completed: &done})
	require.NoError(t, err)
	require.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	require.Equal(t, at.Unix(), got.CompletedAt.Unix())

	entries, err := NewActivityService(gdb).List(owner.ID)
	require.NoError(t, err)
	require.Equal(t, models.ActionCompleted, entries[0].Action)

	// Flipping back clears the timestamp and logs a plain update.
	undone := false
	got, err = svc.Update(owner.ID, task.ID, UpdateTaskRequest{Completed: &undone})
	require.NoError(t, err)
	require.False(t, got.Completed)
	require.Nil(t, got.CompletedAt)
}

func TestUpdatePartialPatch(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	due := time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC)
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "draft", DueDate: &due})

	svc := NewTaskService(gdb)
	newTitle := "final draft"
	prio := models.PriorityHigh
	got, err := svc.Update(owner.ID, task.ID, UpdateTaskRequest{Title: &newTitle, Priority: &prio})
	require.NoError(t, err)
	require.Equal(t, "final draft", got.Title)
	require.Equal(t, models.PriorityHigh, got.Priority)
	require.NotNil(t, got.DueDate) // untouched

	got, err = svc.Update(owner.ID, task.ID, UpdateTaskRequest{ClearDue: true})
	require.NoError(t, err)
	require.Nil(t, got.DueDate)
}

func TestUpdateRejectsEmptyTitle(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "draft"})

	empty := " "
	_, err := NewTaskService(gdb).Update(owner.ID, task.ID, UpdateTaskRequest{Title: &empty})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)

	// Nothing changed on the task.
	got, err := NewTaskService(gdb).Get(owner.ID, task.ID)
	require.NoError(t, err)
	require.Equal(t, "draft", got.Title)
}

func TestGetIsOwnerScoped(t *testing.T) {
	gdb := testStore(t)
	alice := testUser(t, gdb, "alice")
	bob := testUser(t, gdb, "bob")
	task := mustCreateTask(t, gdb, alice, CreateTaskRequest{Title: "private"})

	_, err := NewTaskService(gdb).Get(bob.ID, task.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
