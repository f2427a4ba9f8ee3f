package db

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell/internal/domain"
)

func TestActiveTasksExcludesTrashed(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")

	keep := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "keep", Tags: []string{"work"}})
	gone := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "gone"})
	trashTask(t, gdb, owner, gone, nil)

	tasks, err := NewQueryService(gdb).ActiveTasks(owner.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, keep.ID, tasks[0].ID)
	require.Len(t, tasks[0].Tags, 1)
}

func TestResolveTaskIDByPrefix(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "x"})

	svc := NewQueryService(gdb)

	id, err := svc.ResolveTaskID(owner.ID, task.ID.String(), false)
	require.NoError(t, err)
	require.Equal(t, task.ID, id)

	id, err = svc.ResolveTaskID(owner.ID, task.ID.String()[:8], false)
	require.NoError(t, err)
	require.Equal(t, task.ID, id)
}

func TestResolveTaskIDShortPrefix(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")

	_, err := NewQueryService(gdb).ResolveTaskID(owner.ID, "ab", false)
	var invalid *domain.ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestResolveTaskIDTrashedNeedsUnscoped(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "x"})
	trashTask(t, gdb, owner, task, nil)

	svc := NewQueryService(gdb)

	_, err := svc.ResolveTaskID(owner.ID, task.ID.String()[:8], false)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)

	id, err := svc.ResolveTaskID(owner.ID, task.ID.String()[:8], true)
	require.NoError(t, err)
	require.Equal(t, task.ID, id)
}
