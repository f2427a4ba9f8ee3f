package db

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell/internal/domain"
	"github.com/taskwell/taskwell/internal/models"
)

func TestAddTagCreatesWithDefaults(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "x"})

	tag, err := NewTagService(gdb).AddTag(owner.ID, task.ID, "Work")
	require.NoError(t, err)
	require.Equal(t, "Work", tag.Name)
	require.Equal(t, models.DefaultTagColor, tag.Color)
	require.Equal(t, models.DefaultTagIcon, tag.Icon)

	got, err := NewTaskService(gdb).Get(owner.ID, task.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
}

func TestAddTagIsCaseInsensitiveAndIdempotent(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "x"})

	svc := NewTagService(gdb)
	first, err := svc.AddTag(owner.ID, task.ID, "Work")
	require.NoError(t, err)
	second, err := svc.AddTag(owner.ID, task.ID, "work")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	got, err := NewTaskService(gdb).Get(owner.ID, task.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)

	tags, err := svc.List(owner.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
}

func TestRemoveTagIsIdempotent(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "x"})

	svc := NewTagService(gdb)
	tag, err := svc.AddTag(owner.ID, task.ID, "work")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveTag(owner.ID, task.ID, tag.ID))
	// Detaching again is a no-op, not an error.
	require.NoError(t, svc.RemoveTag(owner.ID, task.ID, tag.ID))

	got, err := NewTaskService(gdb).Get(owner.ID, task.ID)
	require.NoError(t, err)
	require.Empty(t, got.Tags)
}

func TestDeleteTagDetachesEverywhere(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	first := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "a", Tags: []string{"shared"}})
	second := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "b", Tags: []string{"shared"}})

	svc := NewTagService(gdb)
	tags, err := svc.List(owner.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	require.NoError(t, svc.Delete(owner.ID, tags[0].ID))

	for _, task := range []*models.Task{first, second} {
		got, err := NewTaskService(gdb).Get(owner.ID, task.ID)
		require.NoError(t, err)
		require.Empty(t, got.Tags)
	}
}

func TestTagNamesAreScopedPerOwner(t *testing.T) {
	gdb := testStore(t)
	alice := testUser(t, gdb, "alice")
	bob := testUser(t, gdb, "bob")
	aliceTask := mustCreateTask(t, gdb, alice, CreateTaskRequest{Title: "a"})
	bobTask := mustCreateTask(t, gdb, bob, CreateTaskRequest{Title: "b"})

	svc := NewTagService(gdb)
	aliceTag, err := svc.AddTag(alice.ID, aliceTask.ID, "work")
	require.NoError(t, err)
	bobTag, err := svc.AddTag(bob.ID, bobTask.ID, "work")
	require.NoError(t, err)
	require.NotEqual(t, aliceTag.ID, bobTag.ID)
}

func TestAddTagToForeignTask(t *testing.T) {
	gdb := testStore(t)
	alice := testUser(t, gdb, "alice")
	bob := testUser(t, gdb, "bob")
	task := mustCreateTask(t, gdb, alice, CreateTaskRequest{Title: "private"})

	_, err := NewTagService(gdb).AddTag(bob.ID, task.ID, "sneaky")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
