package db

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell/internal/domain"
)

func TestCommentRoundTrip(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "x"})

	svc := NewCommentService(gdb)
	comment, err := svc.Add(owner.ID, task.ID, "remember the milk")
	require.NoError(t, err)
	require.Equal(t, owner.ID, comment.UserID)

	updated, err := svc.Update(owner.ID, comment.ID, "remember the oat milk")
	require.NoError(t, err)
	require.Equal(t, "remember the oat milk", updated.Content)

	require.NoError(t, svc.Delete(owner.ID, comment.ID))

	got, err := NewTaskService(gdb).Get(owner.ID, task.ID)
	require.NoError(t, err)
	require.Empty(t, got.Comments)
}

func TestCommentEmptyContent(t *testing.T) {
	gdb := testStore(t)
	owner := testUser(t, gdb, "alice")
	task := mustCreateTask(t, gdb, owner, CreateTaskRequest{Title: "x"})

	_, err := NewCommentService(gdb).Add(owner.ID, task.ID, "   ")
	var invalid *domain.ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestCommentOwnerScoping(t *testing.T) {
	gdb := testStore(t)
	alice := testUser(t, gdb, "alice")
	bob := testUser(t, gdb, "bob")
	task := mustCreateTask(t, gdb, alice, CreateTaskRequest{Title: "private"})

	svc := NewCommentService(gdb)
	comment, err := svc.Add(alice.ID, task.ID, "mine")
	require.NoError(t, err)

	var notFound *domain.NotFoundError
	_, err = svc.Update(bob.ID, comment.ID, "stolen")
	require.ErrorAs(t, err, &notFound)

	err = svc.Delete(bob.ID, comment.ID)
	require.ErrorAs(t, err, &notFound)
}
