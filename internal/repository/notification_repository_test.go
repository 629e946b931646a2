package repository

import (
	"context"
	"testing"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepo_CreateAndRead(t *testing.T) {
	db := requireDB(t)
	r := NewNotificationRepository(db)
	ctx := context.Background()

	setupTestData(t, db)

	target := int64(2)
	key := "deposit.approved:1"

	first, created, err := r.Create(ctx, &models.Notification{Title: "Deposit approved", Message: "ok", TargetUserID: &target, DedupeKey: &key})
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := r.Create(ctx, &models.Notification{Title: "Deposit approved", Message: "ok", TargetUserID: &target, DedupeKey: &key})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	_, _, err = r.Create(ctx, &models.Notification{Title: "Maintenance", Message: "tonight"})
	require.NoError(t, err)

	list, err := r.ListForUser(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	other, err := r.ListForUser(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, other, 1)

	count, err := r.UnreadCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, r.MarkRead(ctx, first.ID, 2))
	require.NoError(t, r.MarkRead(ctx, first.ID, 2))

	count, err = r.UnreadCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.ErrorIs(t, r.MarkRead(ctx, 9999, 2), apperrors.ErrNotificationNotFound)
}
