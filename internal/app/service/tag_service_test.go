package service

import (
	"testing"

	"github.com/orderdesk/orderdesk-backend/internal/app/repository"
	"github.com/orderdesk/orderdesk-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_CreateAndList(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	tagService := NewTagService(repository.NewTagRepository(testDB))

	tag, err := tagService.CreateTag("priority")
	require.NoError(t, err)
	assert.NotZero(t, tag.ID)

	tags, err := tagService.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "priority", tags[0].Name)
}
