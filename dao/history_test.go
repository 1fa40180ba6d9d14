package dao

import (
	"testing"

	"hungngan-chat-backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.HistoryEntry{}))
	DB = db
}

func TestHistoryRoundTrip(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SaveHistory("câu hỏi 1", "trả lời 1", ""))
	require.NoError(t, SaveHistory("câu hỏi 2", "trả lời 2", ""))

	entries, err := GetHistoryByKey("")
	require.NoError(t, err)
	require.Len(t, entries, 2, "sequential saves must append, not overwrite")

	assert.Equal(t, "câu hỏi 1", entries[0].Question)
	assert.Equal(t, "câu hỏi 2", entries[1].Question)
	assert.Equal(t, "trả lời 2", entries[1].Answer)

	assert.Equal(t, model.DefaultConversationKey, entries[0].ConversationKey)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestHistoryKeyedIsolation(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SaveHistory("hỏi chung", "đáp chung", ""))
	require.NoError(t, SaveHistory("hỏi riêng", "đáp riêng", "conv-1"))

	entries, err := GetHistoryByKey("conv-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hỏi riêng", entries[0].Question)

	entries, err = GetHistoryByKey("")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hỏi chung", entries[0].Question)
}

func TestHistoryEmptyKey(t *testing.T) {
	setupTestDB(t)

	entries, err := GetHistoryByKey("conv-unknown")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
