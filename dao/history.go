package dao

import (
	"hungngan-chat-backend/model"

	"github.com/google/uuid"
)

// SaveHistory ghi thêm một cặp hỏi/đáp vào lịch sử hội thoại.
// Mỗi lần lưu là một INSERT độc lập nên các lần ghi đồng thời trên cùng
// một khóa không ghi đè lẫn nhau.
func SaveHistory(question, answer, conversationKey string) error {
	if conversationKey == "" {
		conversationKey = model.DefaultConversationKey
	}

	entry := model.HistoryEntry{
		ID:              uuid.New().String(),
		ConversationKey: conversationKey,
		Question:        question,
		Answer:          answer,
	}
	return DB.Create(&entry).Error
}

func GetHistoryByKey(conversationKey string) ([]model.HistoryEntry, error) {
	if conversationKey == "" {
		conversationKey = model.DefaultConversationKey
	}

	var entries []model.HistoryEntry
	if err := DB.Where("conversation_key = ?", conversationKey).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
