package model

import "time"

// DefaultConversationKey là khóa dùng chung khi client không gửi conversation id
const DefaultConversationKey = "chat"

// HistoryEntry lưu một cặp hỏi/đáp, chỉ thêm mới, không sửa hay xóa.
// Xây dựng chỉ mục liên hợp (conversation_key, created_at)
type HistoryEntry struct {
	ID              string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt       time.Time `gorm:"not null;index:idx_conversation_created" json:"created_at"`
	ConversationKey string    `gorm:"not null;index:idx_conversation_created" json:"conversation_key"`
	Question        string    `gorm:"type:text" json:"question"`
	Answer          string    `gorm:"type:text" json:"answer"`
}

func (HistoryEntry) TableName() string {
	return "chat_history"
}
