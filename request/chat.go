package request

type ChatRequest struct {
	Message string `json:"message" binding:"required"`

	// Tùy chọn, dùng làm khóa lưu lịch sử hội thoại
	ConversationID string `json:"conversation_id"`
}
