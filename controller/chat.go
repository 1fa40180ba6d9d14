package controller

import (
	"log/slog"
	"net/http"

	"hungngan-chat-backend/dao"
	"hungngan-chat-backend/request"
	"hungngan-chat-backend/response"
	"hungngan-chat-backend/service/chat"

	"github.com/gin-gonic/gin"
)

func Chat(c *gin.Context) {
	var req request.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	assistant, err := chat.NewAssistant()
	if err != nil {
		slog.Error(ErrCreateAssistant.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrCreateAssistant.Error(),
		})
		return
	}

	answer, err := assistant.ProcessMessage(c.Request.Context(), req.Message)
	if err != nil {
		slog.Error(ErrProcessMessage.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrProcessMessage.Error(),
		})
		return
	}

	// Lịch sử chỉ mang tính tham khảo, lưu lỗi không làm hỏng câu trả lời
	if err := dao.SaveHistory(req.Message, answer, req.ConversationID); err != nil {
		slog.Error(ErrSaveHistory.Error(),
			"conversation_id", req.ConversationID,
			"err", err,
		)
	}

	c.JSON(http.StatusOK, response.Response{
		Data: response.ChatResponse{Answer: answer},
	})
}
