package controller

import (
	"log/slog"
	"net/http"

	"hungngan-chat-backend/dao"
	"hungngan-chat-backend/response"

	"github.com/gin-gonic/gin"
)

const timestampLayout = "2006-01-02 15:04:05"

func GetHistory(c *gin.Context) {
	respondHistory(c, "")
}

func GetHistoryByID(c *gin.Context) {
	respondHistory(c, c.Param("id"))
}

func respondHistory(c *gin.Context, conversationKey string) {
	entries, err := dao.GetHistoryByKey(conversationKey)
	if err != nil {
		slog.Error(ErrGetHistory.Error(),
			"conversation_key", conversationKey,
			"err", err,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGetHistory.Error(),
		})
		return
	}

	resp := response.GetHistoryResponse{
		History: make([]response.HistoryEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.History = append(resp.History, response.HistoryEntryResponse{
			ID:        entry.ID,
			Question:  entry.Question,
			Answer:    entry.Answer,
			Timestamp: entry.CreatedAt.Format(timestampLayout),
		})
	}

	c.JSON(http.StatusOK, response.Response{
		Data: resp,
	})
}
