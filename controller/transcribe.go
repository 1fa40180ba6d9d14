package controller

import (
	"log/slog"
	"net/http"

	"hungngan-chat-backend/response"
	"hungngan-chat-backend/service/transcription"

	"github.com/gin-gonic/gin"
)

func Transcribe(c *gin.Context) {
	audioFile, err := c.FormFile("file")
	if err != nil {
		slog.Error(ErrGetAudioFile.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrGetAudioFile.Error(),
		})
		return
	}

	text, err := transcription.Transcribe(c.Request.Context(), audioFile)
	if err != nil {
		slog.Error(ErrTranscribeAudio.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrTranscribeAudio.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: response.TranscriptionResponse{Text: text},
	})
}
