package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"hungngan-chat-backend/config"
	"hungngan-chat-backend/utils"
)

var sttHTTPClient = utils.NewHTTPClient(
	utils.WithTimeout(60 * time.Second),
)

// Transcribe chuyển tiếp file âm thanh tới endpoint speech-to-text tương
// thích OpenAI và trả về văn bản nhận dạng được.
func Transcribe(ctx context.Context, audioFile *multipart.FileHeader) (string, error) {
	file, err := audioFile.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %v", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", audioFile.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %v", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to copy audio data: %v", err)
	}
	if err := writer.WriteField("model", config.Cfg.STT.Model); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %v", err)
	}

	endpoint := config.Cfg.STT.BaseURL + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+config.Cfg.STT.APIKey)

	resp, err := sttHTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("transcription request failed with status %d: %s", resp.StatusCode, data)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse transcription response: %v", err)
	}

	return result.Text, nil
}
