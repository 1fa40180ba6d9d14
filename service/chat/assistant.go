package chat

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hungngan-chat-backend/config"
	"hungngan-chat-backend/service/catalog"
	"hungngan-chat-backend/utils"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	stopReasonToolCalls = "tool_calls"

	// Chặn vòng gọi tool bất thường, bình thường chỉ cần một đến hai vòng
	maxToolRounds = 5
)

// Cấu hình 300s timeout để chờ completion của LLM
var assistantHTTPClient = utils.NewHTTPClient(
	utils.WithTimeout(300 * time.Second),
)

var (
	//go:embed prompts/system_prompt.txt
	systemPrompt string

	//go:embed prompts/greeting_prompt.txt
	greetingPrompt string

	//go:embed prompts/greetings.txt
	rawGreetings string
)

// Assistant điều phối một lượt hội thoại: chào hỏi nhanh hoặc vòng
// gọi tool rồi trả về câu trả lời cuối của model.
type Assistant struct {
	llm      llms.Model
	registry *Registry

	systemPrompt   string
	greetingPrompt string
	greetings      []string
}

func NewAssistant() (*Assistant, error) {
	llm, err := openai.New(
		openai.WithModel(config.Cfg.Model.Name),
		openai.WithToken(config.Cfg.Model.APIKey),
		openai.WithBaseURL(config.Cfg.Model.BaseURL),
		openai.WithHTTPClient(assistantHTTPClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %v", err)
	}

	client := catalog.NewClient(config.Cfg.Catalog.BaseURL)
	return newAssistant(llm, NewCatalogRegistry(client)), nil
}

func newAssistant(llm llms.Model, registry *Registry) *Assistant {
	return &Assistant{
		llm:            llm,
		registry:       registry,
		systemPrompt:   systemPrompt,
		greetingPrompt: greetingPrompt,
		greetings:      parseGreetings(rawGreetings),
	}
}

// ProcessMessage xử lý một tin nhắn với ngữ cảnh mới hoàn toàn, không nạp
// lại lịch sử hội thoại đã lưu.
func (a *Assistant) ProcessMessage(ctx context.Context, userMessage string) (string, error) {
	if a.isGreeting(userMessage) {
		return a.generate(ctx, []llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, a.greetingPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, userMessage),
		})
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, a.systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userMessage),
	}
	manifest := a.registry.Manifest()

	resp, err := a.llm.GenerateContent(ctx, messages, llms.WithTools(manifest))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	choice, err := firstChoice(resp)
	if err != nil {
		return "", err
	}

	for round := 0; choice.StopReason == stopReasonToolCalls; round++ {
		if round >= maxToolRounds {
			return "", fmt.Errorf("%w: exceeded %d tool call rounds", ErrCompletion, maxToolRounds)
		}

		messages = append(messages, assistantToolCallMessage(choice.ToolCalls))
		for _, call := range choice.ToolCalls {
			result, err := a.invokeTool(ctx, call)
			if err != nil {
				return "", err
			}
			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: call.ID,
					Name:       call.FunctionCall.Name,
					Content:    result,
				}},
			})
		}

		resp, err = a.llm.GenerateContent(ctx, messages, llms.WithTools(manifest))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCompletion, err)
		}
		choice, err = firstChoice(resp)
		if err != nil {
			return "", err
		}
	}

	return choice.Content, nil
}

func (a *Assistant) invokeTool(ctx context.Context, call llms.ToolCall) (string, error) {
	if call.FunctionCall == nil {
		return "", fmt.Errorf("%w: tool call %s has no function payload", ErrToolArguments, call.ID)
	}

	args, err := parseToolArguments(call.FunctionCall.Arguments)
	if err != nil {
		return "", err
	}

	fn, err := a.registry.Resolve(call.FunctionCall.Name)
	if err != nil {
		return "", err
	}

	slog.Info("Calling tool", "tool", call.FunctionCall.Name, "args", args)
	return fn(ctx, args)
}

func (a *Assistant) generate(ctx context.Context, messages []llms.MessageContent) (string, error) {
	resp, err := a.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	choice, err := firstChoice(resp)
	if err != nil {
		return "", err
	}
	return choice.Content, nil
}

func (a *Assistant) isGreeting(message string) bool {
	lowered := strings.ToLower(message)
	for _, greeting := range a.greetings {
		if strings.Contains(lowered, greeting) {
			return true
		}
	}
	return false
}

// parseToolArguments parse arguments theo JSON chuẩn. Một số model trả về
// JSON dùng nháy đơn nên có bước thay nháy để cứu vãn; bước này không an
// toàn khi giá trị chuỗi chứa dấu nháy đơn, chỉ là shim tương thích.
func parseToolArguments(raw string) (map[string]any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(trimmed), &args); err == nil {
		return args, nil
	}

	normalized := strings.ReplaceAll(trimmed, "'", `"`)
	if err := json.Unmarshal([]byte(normalized), &args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolArguments, err)
	}
	return args, nil
}

func assistantToolCallMessage(calls []llms.ToolCall) llms.MessageContent {
	msg := llms.MessageContent{Role: llms.ChatMessageTypeAI}
	for _, call := range calls {
		msg.Parts = append(msg.Parts, call)
	}
	return msg
}

func firstChoice(resp *llms.ContentResponse) (*llms.ContentChoice, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}
	return resp.Choices[0], nil
}

func parseGreetings(raw string) []string {
	var greetings []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			greetings = append(greetings, strings.ToLower(line))
		}
	}
	return greetings
}
