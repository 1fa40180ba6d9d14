package chat

import "errors"

var (
	// Model yêu cầu một tool không có trong registry
	ErrUnknownTool = errors.New("unknown tool requested")

	// Arguments của tool call không phải JSON hợp lệ
	ErrToolArguments = errors.New("invalid tool call arguments")

	ErrCompletion      = errors.New("completion request failed")
	ErrEmptyCompletion = errors.New("completion response has no choices")
)
