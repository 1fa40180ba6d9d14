package chat

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// ToolFunc nhận arguments đã parse và trả về chuỗi JSON đưa vào tool message
type ToolFunc func(ctx context.Context, args map[string]any) (string, error)

type Tool struct {
	Definition llms.Tool
	Call       ToolFunc
}

// Registry là bảng tool đóng, dựng một lần khi khởi động và không đổi sau đó
type Registry struct {
	manifest []llms.Tool
	byName   map[string]ToolFunc
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{
		manifest: make([]llms.Tool, 0, len(tools)),
		byName:   make(map[string]ToolFunc, len(tools)),
	}
	for _, tool := range tools {
		r.manifest = append(r.manifest, tool.Definition)
		r.byName[tool.Definition.Function.Name] = tool.Call
	}
	return r
}

// Manifest trả về danh sách tool gửi kèm completion request
func (r *Registry) Manifest() []llms.Tool {
	return r.manifest
}

func (r *Registry) Resolve(name string) (ToolFunc, error) {
	fn, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return fn, nil
}
