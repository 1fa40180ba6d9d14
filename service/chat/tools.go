package chat

import (
	"context"
	"strconv"

	"hungngan-chat-backend/service/catalog"

	"github.com/tmc/langchaingo/llms"
)

const defaultRestaurantLimit = 10

// NewCatalogRegistry dựng registry với sáu tool tra cứu API danh mục
func NewCatalogRegistry(client *catalog.Client) *Registry {
	return NewRegistry(
		Tool{
			Definition: functionTool("get_categories",
				"Get list of product categories from store",
				map[string]any{}, nil),
			Call: func(ctx context.Context, _ map[string]any) (string, error) {
				return client.GetCategories(ctx)
			},
		},
		Tool{
			Definition: functionTool("get_top_food",
				"Get top 5 food from store",
				map[string]any{}, nil),
			Call: func(ctx context.Context, _ map[string]any) (string, error) {
				return client.GetTopFood(ctx)
			},
		},
		Tool{
			Definition: functionTool("get_service",
				"Get service by name",
				map[string]any{
					"category_name": map[string]any{
						"type":        "string",
						"description": "Category name",
						"example":     "Food, Drinks, Laundry, etc",
					},
				}, nil),
			Call: func(ctx context.Context, args map[string]any) (string, error) {
				return client.GetServices(ctx, stringArg(args, "category_name"))
			},
		},
		Tool{
			Definition: functionTool("get_top_restaurants",
				"Get top N restaurants by service ID",
				map[string]any{
					"service_id": map[string]any{
						"type":        "integer",
						"description": "Service ID to filter restaurants",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Number of restaurants to return (default 10)",
					},
				}, nil),
			Call: func(ctx context.Context, args map[string]any) (string, error) {
				serviceID := intArg(args, "service_id", 0)
				limit := intArg(args, "limit", defaultRestaurantLimit)
				return client.GetTopRestaurants(ctx, serviceID, limit)
			},
		},
		Tool{
			Definition: functionTool("get_service_advertisements",
				"Get advertisements by service name",
				map[string]any{
					"service_name": map[string]any{
						"type":        "string",
						"description": "Service name code (e.g. trasua, coffee, etc)",
					},
				}, []string{"service_name"}),
			Call: func(ctx context.Context, args map[string]any) (string, error) {
				return client.GetServiceAdvertisements(ctx, stringArg(args, "service_name"))
			},
		},
		Tool{
			Definition: functionTool("get_popular_advertisements",
				"Get popular advertisements by category name",
				map[string]any{
					"category_name": map[string]any{
						"type":        "string",
						"description": "Category name code (e.g. food, drinks, etc)",
					},
				}, []string{"category_name"}),
			Call: func(ctx context.Context, args map[string]any) (string, error) {
				return client.GetPopularAdvertisements(ctx, stringArg(args, "category_name"))
			},
		},
	)
}

func functionTool(name, description string, properties map[string]any, required []string) llms.Tool {
	if required == nil {
		required = []string{}
	}
	return llms.Tool{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters: map[string]any{
				"type":       "object",
				"properties": properties,
				"required":   required,
			},
		},
	}
}

func stringArg(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return value
}

// intArg chấp nhận cả số và chuỗi số vì model không phải lúc nào cũng
// trả về đúng kiểu integer
func intArg(args map[string]any, key string, fallback int) int {
	switch value := args[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
