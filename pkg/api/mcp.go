package api

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/goshopper/matchstick/pkg/kit"
)

// RegisterMCPTools registers the Matchstick MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, s *Service) {
	registerSearchProducts(srv, s)
	registerSuggestProducts(srv, s)
	registerNormalizeBatch(srv, s)
	registerListLexicons(srv, s)
}

func registerSearchProducts(srv *server.MCPServer, s *Service) {
	tool := mcp.NewTool("search_products",
		mcp.WithDescription("Search the product catalog with fuzzy matching: handles typos, OCR misreads, abbreviations and cross-language synonyms (e.g. 'milk' finds 'Lait entier')."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The product name or fragment to search for")),
		mcp.WithNumber("min_score", mcp.Description("Minimum similarity score in [0,1], default 0.35")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of results to return")),
	)

	kit.RegisterMCPTool(srv, tool, searchEndpoint(s), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		query, _ := args["query"].(string)
		minScore, _ := args["min_score"].(float64)
		maxResults, _ := args["max_results"].(float64)
		return &kit.MCPDecodeResult{Request: &searchReq{
			Query:      query,
			MinScore:   minScore,
			MaxResults: int(maxResults),
		}}, nil
	})
}

func registerSuggestProducts(srv *server.MCPServer, s *Service) {
	tool := mcp.NewTool("suggest_products",
		mcp.WithDescription("Autocomplete product names from a partial query. Returns distinct display names in relevance order."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The partial product name (at least 2 characters)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of suggestions, default 5")),
	)

	kit.RegisterMCPTool(srv, tool, suggestEndpoint(s), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		query, _ := args["query"].(string)
		limit, _ := args["limit"].(float64)
		return &kit.MCPDecodeResult{Request: &suggestReq{Query: query, Limit: int(limit)}}, nil
	})
}

func registerNormalizeBatch(srv *server.MCPServer, s *Service) {
	tool := mcp.NewTool("normalize_batch",
		mcp.WithDescription("Resolve multiple raw product names (up to 100) against the catalog, preferring previously learned mappings over fuzzy matches."),
		mcp.WithString("items", mcp.Required(), mcp.Description("Comma-separated list of raw product names")),
		mcp.WithString("shop", mcp.Description("Shop id to scope learned mappings")),
	)

	kit.RegisterMCPTool(srv, tool, normalizeBatchEndpoint(s), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		itemsStr, _ := args["items"].(string)
		items := strings.Split(itemsStr, ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}
		shop, _ := args["shop"].(string)

		result := &kit.MCPDecodeResult{Request: &normalizeBatchReq{Items: items, ShopID: shop}}
		if shop != "" {
			result.EnrichCtx = func(ctx context.Context) context.Context {
				return kit.WithShopID(ctx, shop)
			}
		}
		return result, nil
	})
}

func registerListLexicons(srv *server.MCPServer, s *Service) {
	tool := mcp.NewTool("list_lexicons",
		mcp.WithDescription("List all loaded lexicon sets with metadata (market, languages, concept count, version)."),
	)

	kit.RegisterMCPTool(srv, tool, listLexiconsEndpoint(s), func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}
