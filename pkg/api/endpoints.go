package api

import (
	"context"
	"fmt"

	"github.com/goshopper/matchstick/pkg/catalog"
	"github.com/goshopper/matchstick/pkg/kit"
	"github.com/goshopper/matchstick/pkg/lexicon"
	"github.com/goshopper/matchstick/pkg/match"
)

// Shared request/response types used by both HTTP and MCP transports.

type searchReq struct {
	Query      string
	MinScore   float64
	MaxResults int
}

type searchResponse struct {
	Query   string         `json:"query"`
	Results []match.Result `json:"results"`
}

type suggestReq struct {
	Query string
	Limit int
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type hasMatchReq struct {
	Query     string
	Threshold float64
}

type hasMatchResponse struct {
	Match bool `json:"match"`
}

type normalizeBatchReq struct {
	Items  []string
	ShopID string
}

// normalizeItem is the resolution of one raw shopping-list line: either a
// previously learned mapping, the engine's best match, or needs_review.
type normalizeItem struct {
	Query       string  `json:"query"`
	Key         string  `json:"key"`
	ProductID   string  `json:"product_id,omitempty"`
	Name        string  `json:"name,omitempty"`
	Score       float64 `json:"score"`
	MatchType   string  `json:"match_type,omitempty"`
	Learned     bool    `json:"learned,omitempty"`
	NeedsReview bool    `json:"needs_review,omitempty"`
}

type normalizeBatchResponse struct {
	Results []normalizeItem `json:"results"`
}

type learnMappingReq struct {
	RawName   string
	ProductID string
	ShopID    string
}

type learnMappingResponse struct {
	RawKey    string `json:"raw_key"`
	ProductID string `json:"product_id"`
}

type lexiconsResponse struct {
	Lexicons []lexicon.Info `json:"lexicons"`
}

// Endpoints returned here back both the HTTP router and the MCP tools.

func searchEndpoint(s *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*searchReq)
		cands, err := s.candidates()
		if err != nil {
			return nil, err
		}
		results := s.Engine().Search(cands, req.Query, &match.Config{
			MinScore:   req.MinScore,
			MaxResults: req.MaxResults,
		})
		return searchResponse{Query: req.Query, Results: results}, nil
	}
}

func suggestEndpoint(s *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*suggestReq)
		cands, err := s.candidates()
		if err != nil {
			return nil, err
		}
		names := s.Engine().Suggestions(cands, req.Query, req.Limit)
		if names == nil {
			names = []string{}
		}
		return suggestResponse{Suggestions: names}, nil
	}
}

func hasMatchEndpoint(s *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*hasMatchReq)
		cands, err := s.candidates()
		if err != nil {
			return nil, err
		}
		return hasMatchResponse{Match: s.Engine().HasMatch(cands, req.Query, req.Threshold)}, nil
	}
}

func normalizeBatchEndpoint(s *Service) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*normalizeBatchReq)
		if len(req.Items) == 0 {
			return nil, fmt.Errorf("items array is empty")
		}
		if len(req.Items) > 100 {
			return nil, fmt.Errorf("too many items (max 100, got %d)", len(req.Items))
		}

		eng := s.Engine()
		cands, err := s.candidates()
		if err != nil {
			return nil, err
		}

		results := make([]normalizeItem, len(req.Items))
		for i, raw := range req.Items {
			key := eng.Preprocess(raw)
			item := normalizeItem{Query: raw, Key: key}

			if key != "" {
				if p, ok, err := s.store.Resolve(key); err != nil {
					return nil, err
				} else if ok {
					item.ProductID = p.ID
					item.Name = p.Name
					item.Score = 1.0
					item.MatchType = string(match.TypeExact)
					item.Learned = true
					results[i] = item
					continue
				}
			}

			rs := eng.Search(cands, raw, &match.Config{MaxResults: 1})
			if len(rs) == 0 {
				item.NeedsReview = true
			} else {
				item.ProductID = rs[0].Candidate.ID
				item.Name = rs[0].Candidate.Name
				item.Score = rs[0].Score
				item.MatchType = string(rs[0].Type)
			}
			results[i] = item
		}
		return normalizeBatchResponse{Results: results}, nil
	}
}

func learnMappingEndpoint(s *Service) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*learnMappingReq)
		key := s.Engine().Preprocess(req.RawName)
		if key == "" {
			return nil, fmt.Errorf("raw_name normalizes to nothing")
		}
		shop := req.ShopID
		if shop == "" {
			shop = kit.GetShopID(ctx)
		}
		if err := s.store.Learn(catalog.Mapping{RawKey: key, ProductID: req.ProductID, ShopID: shop}); err != nil {
			return nil, err
		}
		return learnMappingResponse{RawKey: key, ProductID: req.ProductID}, nil
	}
}

func listLexiconsEndpoint(s *Service) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return lexiconsResponse{Lexicons: s.registry.List()}, nil
	}
}
