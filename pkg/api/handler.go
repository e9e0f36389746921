package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/goshopper/matchstick/pkg/kit"
)

// NewRouter returns an http.Handler with all Matchstick API routes.
func NewRouter(s *Service) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		search:         searchEndpoint(s),
		suggest:        suggestEndpoint(s),
		hasMatch:       hasMatchEndpoint(s),
		normalizeBatch: normalizeBatchEndpoint(s),
		learnMapping:   learnMappingEndpoint(s),
		listLexicons:   listLexiconsEndpoint(s),
		svc:            s,
	}

	mux.HandleFunc("GET /v1/search", h.handleSearch)
	mux.HandleFunc("GET /v1/suggest", h.handleSuggest)
	mux.HandleFunc("GET /v1/match", h.handleHasMatch)
	mux.HandleFunc("GET /v1/normalize/batch", methodNotAllowed) // prevent GET on batch
	mux.HandleFunc("POST /v1/normalize/batch", h.handleNormalizeBatch)
	mux.HandleFunc("GET /v1/mappings", methodNotAllowed)
	mux.HandleFunc("POST /v1/mappings", h.handleLearnMapping)
	mux.HandleFunc("GET /v1/lexicons", h.handleListLexicons)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	search         kit.Endpoint
	suggest        kit.Endpoint
	hasMatch       kit.Endpoint
	normalizeBatch kit.Endpoint
	learnMapping   kit.Endpoint
	listLexicons   kit.Endpoint
	svc            *Service
}

// --- search ---

func (h *handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := h.search(r.Context(), &searchReq{
		Query:      q.Get("q"),
		MinScore:   parseFloat(q.Get("min_score")),
		MaxResults: parseInt(q.Get("max_results")),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- suggest ---

func (h *handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := h.suggest(r.Context(), &suggestReq{
		Query: q.Get("q"),
		Limit: parseInt(q.Get("limit")),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- has match ---

func (h *handler) handleHasMatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := h.hasMatch(r.Context(), &hasMatchReq{
		Query:     q.Get("q"),
		Threshold: parseFloat(q.Get("threshold")),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- normalize batch ---

type httpBatchRequest struct {
	Items  []string `json:"items"`
	ShopID string   `json:"shop_id,omitempty"`
}

func (h *handler) handleNormalizeBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024) // 64 KiB max
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := shopContext(r)
	resp, err := h.normalizeBatch(ctx, &normalizeBatchReq{Items: req.Items, ShopID: req.ShopID})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- learn mapping ---

type httpMappingRequest struct {
	RawName   string `json:"raw_name"`
	ProductID string `json:"product_id"`
	ShopID    string `json:"shop_id,omitempty"`
}

func (h *handler) handleLearnMapping(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)
	var req httpMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.RawName == "" || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "raw_name and product_id are required")
		return
	}

	ctx := shopContext(r)
	resp, err := h.learnMapping(ctx, &learnMappingReq{
		RawName:   req.RawName,
		ProductID: req.ProductID,
		ShopID:    req.ShopID,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// --- list lexicons ---

func (h *handler) handleListLexicons(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listLexicons(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status   string `json:"status"`
	Lexicons int    `json:"lexicons"`
	Products int    `json:"products"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Store().Count()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Lexicons: h.svc.Registry().Count(),
		Products: products,
	})
}

// --- helpers ---

// shopContext lifts the X-Shop-ID header into the request context so
// endpoints can scope learned mappings without a body field.
func shopContext(r *http.Request) context.Context {
	ctx := r.Context()
	if shop := r.Header.Get("X-Shop-ID"); shop != "" {
		ctx = kit.WithShopID(ctx, shop)
	}
	return ctx
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Shop-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
