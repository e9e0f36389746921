package kit

import "context"

type contextKey string

const (
	ShopIDKey    contextKey = "kit_shop_id"
	TransportKey contextKey = "kit_transport" // "http", "mcp_quic"
	RequestIDKey contextKey = "kit_request_id"
)

func WithShopID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ShopIDKey, id)
}
func GetShopID(ctx context.Context) string {
	v, _ := ctx.Value(ShopIDKey).(string)
	return v
}

func WithTransport(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, TransportKey, t)
}
func GetTransport(ctx context.Context) string {
	if v, ok := ctx.Value(TransportKey).(string); ok {
		return v
	}
	return "http"
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}
