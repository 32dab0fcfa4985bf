// Пакет ctxmeta - нейтральный слой для метаданных запроса, которые
// прокидываются через context.Context (request_id, trace_id, экран).
// HTTP-слой, клиент API и логгер зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeyScreen    ctxKey = "screen"
)

// WithRequestID кладёт request_id в контекст (если пусто - ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, KeyRequestID)
}

// WithScreen помечает контекст именем экрана, от имени которого идёт запрос.
func WithScreen(ctx context.Context, screen string) context.Context {
	if ctx == nil || screen == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyScreen, screen)
}

func ScreenFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, KeyScreen)
}

// Fields собирает известные метаданные в пары ключ/значение для структурных логов.
func Fields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var out []any
	if id, ok := RequestIDFromContext(ctx); ok {
		out = append(out, "request_id", id)
	}
	if s, ok := ScreenFromContext(ctx); ok {
		out = append(out, "screen", s)
	}
	if traceID, spanID, ok := spanIDs(ctx); ok {
		out = append(out, "trace_id", traceID, "span_id", spanID)
	}
	return out
}

// TraceIDFromContext - trace_id активного спана для логов и ответов.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	traceID, _, ok := spanIDs(ctx)
	return traceID, ok
}

func SpanIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	_, spanID, ok := spanIDs(ctx)
	return spanID, ok
}

func stringValue(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// HeaderRequestID - заголовок, в котором request_id ходит между процессами.
const HeaderRequestID = "X-Request-ID"
