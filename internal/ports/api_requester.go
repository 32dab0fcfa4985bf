package ports

import (
	"context"
	"encoding/json"
)

// RequestOptions - параметры одного запроса к REST-бэкенду.
// Пустой Method означает GET; Body сериализуется в JSON; пустой Token - без Authorization.
type RequestOptions struct {
	Method string
	Body   any
	Token  string
}

// APIRequester - исполнитель запросов к бэкенду.
// Возвращает разобранное JSON-тело (nil для пустого/не-JSON тела).
type APIRequester interface {
	Do(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error)
}
