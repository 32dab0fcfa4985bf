package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error - нормализованная ошибка бэкенда для любого ответа со статусом вне 2xx.
// Data - разобранное тело ответа как есть (nil, если тело пустое или не JSON).
type Error struct {
	Message string
	Status  int
	Data    any
}

func (e *Error) Error() string {
	return e.Message
}

// newError выводит сообщение по приоритету:
// строковый detail, массив detail (msg + " at " + loc через точку, записи через "; "),
// строковый message, иначе "Request failed (<status>)".
func newError(status int, data any) *Error {
	return &Error{
		Message: messageFrom(status, data),
		Status:  status,
		Data:    data,
	}
}

func messageFrom(status int, data any) string {
	body, _ := data.(map[string]any)

	switch detail := body["detail"].(type) {
	case string:
		return detail
	case []any:
		if msg := joinValidationErrors(detail); msg != "" {
			return msg
		}
	}
	if msg, ok := body["message"].(string); ok {
		return msg
	}
	return fmt.Sprintf("Request failed (%d)", status)
}

func joinValidationErrors(entries []any) string {
	parts := make([]string, 0, len(entries))
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		msg, _ := entry["msg"].(string)
		if loc := dottedLocation(entry["loc"]); loc != "" {
			msg += " at " + loc
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}

// dottedLocation превращает ["body","items",0,"qty"] в "body.items.0.qty".
func dottedLocation(v any) string {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return ""
	}
	segs := make([]string, 0, len(items))
	for _, it := range items {
		switch s := it.(type) {
		case nil:
			// null в loc пропускаем
		case string:
			segs = append(segs, s)
		case json.Number:
			segs = append(segs, s.String())
		default:
			segs = append(segs, fmt.Sprint(s))
		}
	}
	return strings.Join(segs, ".")
}
