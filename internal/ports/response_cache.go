package ports

import "encoding/json"

// ResponseCache - TTL-кэш ответов бэкенда, принадлежащий одному экземпляру сервиса.
// Требования к реализации: потокобезопасность; ленивое истечение по TTL;
// инвалидация строго по точному ключу; возврат копий значений.
type ResponseCache interface {
	// IsValid - есть ли по ключу запись моложе TTL.
	IsValid(key string) bool

	// Get - (value, true) для актуальной записи, (nil, false) при промахе/истечении.
	Get(key string) (json.RawMessage, bool)

	// Set - сохранить значение и отметить время вставки (перезаписывает прежнее).
	Set(key string, value json.RawMessage)

	// Invalidate - удалить значение и отметку времени по ключу.
	Invalidate(key string)
}
