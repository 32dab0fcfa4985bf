// Package memory - TTL-кэш ответов бэкенда в памяти процесса.
package memory

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/Gunvolt24/supplier_orders/internal/ports"
	"github.com/Gunvolt24/supplier_orders/pkg/metrics"
)

type entry struct {
	value      json.RawMessage
	insertedAt time.Time
}

// TTLCache хранит ответы по точному ключу. Запись валидна, пока
// now - insertedAt < ttl; просроченные записи удаляются лениво при чтении.
// Размер не ограничен: записи живут вместе с экземпляром сервиса.
type TTLCache struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

type Option func(*TTLCache)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(c *TTLCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewTTLCache создаёт кэш; name идёт в метку метрик.
func NewTTLCache(name string, ttl time.Duration, opts ...Option) *TTLCache {
	c := &TTLCache{
		name:    name,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

var _ ports.ResponseCache = (*TTLCache)(nil)

// IsValid сообщает, есть ли по ключу непросроченная запись.
func (c *TTLCache) IsValid(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.lookup(key, c.now())
	return ok
}

// Get возвращает копию значения. ok=false для отсутствующей и просроченной записи.
func (c *TTLCache) Get(key string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.lookup(key, c.now())
	if !ok {
		return nil, false
	}
	metrics.CacheOps.WithLabelValues(c.name, "hit").Inc()
	return cloneRaw(ent.value), true
}

// Set кладёт копию значения и сбрасывает время вставки.
func (c *TTLCache) Set(key string, value json.RawMessage) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: cloneRaw(value), insertedAt: now}
	metrics.CacheOps.WithLabelValues(c.name, "set").Inc()
	c.reportSize()
}

// Invalidate удаляет запись с точно таким ключом; префиксы не учитываются.
func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	metrics.CacheOps.WithLabelValues(c.name, "invalidated").Inc()
	c.reportSize()
}

// Len - число хранимых записей, включая ещё не вычищенные просроченные.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// lookup вызывается под мьютексом; просроченную запись сразу удаляет.
func (c *TTLCache) lookup(key string, now time.Time) (entry, bool) {
	ent, ok := c.entries[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(c.name, "miss").Inc()
		return entry{}, false
	}
	if c.isExpired(ent, now) {
		delete(c.entries, key)
		metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
		c.reportSize()
		return entry{}, false
	}
	return ent, true
}

func (c *TTLCache) isExpired(ent entry, now time.Time) bool {
	return now.Sub(ent.insertedAt) >= c.ttl
}

func (c *TTLCache) reportSize() {
	metrics.CacheEntries.WithLabelValues(c.name).Set(float64(len(c.entries)))
}

// cloneRaw - копия, чтобы изменения снаружи не отражались на данных внутри кэша.
func cloneRaw(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	return append(json.RawMessage(nil), v...)
}
