// Package apiclient - исполнитель HTTP-запросов к бэкенду витрины:
// базовый URL, bearer-токен, JSON в обе стороны и нормализация ошибок.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/supplier_orders/internal/ports"
	"github.com/Gunvolt24/supplier_orders/pkg/ctxmeta"
	"github.com/Gunvolt24/supplier_orders/pkg/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultBaseURL = "http://localhost:8000"

type Client struct {
	http    *http.Client
	baseURL string
	tracing bool
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout задаёт таймаут на весь запрос; 0 - без таймаута.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithTracing оборачивает транспорт в otelhttp: исходящие запросы получают
// span и заголовок traceparent.
func WithTracing(enabled bool) Option {
	return func(c *Client) { c.tracing = enabled }
}

func New(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		http:    &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, o := range opts {
		o(c)
	}
	if c.tracing {
		base := c.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		traced := *c.http
		traced.Transport = otelhttp.NewTransport(base)
		c.http = &traced
	}
	return c
}

var _ ports.APIRequester = (*Client)(nil)

// Do выполняет запрос к baseURL+path и возвращает разобранное JSON-тело.
// Пустое или не-JSON тело даёт nil без ошибки. Ответ вне 2xx превращается
// в *Error; транспортные ошибки возвращаются как есть.
func (c *Client) Do(ctx context.Context, path string, opts ports.RequestOptions) (json.RawMessage, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader = http.NoBody
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set(ctxmeta.HeaderRequestID, rid)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.APIRequestDuration.WithLabelValues(method, "error").Observe(time.Since(start).Seconds())
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	metrics.APIRequestDuration.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	parsed := parseJSON(raw)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(resp.StatusCode, decodeAny(parsed))
	}
	return parsed, nil
}

// parseJSON возвращает тело, только если это валидный JSON (и не null).
func parseJSON(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return json.RawMessage(trimmed)
}

func decodeAny(raw json.RawMessage) any {
	if raw == nil {
		return nil
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}
