package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/Gunvolt24/supplier_orders/internal/domain"
	"github.com/Gunvolt24/supplier_orders/internal/ports"
	"github.com/Gunvolt24/supplier_orders/pkg/metrics"
	"github.com/Gunvolt24/supplier_orders/pkg/validate"
)

const (
	ordersPath           = "/supplier/orders"
	defaultAnalyticsDays = 30
)

var (
	// ErrAuthRequired - в сессии нет токена; запрос в сеть не уходит.
	ErrAuthRequired = errors.New("Authentication required")
	// ErrOrderIDRequired - пустой идентификатор позиции заказа.
	ErrOrderIDRequired = errors.New("order item id is required")
)

var _ ports.SupplierOrderService = (*SupplierOrderService)(nil)

// SupplierOrderService - прикладная логика раздела заказов поставщика:
// чтение через TTL-кэш, запись напрямую в бэкенд с инвалидацией кэша.
type SupplierOrderService struct {
	api    ports.APIRequester
	cache  ports.ResponseCache
	tokens ports.TokenProvider
	log    ports.Logger

	mu       sync.Mutex
	listKeys map[string]struct{} // ключи страниц списка, записанные этим экземпляром
}

// NewSupplierOrderService - DI-конструктор.
func NewSupplierOrderService(
	api ports.APIRequester,
	cache ports.ResponseCache,
	tokens ports.TokenProvider,
	log ports.Logger,
) *SupplierOrderService {
	return &SupplierOrderService{
		api:      api,
		cache:    cache,
		tokens:   tokens,
		log:      log,
		listKeys: make(map[string]struct{}),
	}
}

// GetOrders - страница заказов. В query уходят только заданные параметры.
func (s *SupplierOrderService) GetOrders(ctx context.Context, params domain.ListParams) (*domain.OrderListPage, error) {
	params = normalizeListParams(params)
	key := OrdersCacheKey(params)

	q := url.Values{}
	setPositive(q, "page", params.Page)
	setPositive(q, "page_size", params.PageSize)
	if params.Status != "" {
		q.Set("status", params.Status)
	}

	page := new(domain.OrderListPage)
	if err := s.readThrough(ctx, "get_orders", key, withQuery(ordersPath, q), page); err != nil {
		return nil, err
	}
	s.trackListKey(key)
	return page, nil
}

// GetOrderItem - детальная карточка позиции заказа.
func (s *SupplierOrderService) GetOrderItem(ctx context.Context, id string) (*domain.OrderItemDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrOrderIDRequired
	}
	detail := new(domain.OrderItemDetail)
	if err := s.readThrough(ctx, "get_order_item", OrderItemCacheKey(id), ordersPath+"/"+url.PathEscape(id), detail); err != nil {
		return nil, err
	}
	return detail, nil
}

// UpdateOrderFulfillment - смена статуса выполнения. Кэш не читается;
// после успеха сбрасываются карточка позиции и ключи списка.
func (s *SupplierOrderService) UpdateOrderFulfillment(
	ctx context.Context,
	id string,
	upd domain.FulfillmentUpdate,
) (*domain.OrderItemDetail, error) {
	token, err := s.requireToken(ctx, "update_order_fulfillment")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, ErrOrderIDRequired
	}
	if err := validate.FulfillmentStatus(upd.FulfillmentStatus); err != nil {
		s.log.Warnf(ctx, "update fulfillment rejected id=%s err=%v", id, err)
		return nil, err
	}

	raw, err := s.api.Do(ctx, ordersPath+"/"+url.PathEscape(id)+"/fulfillment", ports.RequestOptions{
		Method: http.MethodPut,
		Body:   upd,
		Token:  token,
	})
	if err != nil {
		s.log.Errorf(ctx, "update fulfillment failed id=%s status=%s err=%v", id, upd.FulfillmentStatus, err)
		return nil, err
	}

	s.invalidateAfterWrite(id)

	detail := new(domain.OrderItemDetail)
	if err := decode(raw, detail); err != nil {
		s.log.Errorf(ctx, "update fulfillment: decode response id=%s err=%v", id, err)
		return nil, err
	}
	s.log.Infof(ctx, "fulfillment updated id=%s status=%s", id, upd.FulfillmentStatus)
	return detail, nil
}

// GetOrderAnalytics - сводка за days дней (по умолчанию 30).
func (s *SupplierOrderService) GetOrderAnalytics(ctx context.Context, days int) (domain.AnalyticsSummary, error) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))

	var summary domain.AnalyticsSummary
	if err := s.readThrough(ctx, "get_order_analytics", AnalyticsCacheKey(days), withQuery(ordersPath+"/analytics/orders", q), &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// GetShipments - страница отгрузок, без кэша.
func (s *SupplierOrderService) GetShipments(ctx context.Context, params domain.PageParams) (*domain.ShipmentsPage, error) {
	page := new(domain.ShipmentsPage)
	if err := s.fetch(ctx, "get_shipments", withQuery(ordersPath+"/shipments", pageQuery(params)), page); err != nil {
		return nil, err
	}
	return page, nil
}

// GetReturns - страница возвратов, без кэша.
func (s *SupplierOrderService) GetReturns(ctx context.Context, params domain.PageParams) (*domain.ReturnsPage, error) {
	page := new(domain.ReturnsPage)
	if err := s.fetch(ctx, "get_returns", withQuery(ordersPath+"/returns", pageQuery(params)), page); err != nil {
		return nil, err
	}
	return page, nil
}

// ------вспомогательные функции------

// readThrough: попадание в кэш - без сети; промах - токен, запрос, запись в кэш.
func (s *SupplierOrderService) readThrough(ctx context.Context, op, key, path string, out any) error {
	if raw, ok := s.cache.Get(key); ok {
		s.log.Debugf(ctx, "cache hit op=%s key=%s", op, key)
		if err := decode(raw, out); err != nil {
			s.log.Errorf(ctx, "%s: decode cached value key=%s err=%v", op, key, err)
			return err
		}
		return nil
	}
	s.log.Debugf(ctx, "cache miss op=%s key=%s", op, key)

	raw, err := s.call(ctx, op, path, out)
	if err != nil {
		return err
	}
	s.cache.Set(key, raw)
	return nil
}

// fetch - запрос без кэша.
func (s *SupplierOrderService) fetch(ctx context.Context, op, path string, out any) error {
	_, err := s.call(ctx, op, path, out)
	return err
}

func (s *SupplierOrderService) call(ctx context.Context, op, path string, out any) (json.RawMessage, error) {
	token, err := s.requireToken(ctx, op)
	if err != nil {
		return nil, err
	}
	raw, err := s.api.Do(ctx, path, ports.RequestOptions{Method: http.MethodGet, Token: token})
	if err != nil {
		s.log.Errorf(ctx, "%s failed path=%s err=%v", op, path, err)
		return nil, err
	}
	if err := decode(raw, out); err != nil {
		s.log.Errorf(ctx, "%s: decode response path=%s err=%v", op, path, err)
		return nil, err
	}
	return raw, nil
}

func (s *SupplierOrderService) requireToken(ctx context.Context, op string) (string, error) {
	token, ok := s.tokens.Token()
	if !ok {
		metrics.AuthShortCircuits.WithLabelValues(op).Inc()
		s.log.Errorf(ctx, "%s: %v", op, ErrAuthRequired)
		return "", ErrAuthRequired
	}
	return token, nil
}

func (s *SupplierOrderService) trackListKey(key string) {
	s.mu.Lock()
	s.listKeys[key] = struct{}{}
	s.mu.Unlock()
}

// invalidateAfterWrite сбрасывает карточку, литеральный ключ списка и
// каждую страницу списка, которую этот экземпляр успел закэшировать.
func (s *SupplierOrderService) invalidateAfterWrite(id string) {
	s.cache.Invalidate(OrderItemCacheKey(id))
	s.cache.Invalidate(ordersListKey)

	s.mu.Lock()
	keys := s.listKeys
	s.listKeys = make(map[string]struct{})
	s.mu.Unlock()

	for key := range keys {
		s.cache.Invalidate(key)
	}
}

// decode разбирает тело в out; пустое тело (nil) оставляет out нулевым.
func decode(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

func pageQuery(p domain.PageParams) url.Values {
	q := url.Values{}
	setPositive(q, "page", p.Page)
	setPositive(q, "page_size", p.PageSize)
	return q
}

func setPositive(q url.Values, name string, v int) {
	if v > 0 {
		q.Set(name, strconv.Itoa(v))
	}
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
