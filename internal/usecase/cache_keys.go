package usecase

import (
	"encoding/json"
	"strconv"

	"github.com/Gunvolt24/supplier_orders/internal/domain"
)

const (
	ordersKeyPrefix    = "supplier_orders_"
	orderItemKeyPrefix = "order_item_"
	analyticsKeyPrefix = "order_analytics_"

	// ordersListKey - литеральный ключ, который сбрасывается при смене статуса.
	ordersListKey = "supplier_orders"
)

// OrdersCacheKey - ключ страницы списка: префикс + JSON параметров.
// Поля сериализуются в фиксированном порядке, незаданные опускаются,
// поэтому одинаковые запросы дают одинаковый ключ.
// Неположительные page/page_size не уходят в query, поэтому и в ключ не попадают.
func OrdersCacheKey(params domain.ListParams) string {
	raw, _ := json.Marshal(normalizeListParams(params)) // структура из простых полей, ошибки быть не может
	return ordersKeyPrefix + string(raw)
}

func OrderItemCacheKey(id string) string {
	return orderItemKeyPrefix + id
}

func AnalyticsCacheKey(days int) string {
	return analyticsKeyPrefix + strconv.Itoa(days)
}

// normalizeListParams обнуляет неположительные page/page_size.
func normalizeListParams(p domain.ListParams) domain.ListParams {
	if p.Page <= 0 {
		p.Page = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = 0
	}
	return p
}
