package ports

import (
	"context"

	"github.com/Gunvolt24/supplier_orders/internal/domain"
)

// SupplierOrderService - единственный путь чтения/записи заказов поставщика для экранов.
type SupplierOrderService interface {
	GetOrders(ctx context.Context, params domain.ListParams) (*domain.OrderListPage, error)
	GetOrderItem(ctx context.Context, id string) (*domain.OrderItemDetail, error)
	UpdateOrderFulfillment(ctx context.Context, id string, upd domain.FulfillmentUpdate) (*domain.OrderItemDetail, error)
	GetOrderAnalytics(ctx context.Context, days int) (domain.AnalyticsSummary, error)
	GetShipments(ctx context.Context, params domain.PageParams) (*domain.ShipmentsPage, error)
	GetReturns(ctx context.Context, params domain.PageParams) (*domain.ReturnsPage, error)
}
