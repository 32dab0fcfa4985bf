package dashboard

import (
	"context"

	"github.com/Gunvolt24/supplier_orders/internal/domain"
	"github.com/Gunvolt24/supplier_orders/internal/ports"
	"github.com/Gunvolt24/supplier_orders/pkg/ctxmeta"
	"github.com/Gunvolt24/supplier_orders/pkg/validate"
)

const ordersScreen = "orders"

// OrdersSnapshot - то, что отображает экран списка заказов.
type OrdersSnapshot struct {
	State  State                 `json:"state"`
	Params domain.ListParams     `json:"params"`
	Page   *domain.OrderListPage `json:"page,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// OrdersScreen - список заказов с пагинацией и фильтром по статусу.
// При ошибке ранее загруженная страница остаётся на экране.
type OrdersScreen struct {
	svc ports.SupplierOrderService
	log ports.Logger

	*loader[*domain.OrderListPage]
	params domain.ListParams
}

// NewOrdersScreen создаёт экран; pageSize > 0 задаёт размер страницы по умолчанию.
func NewOrdersScreen(svc ports.SupplierOrderService, log ports.Logger, pageSize int) *OrdersScreen {
	s := &OrdersScreen{
		svc:    svc,
		log:    log,
		loader: newLoader[*domain.OrderListPage](true),
	}
	if pageSize > 0 {
		s.params.PageSize = pageSize
	}
	return s
}

// Load загружает страницу с текущими параметрами.
func (s *OrdersScreen) Load(ctx context.Context) error {
	s.mu.Lock()
	seq := s.begin()
	params := s.params
	s.mu.Unlock()

	ctx = ctxmeta.WithScreen(ctx, ordersScreen)
	page, err := s.svc.GetOrders(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.finish(seq, page, err) {
		s.log.Debugf(ctx, "stale orders response dropped seq=%d", seq)
		return nil
	}
	return err
}

// SetPage меняет номер страницы и перезагружает список.
func (s *OrdersScreen) SetPage(ctx context.Context, page int) error {
	s.mu.Lock()
	s.params.Page = page
	s.mu.Unlock()
	return s.Load(ctx)
}

// SetPageSize меняет размер страницы и возвращает на первую страницу.
func (s *OrdersScreen) SetPageSize(ctx context.Context, size int) error {
	s.mu.Lock()
	s.params.PageSize = size
	if s.params.Page != 0 {
		s.params.Page = 1
	}
	s.mu.Unlock()
	return s.Load(ctx)
}

// SetStatusFilter меняет фильтр (пустая строка - без фильтра) и
// возвращает на первую страницу.
func (s *OrdersScreen) SetStatusFilter(ctx context.Context, status string) error {
	if err := validate.StatusFilter(status); err != nil {
		return err
	}
	s.mu.Lock()
	s.params.Status = status
	if s.params.Page != 0 {
		s.params.Page = 1
	}
	s.mu.Unlock()
	return s.Load(ctx)
}

// Apply выставляет все параметры разом и перезагружает список.
func (s *OrdersScreen) Apply(ctx context.Context, params domain.ListParams) error {
	if err := validate.StatusFilter(params.Status); err != nil {
		return err
	}
	s.mu.Lock()
	s.params = params
	s.mu.Unlock()
	return s.Load(ctx)
}

// Retry повторяет последнюю загрузку с теми же параметрами.
func (s *OrdersScreen) Retry(ctx context.Context) error {
	return s.Load(ctx)
}

// ChangeStatus отправляет новый статус позиции. Статус из панели
// сопоставляется со статусом бэкенда. После успеха строка обновляется
// прямо в загруженной странице, без повторного запроса; при ошибке
// строка не меняется, а ошибка возвращается для показа пользователю.
func (s *OrdersScreen) ChangeStatus(ctx context.Context, id, uiStatus string) (*domain.OrderItemDetail, error) {
	ctx = ctxmeta.WithScreen(ctx, ordersScreen)

	status, err := validate.ToAPIStatus(uiStatus)
	if err != nil {
		return nil, err
	}
	detail, err := s.svc.UpdateOrderFulfillment(ctx, id, domain.FulfillmentUpdate{FulfillmentStatus: status})
	if err != nil {
		s.log.Warnf(ctx, "status change failed id=%s status=%s err=%v", id, status, err)
		return nil, err
	}

	applied := status
	if detail != nil && detail.FulfillmentStatus != "" {
		applied = detail.FulfillmentStatus
	}

	s.mu.Lock()
	s.data = patchRow(s.data, id, applied)
	s.mu.Unlock()
	return detail, nil
}

// Snapshot возвращает копию текущего состояния экрана.
func (s *OrdersScreen) Snapshot() OrdersSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return OrdersSnapshot{
		State:  s.state,
		Params: s.params,
		Page:   clonePage(s.data),
		Error:  s.err,
	}
}

// patchRow возвращает новую страницу с обновлённым статусом строки id.
// Исходная страница не меняется: её могли уже отдать в снимке.
func patchRow(page *domain.OrderListPage, id string, status domain.FulfillmentStatus) *domain.OrderListPage {
	if page == nil {
		return nil
	}
	out := clonePage(page)
	for i := range out.Items {
		if out.Items[i].ID.String() == id {
			out.Items[i].FulfillmentStatus = status
		}
	}
	return out
}

func clonePage(page *domain.OrderListPage) *domain.OrderListPage {
	if page == nil {
		return nil
	}
	out := *page
	if page.Items != nil {
		out.Items = append([]domain.Order(nil), page.Items...)
	}
	return &out
}
