package dashboard

import (
	"context"

	"github.com/Gunvolt24/supplier_orders/internal/domain"
	"github.com/Gunvolt24/supplier_orders/internal/ports"
	"github.com/Gunvolt24/supplier_orders/pkg/ctxmeta"
)

type OrderDetailSnapshot struct {
	State  State                   `json:"state"`
	ID     string                  `json:"id,omitempty"`
	Detail *domain.OrderItemDetail `json:"detail,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

// OrderDetailScreen - карточка позиции заказа. При ошибке карточка очищается.
type OrderDetailScreen struct {
	svc ports.SupplierOrderService
	log ports.Logger

	*loader[*domain.OrderItemDetail]
	id string
}

func NewOrderDetailScreen(svc ports.SupplierOrderService, log ports.Logger) *OrderDetailScreen {
	return &OrderDetailScreen{
		svc:    svc,
		log:    log,
		loader: newLoader[*domain.OrderItemDetail](false),
	}
}

func (s *OrderDetailScreen) Load(ctx context.Context, id string) error {
	s.mu.Lock()
	if id != s.id {
		var zero *domain.OrderItemDetail
		s.data = zero
	}
	s.id = id
	s.mu.Unlock()
	return s.load(ctx)
}

func (s *OrderDetailScreen) Retry(ctx context.Context) error {
	return s.load(ctx)
}

func (s *OrderDetailScreen) load(ctx context.Context) error {
	s.mu.Lock()
	seq := s.begin()
	id := s.id
	s.mu.Unlock()

	ctx = ctxmeta.WithScreen(ctx, "order_detail")
	detail, err := s.svc.GetOrderItem(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.finish(seq, detail, err) {
		s.log.Debugf(ctx, "stale detail response dropped id=%s seq=%d", id, seq)
		return nil
	}
	return err
}

func (s *OrderDetailScreen) Snapshot() OrderDetailSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var detail *domain.OrderItemDetail
	if s.data != nil {
		d := *s.data
		detail = &d
	}
	return OrderDetailSnapshot{State: s.state, ID: s.id, Detail: detail, Error: s.err}
}
