package dashboard

import (
	"context"

	"github.com/Gunvolt24/supplier_orders/internal/domain"
	"github.com/Gunvolt24/supplier_orders/internal/ports"
	"github.com/Gunvolt24/supplier_orders/pkg/ctxmeta"
)

type AnalyticsSnapshot struct {
	State   State                   `json:"state"`
	Days    int                     `json:"days"`
	Summary domain.AnalyticsSummary `json:"summary,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// AnalyticsScreen - сводка по заказам за выбранный период.
type AnalyticsScreen struct {
	svc ports.SupplierOrderService
	log ports.Logger

	*loader[domain.AnalyticsSummary]
	days int
}

func NewAnalyticsScreen(svc ports.SupplierOrderService, log ports.Logger) *AnalyticsScreen {
	return &AnalyticsScreen{
		svc:    svc,
		log:    log,
		loader: newLoader[domain.AnalyticsSummary](false),
	}
}

// Load загружает сводку; days <= 0 означает период по умолчанию.
func (s *AnalyticsScreen) Load(ctx context.Context, days int) error {
	s.mu.Lock()
	s.days = days
	s.mu.Unlock()
	return s.load(ctx)
}

func (s *AnalyticsScreen) Retry(ctx context.Context) error {
	return s.load(ctx)
}

func (s *AnalyticsScreen) load(ctx context.Context) error {
	s.mu.Lock()
	seq := s.begin()
	days := s.days
	s.mu.Unlock()

	ctx = ctxmeta.WithScreen(ctx, "analytics")
	summary, err := s.svc.GetOrderAnalytics(ctx, days)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.finish(seq, summary, err) {
		s.log.Debugf(ctx, "stale analytics response dropped days=%d seq=%d", days, seq)
		return nil
	}
	return err
}

func (s *AnalyticsScreen) Snapshot() AnalyticsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary domain.AnalyticsSummary
	if s.data != nil {
		summary = make(domain.AnalyticsSummary, len(s.data))
		for k, v := range s.data {
			summary[k] = v
		}
	}
	return AnalyticsSnapshot{State: s.state, Days: s.days, Summary: summary, Error: s.err}
}
