package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/supplier_orders/internal/dashboard"
	"github.com/Gunvolt24/supplier_orders/internal/domain"
	"github.com/Gunvolt24/supplier_orders/internal/ports"
	"github.com/Gunvolt24/supplier_orders/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const defaultMaxPageSize = 100

// Sessions - управление сессией панели (вход/выход).
type Sessions interface {
	SignIn(token string)
	SignOut()
}

type Options struct {
	// Timeout на обработку одного запроса; 0 - без таймаута.
	Timeout     time.Duration
	PageSize    int
	MaxPageSize int
}

// Handler держит экраны панели. Экраны одни на процесс, как вкладка браузера.
type Handler struct {
	service  ports.SupplierOrderService
	sessions Sessions
	log      ports.Logger

	orders    *dashboard.OrdersScreen
	detail    *dashboard.OrderDetailScreen
	analytics *dashboard.AnalyticsScreen

	timeout     time.Duration
	maxPageSize int
}

func NewHandler(service ports.SupplierOrderService, sessions Sessions, log ports.Logger, opts Options) *Handler {
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = defaultMaxPageSize
	}
	return &Handler{
		service:     service,
		sessions:    sessions,
		log:         log,
		orders:      dashboard.NewOrdersScreen(service, log, opts.PageSize),
		detail:      dashboard.NewOrderDetailScreen(service, log),
		analytics:   dashboard.NewAnalyticsScreen(service, log),
		timeout:     opts.Timeout,
		maxPageSize: opts.MaxPageSize,
	}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.timeout)
	}
	return context.WithCancel(c.Request.Context())
}

type signInRequest struct {
	Token string `json:"token"`
}

func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		badRequest(c, "token is required")
		return
	}
	h.sessions.SignIn(req.Token)
	h.log.Infof(c.Request.Context(), "session started")
	c.Status(http.StatusNoContent)
}

func (h *Handler) signOut(c *gin.Context) {
	h.sessions.SignOut()
	h.log.Infof(c.Request.Context(), "session ended")
	c.Status(http.StatusNoContent)
}

// ordersScreen применяет page/page_size/status из query и отдаёт снимок экрана.
func (h *Handler) ordersScreen(c *gin.Context) {
	page, pageSize, err := httpx.ParsePage(c, h.maxPageSize)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	params := domain.ListParams{Page: page, PageSize: pageSize, Status: c.Query("status")}
	if params.PageSize == 0 {
		params.PageSize = h.orders.Snapshot().Params.PageSize
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.orders.Apply(ctx, params); err != nil {
		h.screenError(c, err, h.orders.Snapshot())
		return
	}
	c.JSON(http.StatusOK, h.orders.Snapshot())
}

func (h *Handler) retryOrdersScreen(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.orders.Retry(ctx); err != nil {
		h.screenError(c, err, h.orders.Snapshot())
		return
	}
	c.JSON(http.StatusOK, h.orders.Snapshot())
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// changeOrderStatus - смена статуса строки из экрана списка.
func (h *Handler) changeOrderStatus(c *gin.Context) {
	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		badRequest(c, "status is required")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	detail, err := h.orders.ChangeStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		h.screenError(c, err, h.orders.Snapshot())
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": detail, "screen": h.orders.Snapshot()})
}

func (h *Handler) orderDetailScreen(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.detail.Load(ctx, c.Param("id")); err != nil {
		h.screenError(c, err, h.detail.Snapshot())
		return
	}
	c.JSON(http.StatusOK, h.detail.Snapshot())
}

func (h *Handler) analyticsScreen(c *gin.Context) {
	days, err := httpx.OptionalPositiveInt(c, "days")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.analytics.Load(ctx, days); err != nil {
		h.screenError(c, err, h.analytics.Snapshot())
		return
	}
	c.JSON(http.StatusOK, h.analytics.Snapshot())
}

func (h *Handler) listShipments(c *gin.Context) {
	page, pageSize, err := httpx.ParsePage(c, h.maxPageSize)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	out, err := h.service.GetShipments(ctx, domain.PageParams{Page: page, PageSize: pageSize})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) listReturns(c *gin.Context) {
	page, pageSize, err := httpx.ParsePage(c, h.maxPageSize)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	out, err := h.service.GetReturns(ctx, domain.PageParams{Page: page, PageSize: pageSize})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	c.JSON(status, body)
}

// screenError отдаёт ошибку вместе со снимком экрана, чтобы клиент мог
// показать сообщение и предложить повтор.
func (h *Handler) screenError(c *gin.Context, err error, snapshot any) {
	status, body := errorResponse(err)
	body["screen"] = snapshot
	c.JSON(status, body)
}
