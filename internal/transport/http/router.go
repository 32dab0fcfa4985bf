package rest

import (
	"net/http"

	"github.com/Gunvolt24/supplier_orders/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter собирает gin-роутер панели. serviceName != "" включает otelgin.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/session", h.signIn)
	r.DELETE("/session", h.signOut)

	screens := r.Group("/screens")
	screens.GET("/orders", h.ordersScreen)
	screens.POST("/orders/retry", h.retryOrdersScreen)
	screens.PUT("/orders/:id/status", h.changeOrderStatus)
	screens.GET("/orders/:id", h.orderDetailScreen)
	screens.GET("/analytics", h.analyticsScreen)

	r.GET("/shipments", h.listShipments)
	r.GET("/returns", h.listReturns)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}
