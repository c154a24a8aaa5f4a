package handler

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves the Prometheus registry in text format.
type MetricsHandler struct {
	handler fiber.Handler
}

func NewMetricsHandler(gatherer prometheus.Gatherer) *MetricsHandler {
	return &MetricsHandler{
		handler: adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})),
	}
}

func (h *MetricsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/metrics", h.GetMetrics)
}

func (h *MetricsHandler) GetMetrics(ctx *fiber.Ctx) error {
	return h.handler(ctx)
}
