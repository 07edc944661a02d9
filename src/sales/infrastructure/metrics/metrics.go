package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del workflow de ventas. Se registran en el registry global
// y se exponen vía /metrics cuando PROMETHEUS_ENABLED=true.
var (
	SalesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firmeza_sales_created_total",
		Help: "Ventas registradas exitosamente",
	})

	SalesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "firmeza_sales_rejected_total",
		Help: "Ventas rechazadas, por motivo",
	}, []string{"reason"})

	SalesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firmeza_sales_deleted_total",
		Help: "Ventas anuladas",
	})

	SaleAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "firmeza_sale_total_amount",
		Help:    "Distribución del total de cada venta",
		Buckets: prometheus.ExponentialBuckets(10000, 4, 8),
	})
)
