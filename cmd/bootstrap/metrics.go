package bootstrap

import (
	"venue-booking/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		metrics.NewRecorder,
		metrics.NewHTTPMetrics,
	),
)
