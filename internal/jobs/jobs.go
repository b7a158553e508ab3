package jobs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/siac-ventas-api/internal/application/summary"
	"github.com/jhoicas/siac-ventas-api/pkg/logger"
)

var salesByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "siac_sales_by_status",
	Help: "Ventas capturadas hoy por estado (actualizado por el job de resumen diario).",
}, []string{"status"})

// ReportSource origen del reporte global del día.
type ReportSource interface {
	GlobalReport(day time.Time) (*summary.Report, error)
	Today() time.Time
}

// JobRunner agrupa los jobs programados del portal.
type JobRunner struct {
	summary ReportSource
	log     *logger.Logger
	gauge   *prometheus.GaugeVec
}

// NewJobRunner construye el runner. log nil descarta la salida.
func NewJobRunner(src ReportSource, log *logger.Logger) *JobRunner {
	if log == nil {
		log = logger.Nop()
	}
	return &JobRunner{summary: src, log: log.Component("jobs"), gauge: salesByStatus}
}

// ReportDailySummary registra el resumen global de hoy y actualiza el gauge por estado.
func (r *JobRunner) ReportDailySummary() {
	day := r.summary.Today()
	rep, err := r.summary.GlobalReport(day)
	if err != nil {
		r.log.Error().Err(err).Msg("no se pudo generar el resumen diario")
		return
	}
	ev := r.log.Info().
		Str("fecha", rep.Day.Format("2006-01-02")).
		Int("total", rep.Total).
		Str("ingreso_estimado", rep.Revenue.StringFixed(2))
	for status, n := range rep.ByStatus {
		r.gauge.WithLabelValues(string(status)).Set(float64(n))
		ev = ev.Int(string(status), n)
	}
	ev.Msg("resumen de ventas del día")
}
