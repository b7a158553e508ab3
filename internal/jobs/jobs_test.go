package jobs

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/siac-ventas-api/internal/application/summary"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/pkg/config"
)

type fakeSource struct {
	rep   *summary.Report
	err   error
	calls int
}

func (f *fakeSource) GlobalReport(day time.Time) (*summary.Report, error) {
	f.calls++
	return f.rep, f.err
}

func (f *fakeSource) Today() time.Time { return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC) }

func TestReportDailySummary_ActualizaGauge(t *testing.T) {
	src := &fakeSource{rep: &summary.Report{
		Day:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Total: 3,
		ByStatus: map[entity.SaleStatus]int{
			entity.StatusPending:   2,
			entity.StatusCancelled: 1,
			entity.StatusPosted:    0,
		},
		Revenue: decimal.RequireFromString("798"),
	}}
	NewJobRunner(src, nil).ReportDailySummary()

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, 2.0, testutil.ToFloat64(salesByStatus.WithLabelValues(string(entity.StatusPending))))
	assert.Equal(t, 1.0, testutil.ToFloat64(salesByStatus.WithLabelValues(string(entity.StatusCancelled))))
	assert.Equal(t, 0.0, testutil.ToFloat64(salesByStatus.WithLabelValues(string(entity.StatusPosted))))
}

func TestReportDailySummary_ErrorNoPanica(t *testing.T) {
	src := &fakeSource{err: errors.New("store caído")}
	assert.NotPanics(t, NewJobRunner(src, nil).ReportDailySummary)
}

func TestNewScheduler(t *testing.T) {
	runner := NewJobRunner(&fakeSource{}, nil)

	s, err := NewScheduler(config.SchedulerConfig{DailySummaryCron: "0 0 20 * * *", Timezone: "UTC"}, runner, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Entries())
	s.Start()
	s.Stop()

	_, err = NewScheduler(config.SchedulerConfig{DailySummaryCron: "0 20 * * *"}, runner, nil)
	assert.Error(t, err, "sin campo de segundos")

	_, err = NewScheduler(config.SchedulerConfig{DailySummaryCron: "0 0 20 * * *", Timezone: "Marte/Olympus"}, runner, nil)
	assert.Error(t, err)
}
