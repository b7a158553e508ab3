package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/siac-ventas-api/pkg/config"
	"github.com/jhoicas/siac-ventas-api/pkg/logger"
)

// Scheduler programa los jobs con precisión de segundos.
type Scheduler struct {
	cron *cron.Cron
	jobs *JobRunner
	log  *logger.Logger
}

// NewScheduler crea el scheduler en la zona horaria configurada y registra los jobs.
func NewScheduler(cfg config.SchedulerConfig, runner *JobRunner, log *logger.Logger) (*Scheduler, error) {
	if log == nil {
		log = logger.Nop()
	}
	loc := time.UTC
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("zona horaria %q: %w", cfg.Timezone, err)
		}
		loc = l
	}
	s := &Scheduler{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		jobs: runner,
		log:  log.Component("scheduler"),
	}
	if _, err := s.cron.AddFunc(cfg.DailySummaryCron, s.jobs.ReportDailySummary); err != nil {
		return nil, fmt.Errorf("registrar ReportDailySummary (%q): %w", cfg.DailySummaryCron, err)
	}
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("jobs registrados")
	return s, nil
}

// Start inicia el scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler iniciado")
}

// Stop detiene el scheduler y espera a que terminen los jobs en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}

// Entries número de jobs registrados.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
