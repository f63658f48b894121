// Package scheduler contém os jobs agendados do assistente
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/infrastructure/repository"
	"github.com/vfg2006/creator-assistant/internal/config"
	"github.com/vfg2006/creator-assistant/pkg/utils"
)

var ErrRetentionRunning = errors.New("limpeza de histórico já está em execução")

type HistoryRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// SessionEvicter fecha as sessões em memória cujo histórico foi removido
type SessionEvicter interface {
	EvictIdle(cutoff time.Time) int
	Count() int
}

type HistoryRetentionService struct {
	scheduler           *gocron.Scheduler
	historyRepo         repository.HistoryRepository
	sessions            SessionEvicter
	config              HistoryRetentionConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeleted         int64
}

func NewHistoryRetentionService(
	historyRepo repository.HistoryRepository,
	sessions SessionEvicter,
	cfg *config.Config,
) *HistoryRetentionService {
	retentionConfig := HistoryRetentionConfig{
		CronSchedule:  cfg.HistoryRetention.CronSchedule,
		RetentionDays: cfg.HistoryRetention.Days,
		Enabled:       cfg.HistoryRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
	}).Debug("scheduler: configuração da limpeza de histórico carregada")

	return &HistoryRetentionService{
		scheduler:   gocron.NewScheduler(time.UTC),
		historyRepo: historyRepo,
		sessions:    sessions,
		config:      retentionConfig,
		now:         time.Now,
	}
}

func (s *HistoryRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("scheduler: limpeza de histórico desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando cron de limpeza de histórico")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Purge(ctx); err != nil && !errors.Is(err, ErrRetentionRunning) {
			logrus.WithError(err).Error("scheduler: erro na limpeza de histórico")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de histórico: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: parando cron de limpeza de histórico")
		s.scheduler.Stop()
	}()

	return nil
}

// Purge remove os históricos sem atividade há mais de RetentionDays dias
func (s *HistoryRetentionService) Purge(ctx context.Context) (int64, error) {
	return s.PurgeBefore(ctx, utils.DaysAgo(s.now(), s.config.RetentionDays))
}

// PurgeBefore remove os históricos atualizados antes de cutoff
func (s *HistoryRetentionService) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return 0, ErrRetentionRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	deleted, err := s.historyRepo.DeleteOlderThan(ctx, cutoff)

	evicted := 0
	if err == nil && s.sessions != nil {
		evicted = s.sessions.EvictIdle(cutoff)
	}

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	if err == nil {
		s.lastDeleted = deleted
	}
	s.syncMutex.Unlock()

	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"cutoff":           cutoff.Format(time.DateOnly),
		"deleted":          deleted,
		"evicted_sessions": evicted,
	}).Info("scheduler: limpeza de histórico concluída")

	return deleted, nil
}

// TriggerManualSync inicia a limpeza em segundo plano; false quando já há uma em andamento
func (s *HistoryRetentionService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("scheduler: limpeza de histórico já em andamento, ignorando solicitação manual")
		return false
	}

	go func() {
		if _, err := s.Purge(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, ErrRetentionRunning) {
			logrus.WithError(err).Error("scheduler: erro na limpeza manual de histórico")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *HistoryRetentionService) GetStatus() map[string]any {
	active := 0
	if s.sessions != nil {
		active = s.sessions.Count()
	}

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"active_sessions":        active,
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"running":                s.syncRunning,
		"last_deleted":           s.lastDeleted,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
