package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-assistant/infrastructure/repository"
	"github.com/vfg2006/creator-assistant/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-assistant/internal/config"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"go.uber.org/mock/gomock"
)

type fakeEvicter struct {
	cutoffs []time.Time
	evicted int
}

func (f *fakeEvicter) EvictIdle(cutoff time.Time) int {
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.evicted
}

func (f *fakeEvicter) Count() int { return 3 }

func retentionConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		HistoryRetention: config.HistoryRetention{
			CronSchedule: cron,
			Days:         30,
			Enabled:      enabled,
		},
	}
}

func TestHistoryRetentionService_Purge(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 10, 19, 4, 0, 0, 0, time.UTC)
	entries := []domain.TranscriptEntry{{Role: domain.RoleAssistant, Text: "hi"}}

	tests := []struct {
		name     string
		setup    func(ctrl *gomock.Controller) repository.HistoryRepository
		validate func(t *testing.T, deleted int64, err error, evicter *fakeEvicter, service *HistoryRetentionService)
	}{
		{
			name: "remove apenas históricos antigos",
			setup: func(ctrl *gomock.Controller) repository.HistoryRepository {
				repo := repository.NewMemoryHistoryRepository()
				// o repositório em memória marca o horário real de gravação
				require.NoError(t, repo.Save(ctx, "chatHistory:recent", entries))
				return repo
			},
			validate: func(t *testing.T, deleted int64, err error, evicter *fakeEvicter, service *HistoryRetentionService) {
				require.NoError(t, err)
				assert.Equal(t, int64(0), deleted)
				require.Len(t, evicter.cutoffs, 1)
				assert.Equal(t, now.AddDate(0, 0, -30), evicter.cutoffs[0])
			},
		},
		{
			name: "usa o corte de RetentionDays",
			setup: func(ctrl *gomock.Controller) repository.HistoryRepository {
				repo := mocks.NewMockHistoryRepository(ctrl)
				repo.EXPECT().
					DeleteOlderThan(gomock.Any(), now.AddDate(0, 0, -30)).
					Return(int64(4), nil)
				return repo
			},
			validate: func(t *testing.T, deleted int64, err error, evicter *fakeEvicter, service *HistoryRetentionService) {
				require.NoError(t, err)
				assert.Equal(t, int64(4), deleted)
				status := service.GetStatus()
				assert.Equal(t, int64(4), status["last_deleted"])
				assert.Equal(t, false, status["running"])
				assert.Equal(t, 3, status["active_sessions"])
			},
		},
		{
			name: "erro do repositório não fecha sessões",
			setup: func(ctrl *gomock.Controller) repository.HistoryRepository {
				repo := mocks.NewMockHistoryRepository(ctrl)
				repo.EXPECT().
					DeleteOlderThan(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("db offline"))
				return repo
			},
			validate: func(t *testing.T, deleted int64, err error, evicter *fakeEvicter, service *HistoryRetentionService) {
				assert.EqualError(t, err, "db offline")
				assert.Empty(t, evicter.cutoffs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			evicter := &fakeEvicter{}
			service := NewHistoryRetentionService(tt.setup(ctrl), evicter, retentionConfig(true, "0 4 * * *"))
			service.now = func() time.Time { return now }

			deleted, err := service.Purge(ctx)
			tt.validate(t, deleted, err, evicter, service)
		})
	}
}

func TestHistoryRetentionService_PurgeWhileRunning(t *testing.T) {
	service := NewHistoryRetentionService(repository.NewMemoryHistoryRepository(), nil, retentionConfig(true, "0 4 * * *"))
	service.syncRunning = true

	_, err := service.PurgeBefore(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrRetentionRunning)
	assert.False(t, service.TriggerManualSync(context.Background()))
}

func TestHistoryRetentionService_Start(t *testing.T) {
	t.Run("desabilitado não agenda", func(t *testing.T) {
		service := NewHistoryRetentionService(repository.NewMemoryHistoryRepository(), nil, retentionConfig(false, "invalid"))
		assert.NoError(t, service.Start(context.Background()))
		assert.False(t, service.scheduler.IsRunning())
	})

	t.Run("cron inválido", func(t *testing.T) {
		service := NewHistoryRetentionService(repository.NewMemoryHistoryRepository(), nil, retentionConfig(true, "not a cron"))
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("para junto com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := NewHistoryRetentionService(repository.NewMemoryHistoryRepository(), nil, retentionConfig(true, "0 4 * * *"))

		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, 2*time.Second, 10*time.Millisecond)
	})
}
