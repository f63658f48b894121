package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/infrastructure/database"
	"github.com/vfg2006/creator-assistant/infrastructure/database/bolt"
	"github.com/vfg2006/creator-assistant/infrastructure/database/postgres"
	"github.com/vfg2006/creator-assistant/infrastructure/database/sqlite"
	"github.com/vfg2006/creator-assistant/infrastructure/repository"
	"github.com/vfg2006/creator-assistant/internal/config"
)

// openHistory abre o armazenamento de transcripts escolhido; close libera a conexão
func openHistory(ctx context.Context, cfg *config.Config, store string) (repository.HistoryRepository, func() error, error) {
	noop := func() error { return nil }

	switch store {
	case config.HistoryStoreMemory:
		return repository.NewMemoryHistoryRepository(), noop, nil

	case config.HistoryStorePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.EnsureHistorySchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		logrus.Info("history: usando postgres")
		return repository.NewHistoryRepository(conn, database.DialectPostgres), conn.Close, nil

	case config.HistoryStoreSQLite:
		conn, err := sqlite.NewConnection(ctx, cfg.History.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.EnsureHistorySchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		logrus.WithField("path", cfg.History.SQLitePath).Info("history: usando sqlite")
		return repository.NewHistoryRepository(conn, database.DialectSQLite), conn.Close, nil

	case config.HistoryStoreBolt:
		db, err := bolt.NewConnection(cfg.History.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		history, err := repository.NewBoltHistoryRepository(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		logrus.WithField("path", cfg.History.BoltPath).Info("history: usando bolt")
		return history, db.Close, nil
	}

	return nil, nil, fmt.Errorf("armazenamento de histórico desconhecido: %q", store)
}
