package repository

//go:generate mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/infrastructure/database"
	"github.com/vfg2006/creator-assistant/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const historyTable = "chat_history"

// HistoryRepository persiste o transcript de cada conversa sob uma chave.
// Save sobrescreve o transcript inteiro; Load de uma chave inexistente retorna nil sem erro.
type HistoryRepository interface {
	Load(ctx context.Context, key string) ([]domain.TranscriptEntry, error)
	Save(ctx context.Context, key string, entries []domain.TranscriptEntry) error
	Clear(ctx context.Context, key string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type historyRepository struct {
	db          database.Queryer
	placeholder squirrel.PlaceholderFormat
	now         func() time.Time
}

// NewHistoryRepository cria o repositório SQL; o dialeto define o formato dos placeholders
func NewHistoryRepository(db database.Queryer, dialect database.Dialect) HistoryRepository {
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	if dialect == database.DialectPostgres {
		placeholder = squirrel.Dollar
	}

	return &historyRepository{
		db:          db,
		placeholder: placeholder,
		now:         time.Now,
	}
}

// EnsureHistorySchema cria a tabela do histórico quando ainda não existe.
// updated_at guarda milissegundos Unix em UTC para comparar igual nos dois bancos.
func EnsureHistorySchema(ctx context.Context, db database.Queryer) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+historyTable+` (
		history_key TEXT PRIMARY KEY,
		entries     TEXT NOT NULL,
		updated_at  BIGINT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", historyTable, err)
	}

	_, err = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_chat_history_updated_at ON `+historyTable+` (updated_at)`)
	if err != nil {
		return fmt.Errorf("erro ao criar índice de %s: %w", historyTable, err)
	}

	return nil
}

func (r *historyRepository) Load(ctx context.Context, key string) ([]domain.TranscriptEntry, error) {
	query, args, err := squirrel.
		Select("entries").
		From(historyTable).
		Where(squirrel.Eq{"history_key": key}).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return nil, err
	}

	var payload string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao carregar histórico %s: %w", key, err)
	}

	var entries []domain.TranscriptEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, fmt.Errorf("erro ao decodificar histórico %s: %w", key, err)
	}

	return entries, nil
}

func (r *historyRepository) Save(ctx context.Context, key string, entries []domain.TranscriptEntry) error {
	if entries == nil {
		entries = []domain.TranscriptEntry{}
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("erro ao serializar histórico %s: %w", key, err)
	}

	query, args, err := squirrel.
		Insert(historyTable).
		Columns("history_key", "entries", "updated_at").
		Values(key, string(payload), r.now().UTC().UnixMilli()).
		Suffix("ON CONFLICT (history_key) DO UPDATE SET entries = EXCLUDED.entries, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar histórico %s: %w", key, err)
	}

	return nil
}

func (r *historyRepository) Clear(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Delete(historyTable).
		Where(squirrel.Eq{"history_key": key}).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao apagar histórico %s: %w", key, err)
	}

	return nil
}

func (r *historyRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(historyTable).
		Where(squirrel.Lt{"updated_at": cutoff.UTC().UnixMilli()}).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover históricos antigos: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"cutoff":  cutoff.UTC().Format(time.RFC3339),
		"deleted": deleted,
	}).Debug("repository: históricos antigos removidos")

	return deleted, nil
}
