package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var historyBucket = []byte("chat_history")

// boltRecord é o valor gravado sob cada chave; UpdatedAt em milissegundos Unix
type boltRecord struct {
	Entries   []domain.TranscriptEntry `json:"entries"`
	UpdatedAt int64                    `json:"updated_at"`
}

type boltHistoryRepository struct {
	db  *bolt.DB
	now func() time.Time
}

// NewBoltHistoryRepository guarda os transcripts num bucket do BoltDB
func NewBoltHistoryRepository(db *bolt.DB) (HistoryRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(historyBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar bucket %s: %w", historyBucket, err)
	}

	return &boltHistoryRepository{
		db:  db,
		now: time.Now,
	}, nil
}

func (r *boltHistoryRepository) Load(_ context.Context, key string) ([]domain.TranscriptEntry, error) {
	var entries []domain.TranscriptEntry

	err := r.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(historyBucket).Get([]byte(key))
		if value == nil {
			return nil
		}

		// value só é válido dentro da transação
		var record boltRecord
		if err := json.Unmarshal(value, &record); err != nil {
			return fmt.Errorf("erro ao decodificar histórico %s: %w", key, err)
		}
		entries = record.Entries
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *boltHistoryRepository) Save(_ context.Context, key string, entries []domain.TranscriptEntry) error {
	value, err := json.Marshal(boltRecord{
		Entries:   entries,
		UpdatedAt: r.now().UTC().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar histórico %s: %w", key, err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(historyBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("erro ao salvar histórico %s: %w", key, err)
	}

	return nil
}

func (r *boltHistoryRepository) Clear(_ context.Context, key string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(historyBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("erro ao apagar histórico %s: %w", key, err)
	}

	return nil
}

func (r *boltHistoryRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	limit := cutoff.UTC().UnixMilli()
	var deleted int64

	err := r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(historyBucket)

		// o bucket não pode ser alterado durante o ForEach
		var expired [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var record boltRecord
			if err := json.Unmarshal(v, &record); err != nil {
				logrus.WithField("history_key", string(k)).Warn("history: registro corrompido ignorado na limpeza")
				return nil
			}
			if record.UpdatedAt < limit {
				expired = append(expired, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range expired {
			if err := bucket.Delete(k); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao limpar históricos antigos: %w", err)
	}

	return deleted, nil
}
