package main

import (
	"context"
	"fmt"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/creator-assistant/infrastructure/repository"
	"github.com/vfg2006/creator-assistant/internal/config"
	"github.com/vfg2006/creator-assistant/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newMigrateCmd(a *app) *cobra.Command {
	var (
		store      string
		importFile string
		key        string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the history table and optionally import saved transcripts",
		Long: `Creates the chat_history table in the chosen store. With --import, loads
transcripts from a JSON file: either a single array of {role, text, timestamp}
entries, saved under --key, or an object mapping keys to such arrays.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			history, closeHistory, err := openHistory(ctx, a.cfg, store)
			if err != nil {
				return err
			}
			defer closeHistory()

			if importFile == "" {
				logrus.WithField("store", store).Info("migrate: tabela de histórico pronta")
				return nil
			}

			if key == "" {
				key = a.cfg.History.Key
			}

			imported, err := importTranscripts(ctx, history, importFile, key)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d transcript(s) imported\n", imported)
			return nil
		},
	}

	cmd.Flags().StringVar(&store, "store", config.HistoryStoreSQLite, "history store: sqlite, postgres or bolt")
	cmd.Flags().StringVar(&importFile, "import", "", "JSON file with transcripts to import")
	cmd.Flags().StringVar(&key, "key", "", "key for a single imported transcript (default HISTORY_KEY)")

	return cmd
}

// parseTranscripts aceita um array de mensagens ou um objeto chave → mensagens
func parseTranscripts(data []byte, key string) (map[string][]domain.TranscriptEntry, error) {
	var entries []domain.TranscriptEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		return map[string][]domain.TranscriptEntry{key: entries}, nil
	}

	var byKey map[string][]domain.TranscriptEntry
	if err := json.Unmarshal(data, &byKey); err != nil {
		return nil, fmt.Errorf("erro ao interpretar transcripts: %w", err)
	}

	return byKey, nil
}

func importTranscripts(ctx context.Context, history repository.HistoryRepository, path, key string) (int, error) {
	logrus.WithField("file", path).Info("migrate: iniciando importação de transcripts")
	startTime := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	transcripts, err := parseTranscripts(data, key)
	if err != nil {
		return 0, err
	}

	successCount := 0
	errorCount := 0
	for k, entries := range transcripts {
		if len(entries) == 0 {
			continue
		}
		if err := history.Save(ctx, k, entries); err != nil {
			logrus.WithError(err).WithField("history_key", k).Error("migrate: erro ao importar transcript")
			errorCount++
			continue
		}
		successCount++
	}

	logrus.WithFields(logrus.Fields{
		"elapsed": time.Since(startTime).String(),
		"success": successCount,
		"errors":  errorCount,
	}).Info("migrate: importação concluída")

	if errorCount > 0 {
		return successCount, fmt.Errorf("%d transcript(s) não puderam ser importados", errorCount)
	}

	return successCount, nil
}
