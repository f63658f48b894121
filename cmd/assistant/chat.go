package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/creator-assistant/internal/config"
	"github.com/vfg2006/creator-assistant/internal/reveal"
	"github.com/vfg2006/creator-assistant/internal/tui"
	"github.com/vfg2006/creator-assistant/internal/usecases/chatting"
	"github.com/vfg2006/creator-assistant/pkg/log"
)

func newChatCmd(a *app) *cobra.Command {
	var (
		store   string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the terminal chat",
		Long: `Opens the full-screen chat. The conversation is saved under HISTORY_KEY and
restored on the next run; ctrl+l clears it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := a.cfg

			// os logs sujariam a tela cheia
			log.Redirect(io.Discard)
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				log.Redirect(f)
			}

			history, closeHistory, err := openHistory(ctx, cfg, store)
			if err != nil {
				return err
			}
			defer closeHistory()

			session := chatting.NewSession("", chatting.HistoryKey(cfg.History.Key, ""), history, a.assistant)
			if err := session.Load(ctx); err != nil {
				return err
			}

			return tui.Run(ctx, tui.Options{
				Session:         session,
				QuickActions:    a.assistant.QuickActions(),
				UserDisplayName: cfg.Chat.UserDisplayName,
				ResponseDelay:   cfg.Reveal.ResponseDelay(),
				Reveal: reveal.Options{
					CharDelay:     cfg.Reveal.CharDelay(),
					LineDelay:     cfg.Reveal.LineDelay(),
					LongThreshold: cfg.Reveal.LongThreshold,
				},
			})
		},
	}

	cmd.Flags().StringVar(&store, "store", config.HistoryStoreSQLite, "history store: memory, sqlite, postgres or bolt")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the chat is open")

	return cmd
}
