package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/creator-assistant/internal/api"
	"github.com/vfg2006/creator-assistant/internal/reveal"
	"github.com/vfg2006/creator-assistant/internal/scheduler"
	"github.com/vfg2006/creator-assistant/internal/usecases/chatting"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := a.cfg

			history, closeHistory, err := openHistory(ctx, cfg, cfg.History.Store)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeHistory(); err != nil {
					logrus.WithError(err).Warn("serve: erro ao fechar histórico")
				}
			}()

			manager := chatting.NewManager(history, a.assistant, chatting.ManagerOptions{
				HistoryKey: cfg.History.Key,
				Reveal: reveal.Options{
					CharDelay:     cfg.Reveal.CharDelay(),
					LineDelay:     cfg.Reveal.LineDelay(),
					LongThreshold: cfg.Reveal.LongThreshold,
				},
			})

			retention := scheduler.NewHistoryRetentionService(history, manager, cfg)

			server, err := api.New(cfg, a.assistant, manager, retention)
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				if err := retention.Start(ctx); err != nil {
					return err
				}
				<-ctx.Done()
				return nil
			})

			g.Go(func() error {
				return server.Run(ctx)
			})

			return g.Wait()
		},
	}
}
