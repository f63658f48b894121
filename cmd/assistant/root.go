package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/creator-assistant/internal/config"
	"github.com/vfg2006/creator-assistant/internal/dataset"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting"
	"github.com/vfg2006/creator-assistant/pkg/log"
)

// app guarda o que todos os subcomandos compartilham, carregado no PersistentPreRunE
type app struct {
	cfg       *config.Config
	assistant assisting.Assistant
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "assistant",
		Short: "Creator business assistant",
		Long: `Answers questions about a creator's products, followers, earnings and posts.

Run "assistant chat" for the terminal chat, "assistant serve" for the HTTP API,
"assistant ask" for a single question or "assistant mcp" to expose the assistant
to MCP clients over stdio.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	root.AddCommand(
		newServeCmd(a),
		newChatCmd(a),
		newAskCmd(a),
		newMCPCmd(a),
		newMigrateCmd(a),
	)

	return root
}

func (a *app) load() error {
	if a.cfg == nil {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	if err := log.Configure(a.cfg.App.LogLevel, a.cfg.App.IsDevelopment()); err != nil {
		log.L.Warnf("assistant: nível de log inválido %q, usando o atual", a.cfg.App.LogLevel)
	}

	if a.assistant == nil {
		ds, err := dataset.Load(a.cfg.Dataset.File)
		if err != nil {
			return err
		}
		a.assistant = assisting.NewService(ds)
	}

	return nil
}
