package main

import (
	"context"
	"errors"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/creator-assistant/internal/api"
	"github.com/vfg2006/creator-assistant/pkg/log"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the assistant to MCP clients over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout pertence ao protocolo
			log.Redirect(os.Stderr)

			stdio := server.NewStdioServer(api.NewMCPServer(a.assistant))

			logrus.Info("mcp: servidor iniciado (stdio)")
			err := stdio.Listen(cmd.Context(), os.Stdin, os.Stdout)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
