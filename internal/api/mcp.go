package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting"
)

const (
	MCPServerName    = "creator-assistant"
	MCPServerVersion = "1.0.0"

	OverviewResourceURI = "creator://overview"
)

// creatorOverview é o conteúdo do recurso creator://overview
type creatorOverview struct {
	Creator         domain.CreatorInfo     `json:"creator"`
	Overview        domain.Overview        `json:"overview"`
	RecentAnalytics domain.RecentAnalytics `json:"recentAnalytics"`
	TopSearches     []domain.SearchTerm    `json:"topSearches"`
}

// NewMCPServer registra as ferramentas e recursos do assistente num servidor MCP
func NewMCPServer(assistant assisting.Assistant) *server.MCPServer {
	s := server.NewMCPServer(
		MCPServerName,
		MCPServerVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("Answers questions about a creator's products, followers, earnings and posts."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("ask_creator_assistant",
			mcp.WithDescription("Ask a question about the creator's business metrics and get a formatted answer."),
			mcp.WithString("question", mcp.Description("Free-text question, e.g. \"What are my earnings?\""), mcp.Required()),
		),
		mcpAsk(assistant),
	)

	s.AddTool(
		mcp.NewTool("list_quick_actions",
			mcp.WithDescription("List the canned prompts the assistant answers best."),
		),
		mcpQuickActions(assistant),
	)

	s.AddResource(
		mcp.NewResource(
			OverviewResourceURI,
			"Creator Overview",
			mcp.WithResourceDescription("Creator profile, lifetime totals, last 30 days analytics and top searches"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceOverview(assistant),
	)

	return s
}

func mcpAsk(assistant assisting.Assistant) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, err := req.RequireString("question")
		if err != nil || strings.TrimSpace(question) == "" {
			return mcp.NewToolResultError("question is required"), nil
		}

		reply := assistant.Answer(question)
		logrus.WithField("intent", reply.Intent).Debug("mcp: pergunta respondida")

		return mcp.NewToolResultText(reply.Text), nil
	}
}

func mcpQuickActions(assistant assisting.Assistant) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := json.Marshal(assistant.QuickActions())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal quick actions: %v", err)), nil
		}

		return mcp.NewToolResultText(string(b)), nil
	}
}

func mcpResourceOverview(assistant assisting.Assistant) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ds := assistant.Dataset()
		if ds == nil {
			return nil, assisting.ErrEmptyDataset
		}

		b, err := json.Marshal(creatorOverview{
			Creator:         ds.Creator,
			Overview:        ds.Overview,
			RecentAnalytics: ds.RecentAnalytics,
			TopSearches:     ds.TopSearches,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar overview: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}
