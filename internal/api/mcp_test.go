package api

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-assistant/internal/dataset"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting/mocks"
	"go.uber.org/mock/gomock"
)

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "conteúdo inesperado: %T", result.Content[0])
	return tc.Text
}

func TestMCPAsk(t *testing.T) {
	handler := mcpAsk(assisting.NewService(dataset.Sample()))

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		contains  string
	}{
		{
			name:     "pergunta sobre ganhos",
			args:     map[string]any{"question": "What are my earnings?"},
			contains: "$6,850.58",
		},
		{
			name:     "pergunta desconhecida responde com ajuda",
			args:     map[string]any{"question": "hello"},
			contains: "What should I focus on?",
		},
		{
			name:      "sem pergunta",
			args:      map[string]any{},
			wantError: true,
		},
		{
			name:      "pergunta em branco",
			args:      map[string]any{"question": "  "},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handler(context.Background(), callTool("ask_creator_assistant", tt.args))
			require.NoError(t, err)
			assert.Equal(t, tt.wantError, result.IsError)

			if tt.contains != "" {
				assert.Contains(t, toolText(t, result), tt.contains)
			}
		})
	}
}

func TestMCPQuickActions(t *testing.T) {
	handler := mcpQuickActions(assisting.NewService(dataset.Sample()))

	result, err := handler(context.Background(), callTool("list_quick_actions", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var actions []domain.QuickAction
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &actions))
	assert.Equal(t, assisting.QuickActions(), actions)
}

func TestMCPResourceOverview(t *testing.T) {
	ds := dataset.Sample()
	handler := mcpResourceOverview(assisting.NewService(ds))

	contents, err := handler(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: OverviewResourceURI},
	})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, OverviewResourceURI, text.URI)
	assert.Equal(t, "application/json", text.MIMEType)

	var got creatorOverview
	require.NoError(t, json.Unmarshal([]byte(text.Text), &got))
	assert.Equal(t, ds.Creator, got.Creator)
	assert.Equal(t, ds.RecentAnalytics, got.RecentAnalytics)
	assert.Equal(t, ds.TopSearches, got.TopSearches)
}

func TestMCPResourceOverview_NoDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	assistant := mocks.NewMockAssistant(ctrl)
	assistant.EXPECT().Dataset().Return(nil)

	_, err := mcpResourceOverview(assistant)(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: OverviewResourceURI},
	})
	assert.ErrorIs(t, err, assisting.ErrEmptyDataset)
}

func TestNewMCPServer(t *testing.T) {
	s := NewMCPServer(assisting.NewService(dataset.Sample()))

	tools := s.ListTools()
	assert.Contains(t, tools, "ask_creator_assistant")
	assert.Contains(t, tools, "list_quick_actions")
}
