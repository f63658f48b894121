package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(SetupTestLogger)

	require.NoError(t, Configure("warn", false))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.False(t, IsDevelopment())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	assert.Error(t, Configure("verbose", true))
}

func TestWithFields_DevelopmentFiltering(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(func() {
		hook.Reset()
		SetupTestLogger()
	})

	require.NoError(t, Configure("debug", true))

	L.WithFields(Fields{
		"session_id": "abc",
		"intent":     "earnings",
		"payload":    "ruído",
	}).Info("chat: mensagem enviada")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "abc", entry.Data["session_id"])
	assert.Equal(t, "earnings", entry.Data["intent"])
	assert.NotContains(t, entry.Data, "payload")

	require.NoError(t, Configure("debug", false))
	L.WithField("payload", "mantido").Info("produção")
	assert.Equal(t, "mantido", hook.LastEntry().Data["payload"])
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	var buf bytes.Buffer
	Redirect(&buf)
	t.Cleanup(func() {
		Redirect(os.Stderr)
		SetupTestLogger()
	})
	require.NoError(t, Configure("info", false))

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("session_id", "abc").Info("chat: sessão criada")

	assert.Contains(t, buf.String(), `"correlation_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"session_id":"abc"`)

	buf.Reset()
	ForContext(context.Background()).Info("sem correlação")
	assert.NotContains(t, buf.String(), "correlation_id")
}
