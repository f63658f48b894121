package reveal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func collect(t *testing.T, frames <-chan Frame) []Frame {
	t.Helper()

	var out []Frame
	timeout := time.After(5 * time.Second)
	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				return out
			}
			out = append(out, frame)
		case <-timeout:
			t.Fatal("revelação não terminou")
			return out
		}
	}
}

func finalFrames(frames []Frame) int {
	count := 0
	for _, frame := range frames {
		if frame.Done {
			count++
		}
	}
	return count
}

func TestController_NaturalCompletion(t *testing.T) {
	ctrl := NewController(Options{CharDelay: time.Millisecond})
	suggestions := []domain.QuickAction{{Label: "Earnings", Prompt: "What are my earnings?"}}

	frames := collect(t, ctrl.Start(context.Background(), Request{
		Text:        "Hi **there**",
		Anchor:      4,
		Suggestions: suggestions,
	}))

	require.NotEmpty(t, frames)
	assert.Equal(t, 1, finalFrames(frames))

	last := frames[len(frames)-1]
	assert.True(t, last.Done)
	assert.False(t, last.Cancelled)
	assert.Equal(t, "Hi **there**", last.Text)
	assert.Equal(t, Disclaimer, last.Disclaimer)
	assert.Equal(t, suggestions, last.Suggestions)

	for i, frame := range frames {
		assert.Equal(t, 4, frame.Anchor)
		assert.Equal(t, i+1, frame.Step)
		if !frame.Done {
			assert.Empty(t, frame.Disclaimer)
			assert.Nil(t, frame.Suggestions)
		}
	}

	assert.Equal(t, StateIdle, ctrl.State())
	assert.True(t, ctrl.InputEnabled())
}

func TestController_StopRevealsFullText(t *testing.T) {
	ctrl := NewController(Options{CharDelay: time.Hour})
	text := "💰 **Your Earnings**\n\nYou earned **$6,850.58** this month!"

	frames := ctrl.Start(context.Background(), Request{Text: text})
	assert.Equal(t, StateTyping, ctrl.State())
	assert.False(t, ctrl.InputEnabled())

	assert.True(t, ctrl.Stop())
	assert.Equal(t, StateIdle, ctrl.State())
	assert.True(t, ctrl.InputEnabled())

	got := collect(t, frames)
	require.Len(t, got, 1)
	assert.True(t, got[0].Done)
	assert.True(t, got[0].Cancelled)
	assert.Equal(t, text, got[0].Text)
	assert.Equal(t, Disclaimer, got[0].Disclaimer)

	assert.False(t, ctrl.Stop())
}

func TestController_StartFlushesActiveReveal(t *testing.T) {
	ctrl := NewController(Options{CharDelay: time.Hour})

	first := ctrl.Start(context.Background(), Request{Text: "first answer"})
	second := ctrl.Start(context.Background(), Request{Text: "second answer"})

	firstFrames := collect(t, first)
	require.Len(t, firstFrames, 1)
	assert.Equal(t, "first answer", firstFrames[0].Text)
	assert.True(t, firstFrames[0].Cancelled)

	assert.Equal(t, StateTyping, ctrl.State())
	require.True(t, ctrl.Stop())

	secondFrames := collect(t, second)
	require.Len(t, secondFrames, 1)
	assert.Equal(t, "second answer", secondFrames[0].Text)
}

func TestController_InstantRequest(t *testing.T) {
	ctrl := NewController(Options{CharDelay: time.Hour})

	frames := collect(t, ctrl.Start(context.Background(), Request{Text: "💰 **Your Earnings**", Anchor: 2, Instant: true}))

	require.Len(t, frames, 1)
	assert.True(t, frames[0].Done)
	assert.True(t, frames[0].Cancelled)
	assert.Equal(t, "💰 **Your Earnings**", frames[0].Text)
	assert.Equal(t, 2, frames[0].Anchor)
	assert.Equal(t, StateIdle, ctrl.State())
}

func TestController_LineModeForLongText(t *testing.T) {
	ctrl := NewController(Options{LineDelay: time.Millisecond, LongThreshold: 20})
	text := strings.Repeat("a fairly long line\n", 4)

	frames := collect(t, ctrl.Start(context.Background(), Request{Text: text}))

	require.Len(t, frames, 4)
	for _, frame := range frames {
		assert.Equal(t, ModeLine, frame.Mode)
		assert.True(t, strings.HasSuffix(frame.Text, "\n"))
	}
	assert.Equal(t, text, frames[3].Text)
}

func TestController_EmptyText(t *testing.T) {
	ctrl := NewController(Options{})

	frames := collect(t, ctrl.Start(context.Background(), Request{}))

	require.Len(t, frames, 1)
	assert.True(t, frames[0].Done)
	assert.Empty(t, frames[0].Text)
}

func TestController_ContextCancelClosesStream(t *testing.T) {
	ctrl := NewController(Options{CharDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())

	frames := ctrl.Start(ctx, Request{Text: "never shown"})
	cancel()

	assert.Empty(t, collect(t, frames))
	require.NoError(t, ctrl.Wait(context.Background()))
	assert.Equal(t, StateIdle, ctrl.State())
}
