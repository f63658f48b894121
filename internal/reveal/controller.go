package reveal

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/creator-assistant/internal/domain"
)

type State string

const (
	StateIdle   State = "idle"
	StateTyping State = "typing"
)

const (
	DefaultCharDelay = 12 * time.Millisecond
	DefaultLineDelay = 60 * time.Millisecond
)

type Options struct {
	CharDelay     time.Duration
	LineDelay     time.Duration
	LongThreshold int
}

func (o Options) withDefaults() Options {
	if o.CharDelay <= 0 {
		o.CharDelay = DefaultCharDelay
	}
	if o.LineDelay <= 0 {
		o.LineDelay = DefaultLineDelay
	}
	if o.LongThreshold <= 0 {
		o.LongThreshold = DefaultLongThreshold
	}
	return o
}

func (o Options) delay(mode Mode) time.Duration {
	if mode == ModeLine {
		return o.LineDelay
	}
	return o.CharDelay
}

// Request descreve uma revelação: o texto completo e para onde a interface deve rolar
type Request struct {
	Text        string
	Anchor      int
	Suggestions []domain.QuickAction
	Instant     bool // interrompida antes de começar: só o frame final, marcado como cancelado
}

// Frame é um estado visível da animação. Apenas o último frame tem Done, Disclaimer e Suggestions.
type Frame struct {
	Text        string               `json:"text"`
	Step        int                  `json:"step"`
	Total       int                  `json:"total"`
	Mode        Mode                 `json:"mode"`
	Anchor      int                  `json:"anchor"`
	Done        bool                 `json:"done"`
	Cancelled   bool                 `json:"cancelled"`
	Disclaimer  string               `json:"disclaimer,omitempty"`
	Suggestions []domain.QuickAction `json:"suggestions,omitempty"`
}

// Controller garante uma única revelação ativa por vez
type Controller struct {
	mu     sync.Mutex
	opts   Options
	active *run
}

type run struct {
	plan     Plan
	req      Request
	delay    time.Duration
	out      chan Frame
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewController(opts Options) *Controller {
	return &Controller{opts: opts.withDefaults()}
}

// Start inicia a revelação de req.Text. Uma revelação ativa é finalizada antes (texto completo).
// O canal devolvido recebe os frames e é fechado depois do frame final; o consumidor deve
// lê-lo até o fim ou cancelar ctx.
func (c *Controller) Start(ctx context.Context, req Request) <-chan Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		c.active.cancel()
	}

	plan := NewPlan(req.Text, c.opts.LongThreshold)
	r := &run{
		plan:  plan,
		req:   req,
		delay: c.opts.delay(plan.Mode),
		out:   make(chan Frame, 1),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	c.active = r

	go r.loop(ctx)

	return r.out
}

// Stop interrompe a revelação ativa: o próximo frame é o final, com o texto completo.
// Retorna false quando não havia revelação em andamento.
func (c *Controller) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil || !c.active.typing() {
		return false
	}

	c.active.cancel()
	return true
}

// Wait bloqueia até a revelação ativa emitir o frame final ou ctx expirar
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	r := c.active
	c.mu.Unlock()

	if r == nil {
		return nil
	}

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil && c.active.typing() {
		return StateTyping
	}
	return StateIdle
}

// InputEnabled é falso enquanto uma resposta está sendo revelada
func (c *Controller) InputEnabled() bool {
	return c.State() == StateIdle
}

func (r *run) cancel() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *run) typing() bool {
	select {
	case <-r.stop:
		return false
	case <-r.done:
		return false
	default:
		return true
	}
}

func (r *run) loop(ctx context.Context) {
	defer close(r.done)
	defer close(r.out)

	total := r.plan.Total()
	if total == 0 {
		r.finish(ctx, false)
		return
	}
	if r.req.Instant {
		r.finish(ctx, true)
		return
	}

	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	for step := 1; step < total; step++ {
		select {
		case <-ctx.Done():
			return
		case <-r.stop:
			r.finish(ctx, true)
			return
		case <-timer.C:
		}

		frame := r.frame(step)
		select {
		case r.out <- frame:
		case <-ctx.Done():
			return
		case <-r.stop:
			r.finish(ctx, true)
			return
		}

		timer.Reset(r.delay)
	}

	select {
	case <-ctx.Done():
		return
	case <-r.stop:
		r.finish(ctx, true)
		return
	case <-timer.C:
	}

	r.finish(ctx, false)
}

func (r *run) frame(step int) Frame {
	return Frame{
		Text:   r.plan.Prefix(step),
		Step:   step,
		Total:  r.plan.Total(),
		Mode:   r.plan.Mode,
		Anchor: r.req.Anchor,
	}
}

// finish emite o frame final com o texto completo
func (r *run) finish(ctx context.Context, cancelled bool) {
	frame := r.frame(r.plan.Total())
	frame.Done = true
	frame.Cancelled = cancelled
	frame.Disclaimer = Disclaimer
	frame.Suggestions = r.req.Suggestions

	select {
	case r.out <- frame:
	case <-ctx.Done():
	}
}
