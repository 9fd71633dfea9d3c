package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cinematch/internal/eventbus"
	"cinematch/internal/loader"
	"cinematch/internal/poster"
	"cinematch/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. prober may be nil.
func NewExecutor(root context.Context, st *state.AppState, bus eventbus.EventBus, ld *loader.Loader, prober *poster.Prober, contactReset time.Duration) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:        st,
			Bus:          bus,
			Loader:       ld,
			Prober:       prober,
			Root:         root,
			ContactReset: contactReset,
		},
	}
}

// ExecuteLoadCatalog creates and executes a load catalog command
func (e *Executor) ExecuteLoadCatalog() tea.Cmd {
	return NewLoadCatalogCommand(e.ctx).Execute()
}

// ExecuteRecommend creates and executes a recommend command
func (e *Executor) ExecuteRecommend(movie string) tea.Cmd {
	return NewRecommendCommand(e.ctx, movie).Execute()
}

// ExecuteProbePosters creates and executes a poster probe command
func (e *Executor) ExecuteProbePosters(gen uint64) tea.Cmd {
	return NewProbePostersCommand(e.ctx, gen).Execute()
}

// ExecuteSendContact creates and executes a send contact command
func (e *Executor) ExecuteSendContact() tea.Cmd {
	return NewSendContactCommand(e.ctx).Execute()
}

// ExecuteContactReset creates and executes a contact reset command
func (e *Executor) ExecuteContactReset(token uint64) tea.Cmd {
	return NewContactResetCommand(e.ctx, token).Execute()
}
