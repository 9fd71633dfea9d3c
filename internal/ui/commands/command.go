package commands

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cinematch/internal/domain"
	"cinematch/internal/eventbus"
	"cinematch/internal/loader"
	"cinematch/internal/poster"
	"cinematch/internal/ui/state"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ContactResetMsg fires when the contact button should return to idle
type ContactResetMsg struct {
	Token uint64
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State        *state.AppState
	Bus          eventbus.EventBus
	Loader       *loader.Loader
	Prober       *poster.Prober // nil disables poster probing
	Root         context.Context
	ContactReset time.Duration
}

func (c *CommandContext) publish(e eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(e)
	}
}

// LoadCatalogCommand fetches the title catalog
type LoadCatalogCommand struct {
	ctx *CommandContext
}

// NewLoadCatalogCommand creates a new load catalog command
func NewLoadCatalogCommand(ctx *CommandContext) *LoadCatalogCommand {
	return &LoadCatalogCommand{ctx: ctx}
}

// Execute starts the load; an earlier load still in flight is canceled
func (c *LoadCatalogCommand) Execute() tea.Cmd {
	reqCtx, gen := c.ctx.State.BeginCatalogLoad(c.ctx.Root)
	c.ctx.publish(eventbus.CatalogRequestedEvent{Generation: gen})

	ld := c.ctx.Loader
	return func() tea.Msg {
		res, err := ld.LoadCatalog(reqCtx)
		if err != nil {
			// superseded
			return nil
		}
		return EventMsg{Event: eventbus.CatalogLoadedEvent{
			Generation: gen,
			Titles:     res.Catalog.Titles(),
			Source:     res.Catalog.Source(),
			Cause:      res.Cause,
		}}
	}
}

// RecommendCommand requests recommendations for a movie
type RecommendCommand struct {
	ctx   *CommandContext
	movie string
}

// NewRecommendCommand creates a new recommend command
func NewRecommendCommand(ctx *CommandContext, movie string) *RecommendCommand {
	return &RecommendCommand{ctx: ctx, movie: movie}
}

// Execute starts the request. An empty title is rejected without a request.
func (c *RecommendCommand) Execute() tea.Cmd {
	movie := strings.TrimSpace(c.movie)
	if movie == "" {
		c.ctx.State.RejectEmptyQuery()
		return nil
	}

	reqCtx, gen := c.ctx.State.BeginRecommend(c.ctx.Root, movie)
	c.ctx.publish(eventbus.RecommendRequestedEvent{Generation: gen, Movie: movie})

	ld := c.ctx.Loader
	return func() tea.Msg {
		res, err := ld.Recommend(reqCtx, movie)
		if err != nil {
			return nil
		}
		return EventMsg{Event: eventbus.RecommendationsReadyEvent{
			Generation:      gen,
			Movie:           res.Movie,
			Recommendations: res.Recommendations,
			Fallback:        res.Fallback,
			Cause:           res.Cause,
		}}
	}
}

// ProbePostersCommand checks which posters of the current cards load
type ProbePostersCommand struct {
	ctx *CommandContext
	gen uint64
}

// NewProbePostersCommand creates a probe for the cards of request gen
func NewProbePostersCommand(ctx *CommandContext, gen uint64) *ProbePostersCommand {
	return &ProbePostersCommand{ctx: ctx, gen: gen}
}

// Execute probes under the request's context, so a newer request cancels it
func (c *ProbePostersCommand) Execute() tea.Cmd {
	reqCtx, ok := c.ctx.State.RecommendContext(c.gen)
	if !ok {
		return nil
	}
	if c.ctx.Prober == nil {
		c.ctx.State.FinishRecommend(c.gen)
		return nil
	}

	recs := make([]domain.Recommendation, len(c.ctx.State.Cards))
	for i, card := range c.ctx.State.Cards {
		recs[i] = card.Recommendation
	}

	gen, prober, bus := c.gen, c.ctx.Prober, c.ctx.Bus
	return func() tea.Msg {
		cards := prober.Resolve(reqCtx, recs)
		if reqCtx.Err() != nil {
			return nil
		}
		event := eventbus.PostersProbedEvent{Generation: gen, Failed: poster.FailedIndexes(cards)}
		if bus != nil {
			bus.Publish(event)
		}
		return EventMsg{Event: event}
	}
}

// SendContactCommand submits the contact form
type SendContactCommand struct {
	ctx *CommandContext
}

// NewSendContactCommand creates a new send contact command
func NewSendContactCommand(ctx *CommandContext) *SendContactCommand {
	return &SendContactCommand{ctx: ctx}
}

// Execute validates the form and sends it. Validation failures leave an
// alert on the form and send nothing.
func (c *SendContactCommand) Execute() tea.Cmd {
	msg, err := c.ctx.State.Contact.Submit()
	if err != nil {
		return nil
	}
	c.ctx.publish(eventbus.ContactSubmittedEvent{Message: msg})

	ld, root := c.ctx.Loader, c.ctx.Root
	return func() tea.Msg {
		res := ld.SendContact(root, msg)
		return EventMsg{Event: eventbus.ContactCompletedEvent{Success: res.Success, Error: res.Error}}
	}
}

// ContactResetCommand returns the contact button to idle after a delay
type ContactResetCommand struct {
	ctx   *CommandContext
	token uint64
}

// NewContactResetCommand creates a new contact reset command
func NewContactResetCommand(ctx *CommandContext, token uint64) *ContactResetCommand {
	return &ContactResetCommand{ctx: ctx, token: token}
}

// Execute schedules the reset
func (c *ContactResetCommand) Execute() tea.Cmd {
	token := c.token
	return tea.Tick(c.ctx.ContactReset, func(time.Time) tea.Msg {
		return ContactResetMsg{Token: token}
	})
}
