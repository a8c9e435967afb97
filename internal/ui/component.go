// Package ui holds the fortune view's state machine. Front-ends feed it
// events (mount, new-fortune, input change, submit) and ask it to render.
package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/fortune-service/internal/ports"
)

// placeholder is rendered until a fortune has been fetched.
const placeholder = "(no fortune yet)"

// Component is the fortune view: the fortune currently shown and the text
// being typed into the form. It is safe for concurrent use; when requests
// overlap, the last response to arrive wins.
type Component struct {
	api    ports.FortuneAPI
	logger *slog.Logger
	once   sync.Once

	mu      sync.Mutex
	current string
	draft   string
}

// ComponentConfig contains configuration for the component.
type ComponentConfig struct {
	// API is required.
	API ports.FortuneAPI

	// Logger defaults to slog.Default() when nil.
	Logger *slog.Logger
}

// NewComponent creates a component with empty state.
// Panics if API is nil.
func NewComponent(cfg ComponentConfig) *Component {
	if cfg.API == nil {
		panic("Component: API is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Component{
		api:    cfg.API,
		logger: logger.With(slog.String("component", "ui.Component")),
	}
}

// Mount fetches the first fortune. Only the first call does anything.
func (c *Component) Mount(ctx context.Context) {
	c.once.Do(func() {
		c.fetch(ctx)
	})
}

// NewFortune fetches another random fortune.
func (c *Component) NewFortune(ctx context.Context) {
	c.fetch(ctx)
}

// Change replaces the draft with the input's current value. No validation.
func (c *Component) Change(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = value
}

// Submit sends the draft as a new fortune and shows the echoed copy.
// The draft is kept whether or not the request succeeds.
func (c *Component) Submit(ctx context.Context) {
	draft := c.Draft()

	f, err := c.api.CreateFortune(ctx, draft)
	if err != nil {
		c.logger.ErrorContext(ctx, "creating fortune failed", slog.Any("error", err))
		return
	}

	c.setCurrent(f.Text)
}

// Current returns the fortune text currently shown, or "" before the first
// successful fetch.
func (c *Component) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

// Draft returns the form input's value.
func (c *Component) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.draft
}

// Render writes the view: the current fortune, the new-fortune control and
// the form bound to the draft.
func (c *Component) Render(w io.Writer) error {
	c.mu.Lock()
	current, draft := c.current, c.draft
	c.mu.Unlock()

	if current == "" {
		current = placeholder
	}

	_, err := fmt.Fprintf(w, "\n  %s\n\n  [new] New fortune\n  [type <text>] Fortune: %q  [submit] Submit\n\n", current, draft)

	return err
}

func (c *Component) fetch(ctx context.Context) {
	f, err := c.api.RandomFortune(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "fetching fortune failed", slog.Any("error", err))
		return
	}

	c.setCurrent(f.Text)
}

func (c *Component) setCurrent(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = text
}
