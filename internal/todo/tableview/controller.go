// Package tableview renders the to-do sample as a text table and runs the
// commands its reducer emits.
//
// Controller plays the part of a table view controller: UI entry points
// dispatch actions, StateDidChange re-renders whatever changed between the
// previous and the new state, and a LoadToDosCommand is executed by fetching
// items and dispatching the Action its Completion returns.
package tableview

import (
	"context"
	"io"
	"slices"

	"go.uber.org/zap"

	"github.com/comalice/storex"
	"github.com/comalice/storex/internal/observe"
	"github.com/comalice/storex/internal/runloop"
	"github.com/comalice/storex/internal/todo"
)

// Store is the store type the Controller drives.
type Store = storex.Store[todo.Action, todo.State, todo.Command]

// Option configures a Controller.
type Option func(*Controller)

// WithFetcher sets where LoadToDos gets its items.
func WithFetcher(f todo.Fetcher) Option {
	return func(c *Controller) {
		c.fetcher = f
	}
}

// WithLoop runs fetches in the background on l and posts their results back
// to it. Without a loop, fetches run inline and dispatch re-entrantly.
func WithLoop(l *runloop.Loop) Option {
	return func(c *Controller) {
		c.loop = l
	}
}

// WithOutput sets where renders are written.
func WithOutput(w io.Writer) Option {
	return func(c *Controller) {
		c.out = w
	}
}

// WithLogger sets the controller logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMinTextLength sets the input length that enables the add button.
func WithMinTextLength(n int) Option {
	return func(c *Controller) {
		c.minText = n
	}
}

// Controller owns the store and the rendered view.
type Controller struct {
	store   *Store
	fetcher todo.Fetcher
	loop    *runloop.Loop
	out     io.Writer
	log     *zap.SugaredLogger
	minText int

	title      string
	rows       []string
	input      string
	addEnabled bool
}

// New creates a Controller over a fresh store seeded with initial and
// performs the initial render.
func New(initial todo.State, opts ...Option) *Controller {
	c := &Controller{
		fetcher: todo.DummyFetcher{},
		out:     io.Discard,
		log:     zap.NewNop().Sugar(),
		minText: todo.DefaultMinTextLength,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.store = storex.New(todo.Reduce, initial)
	c.store.Subscribe(observe.LoggingSubscriber(c.subscriber, c.log))

	c.StateDidChange(c.store.State(), nil, nil)
	return c
}

// Store returns the controller's store.
func (c *Controller) Store() *Store {
	return c.store
}

func (c *Controller) subscriber(state, previous todo.State, command todo.Command) {
	c.StateDidChange(state, &previous, command)
}

// StateDidChange brings the view in line with state. A nil previous forces a
// full render. The view depends only on its inputs, never on what was shown
// before.
func (c *Controller) StateDidChange(state todo.State, previous *todo.State, command todo.Command) {
	changed := false

	if previous == nil || !slices.Equal(previous.Items, state.Items) {
		c.rows = slices.Clone(state.Items)
		c.title = todo.Title(state)
		changed = true
	}

	if previous == nil || previous.Text != state.Text {
		c.input = state.Text
		c.addEnabled = todo.CanAdd(state, c.minText)
		changed = true
	}

	if changed {
		if err := c.Render(c.out); err != nil {
			c.log.Warnw("Failed to render", "error", err)
		}
	}

	if command != nil {
		c.perform(command)
	}
}

func (c *Controller) perform(command todo.Command) {
	switch cmd := command.(type) {
	case todo.LoadToDosCommand:
		c.fetch(cmd.Completion)
	case todo.SomeOtherCommand:
		// Placeholder.
	}
}

func (c *Controller) fetch(completion func([]string) todo.Action) {
	if c.loop == nil {
		items, err := c.fetcher.Fetch(context.Background())
		if err != nil {
			c.log.Warnw("Failed to fetch to-do items", "error", err)
			return
		}
		c.store.Dispatch(completion(items))
		return
	}

	c.loop.Go(func(ctx context.Context) error {
		items, err := c.fetcher.Fetch(ctx)
		if err != nil {
			if ctx.Err() == nil {
				c.log.Warnw("Failed to fetch to-do items", "error", err)
			}
			return nil
		}
		action := completion(items)
		if err := c.loop.Post(func() { c.store.Dispatch(action) }); err != nil {
			c.log.Warnw("Dropped fetched to-do items", "count", len(items), "error", err)
		}
		return nil
	})
}

// InputChanged handles an edit of the input cell.
func (c *Controller) InputChanged(text string) {
	c.store.Dispatch(todo.UpdateText{Text: text})
}

// AddPressed adds the current input as a to-do and clears the input.
func (c *Controller) AddPressed() {
	c.store.Dispatch(todo.AddToDos{Items: []string{c.store.State().Text}})
	c.store.Dispatch(todo.UpdateText{Text: ""})
}

// SelectRow removes the to-do at row.
func (c *Controller) SelectRow(row int) {
	c.store.Dispatch(todo.RemoveToDo{Index: row})
}

// Load starts loading to-dos.
func (c *Controller) Load() {
	c.store.Dispatch(todo.LoadToDos{})
}

// Title is the rendered title.
func (c *Controller) Title() string {
	return c.title
}

// Rows returns the rendered to-do rows.
func (c *Controller) Rows() []string {
	return slices.Clone(c.rows)
}

// InputText is the rendered input cell text.
func (c *Controller) InputText() string {
	return c.input
}

// AddEnabled reports whether the add button is enabled.
func (c *Controller) AddEnabled() bool {
	return c.addEnabled
}
