package tableview

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/comalice/storex/internal/runloop"
	"github.com/comalice/storex/internal/todo"
)

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestController_InitialRender(t *testing.T) {
	var out bytes.Buffer
	c := New(todo.State{}, WithOutput(&out))

	if got := c.Title(); got != "TODO - (0)" {
		t.Errorf("Title() = %q", got)
	}
	if c.AddEnabled() {
		t.Error("AddEnabled() = true for empty input")
	}
	if !strings.Contains(out.String(), "TODO - (0)") {
		t.Errorf("initial render missing title:\n%s", out.String())
	}
}

func TestController_UpdateView(t *testing.T) {
	c := New(todo.State{})

	state1 := todo.State{Items: []string{}, Text: ""}
	state2 := todo.State{Items: []string{"1", "3"}, Text: "Hello"}
	state3 := todo.State{Items: []string{"Hello", "2", "3"}, Text: "2"}
	state4 := todo.State{Items: []string{}, Text: "onevcat"}

	c.StateDidChange(state2, &state1, nil)
	if got := c.Title(); got != "TODO - (2)" {
		t.Errorf("Title() = %q, want TODO - (2)", got)
	}
	if rows := c.Rows(); len(rows) != 2 || rows[1] != "3" {
		t.Errorf("Rows() = %v", rows)
	}
	if !c.AddEnabled() {
		t.Error("AddEnabled() = false for Hello")
	}

	c.StateDidChange(state3, &state2, nil)
	if got := c.Title(); got != "TODO - (3)" {
		t.Errorf("Title() = %q, want TODO - (3)", got)
	}
	if rows := c.Rows(); len(rows) != 3 || rows[0] != "Hello" {
		t.Errorf("Rows() = %v", rows)
	}
	if c.AddEnabled() {
		t.Error("AddEnabled() = true for 2")
	}

	c.StateDidChange(state4, &state3, nil)
	if got := c.Title(); got != "TODO - (0)" {
		t.Errorf("Title() = %q, want TODO - (0)", got)
	}
	if rows := c.Rows(); len(rows) != 0 {
		t.Errorf("Rows() = %v, want empty", rows)
	}
	if !c.AddEnabled() {
		t.Error("AddEnabled() = false for onevcat")
	}
	if got := c.InputText(); got != "onevcat" {
		t.Errorf("InputText() = %q", got)
	}
}

func TestController_RendersOnlyOnChange(t *testing.T) {
	var out bytes.Buffer
	c := New(todo.State{}, WithOutput(&out))
	out.Reset()

	same := todo.State{Items: []string{"a"}, Text: "x"}
	c.StateDidChange(same, &same, nil)
	if out.Len() != 0 {
		t.Errorf("rendered for an unchanged state:\n%s", out.String())
	}
}

func TestController_Adding(t *testing.T) {
	c := New(todo.State{Items: []string{"old"}})
	original := c.Store().State().Items

	c.InputChanged("Test Item")
	c.AddPressed()

	state := c.Store().State()
	want := append([]string{"Test Item"}, original...)
	if !equalStringSlices(state.Items, want) {
		t.Errorf("Items = %v, want %v", state.Items, want)
	}
	if state.Text != "" {
		t.Errorf("Text = %q, want empty", state.Text)
	}
	if c.InputText() != "" {
		t.Errorf("InputText() = %q, want empty", c.InputText())
	}
}

func TestController_Removing(t *testing.T) {
	c := New(todo.State{})
	c.Store().Dispatch(todo.AddToDos{Items: []string{"1", "2", "3"}})
	c.SelectRow(1)

	if got := c.Store().State().Items; !equalStringSlices(got, []string{"1", "3"}) {
		t.Errorf("Items = %v, want [1 3]", got)
	}
	if got := c.Rows(); !equalStringSlices(got, []string{"1", "3"}) {
		t.Errorf("Rows() = %v, want [1 3]", got)
	}
}

func TestController_InputChanged(t *testing.T) {
	c := New(todo.State{})
	c.InputChanged("Hello")
	if got := c.Store().State().Text; got != "Hello" {
		t.Errorf("Text = %q, want Hello", got)
	}
}

func TestController_LoadInline(t *testing.T) {
	c := New(todo.State{Items: []string{"kept"}}, WithFetcher(todo.StaticFetcher{"2", "3"}))
	c.Load()

	want := []string{"2", "3", "kept"}
	if got := c.Store().State().Items; !equalStringSlices(got, want) {
		t.Errorf("Items = %v, want %v", got, want)
	}
	if got := c.Title(); got != "TODO - (3)" {
		t.Errorf("Title() = %q", got)
	}
}

func TestController_FetchFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	failing := todo.FetcherFunc(func(ctx context.Context) ([]string, error) {
		return nil, errors.New("offline")
	})

	c := New(todo.State{}, WithFetcher(failing), WithLogger(zap.New(core).Sugar()))
	c.Load()

	if got := c.Store().State().Items; len(got) != 0 {
		t.Errorf("Items = %v, want empty", got)
	}
	if logs.FilterMessage("Failed to fetch to-do items").Len() != 1 {
		t.Errorf("expected fetch failure warning, got %v", logs.All())
	}
}

func TestController_MinTextLength(t *testing.T) {
	c := New(todo.State{}, WithMinTextLength(1))
	c.InputChanged("a")
	if !c.AddEnabled() {
		t.Error("AddEnabled() = false with min length 1")
	}
}

func TestController_LoadThroughLoop(t *testing.T) {
	l := runloop.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	ready := make(chan *Controller, 1)
	if err := l.Post(func() {
		c := New(todo.State{}, WithLoop(l), WithFetcher(todo.StaticFetcher{"x", "y"}))
		c.Load()
		ready <- c
	}); err != nil {
		t.Fatal(err)
	}
	c := <-ready

	deadline := time.After(time.Second)
	for {
		titles := make(chan string, 1)
		if err := l.Post(func() { titles <- c.Title() }); err != nil {
			t.Fatal(err)
		}
		if <-titles == "TODO - (2)" {
			break
		}
		select {
		case <-deadline:
			t.Fatal("fetched items never rendered")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	if err := <-errc; err != nil {
		t.Errorf("Run() = %v", err)
	}
}

func TestController_Render(t *testing.T) {
	c := New(todo.State{Items: []string{"Buy the milk"}, Text: "abc"})

	var out bytes.Buffer
	if err := c.Render(&out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"TODO - (1)", "[add: enabled]", "> abc_", "Buy the milk"} {
		if !strings.Contains(got, want) {
			t.Errorf("render missing %q:\n%s", want, got)
		}
	}
}
