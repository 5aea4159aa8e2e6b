package todo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDummyFetcher_ReturnsDemoItems(t *testing.T) {
	items, err := DummyFetcher{}.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !equalStringSlices(items, DemoItems) {
		t.Errorf("Fetch() = %v, want %v", items, DemoItems)
	}

	items[0] = "changed"
	if DemoItems[0] != "Buy the milk" {
		t.Error("Fetch() result aliases DemoItems")
	}
}

func TestDummyFetcher_CustomItems(t *testing.T) {
	items, err := DummyFetcher{Items: []string{"a", "b"}}.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !equalStringSlices(items, []string{"a", "b"}) {
		t.Errorf("Fetch() = %v, want [a b]", items)
	}
}

func TestDummyFetcher_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DummyFetcher{Delay: time.Hour}.Fetch(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}

func TestStaticFetcher(t *testing.T) {
	f := StaticFetcher{"x", "y"}
	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !equalStringSlices(items, []string{"x", "y"}) {
		t.Errorf("Fetch() = %v", items)
	}
}

func TestFetcherFunc(t *testing.T) {
	boom := errors.New("boom")
	f := FetcherFunc(func(ctx context.Context) ([]string, error) { return nil, boom })
	if _, err := f.Fetch(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Fetch() error = %v, want %v", err, boom)
	}
}
