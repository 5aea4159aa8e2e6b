package todo

import (
	"context"
	"time"
)

// DemoItems are the items DummyFetcher serves.
var DemoItems = []string{
	"Buy the milk",
	"Take my dog",
	"Rent a car",
}

// Fetcher loads to-do items from somewhere slow.
type Fetcher interface {
	Fetch(ctx context.Context) ([]string, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]string, error)

func (f FetcherFunc) Fetch(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// DummyFetcher serves Items after Delay. Nil Items means DemoItems.
type DummyFetcher struct {
	Delay time.Duration
	Items []string
}

func (f DummyFetcher) Fetch(ctx context.Context) ([]string, error) {
	if f.Delay > 0 {
		timer := time.NewTimer(f.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	items := f.Items
	if items == nil {
		items = DemoItems
	}
	return append([]string(nil), items...), nil
}

// StaticFetcher serves a fixed list immediately.
type StaticFetcher []string

func (f StaticFetcher) Fetch(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), f...), nil
}
