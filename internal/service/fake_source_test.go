package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/you/go-tickets-report/internal/tickets"
)

// fakeSource serves tickets from a load func and counts calls.
type fakeSource struct {
	name  string
	load  func(ctx context.Context) ([]tickets.Ticket, error)
	calls atomic.Int32
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Load(ctx context.Context) ([]tickets.Ticket, error) {
	f.calls.Add(1)
	return f.load(ctx)
}

func staticSource(name string, ts ...tickets.Ticket) *fakeSource {
	return &fakeSource{name: name, load: func(context.Context) ([]tickets.Ticket, error) {
		return ts, nil
	}}
}

func failingSource(name string, err error) *fakeSource {
	return &fakeSource{name: name, load: func(context.Context) ([]tickets.Ticket, error) {
		return nil, err
	}}
}

func slowSource(name string, wait time.Duration, ts ...tickets.Ticket) *fakeSource {
	return &fakeSource{name: name, load: func(ctx context.Context) ([]tickets.Ticket, error) {
		select {
		case <-time.After(wait):
			return ts, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}}
}
