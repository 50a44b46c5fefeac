package broker

import (
	"context"
	"fmt"
	"sort"
)

// Client fetches holdings and trades from one brokerage. Implementations are
// transport-only; position merging, deduplication and persistence happen in
// the sync service.
type Client interface {
	Name() string
	GetHoldings(ctx context.Context, creds Credentials) ([]Holding, error)
	GetTrades(ctx context.Context, creds Credentials) ([]Trade, error)
}

// Registry maps a broker name to its client.
type Registry struct {
	clients map[string]Client
}

func NewRegistry(clients ...Client) *Registry {
	r := &Registry{clients: make(map[string]Client, len(clients))}
	for _, c := range clients {
		r.clients[c.Name()] = c
	}
	return r
}

// Client returns the client registered under name.
func (r *Registry) Client(name string) (Client, error) {
	c, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("unsupported broker %q", name)
	}
	return c, nil
}

// Names lists the registered broker names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
