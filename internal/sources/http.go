package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/you/go-tickets-report/internal/tickets"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// HTTP fetches a tickets document from a URL.
type HTTP struct {
	url    string
	client *http.Client
}

func NewHTTP(url string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{url: url, client: client}
}

func (h *HTTP) Name() string { return h.url }

func (h *HTTP) Load(ctx context.Context) ([]tickets.Ticket, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s - %s", ErrUnexpectedStatus, resp.Status, h.url)
	}
	return Decode(resp.Body)
}
