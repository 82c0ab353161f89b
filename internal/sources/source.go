package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/you/go-tickets-report/internal/tickets"
)

type Source interface {
	Name() string
	Load(ctx context.Context) ([]tickets.Ticket, error)
}

var ErrMalformed = errors.New("malformed tickets document")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode reads a {"tickets": [...]} document. A leading UTF-8 byte order
// mark is skipped and unknown fields are ignored.
func Decode(r io.Reader) ([]tickets.Ticket, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	var c tickets.Container
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return c.Tickets, nil
}

// FromArg picks an HTTP source for http(s) URLs, stdin for "-" and a file
// source otherwise.
func FromArg(arg string) Source {
	if arg == "-" {
		return NewReader("stdin", os.Stdin)
	}
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return NewHTTP(arg, nil)
	}
	return NewFile(arg)
}
