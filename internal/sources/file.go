package sources

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/you/go-tickets-report/internal/tickets"
)

type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string { return "file:" + f.path }

func (f *File) Load(ctx context.Context) ([]tickets.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	out, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return out, nil
}

// Reader decodes tickets from an already open stream, e.g. a request body.
type Reader struct {
	name string
	r    io.Reader
}

func NewReader(name string, r io.Reader) *Reader {
	return &Reader{name: name, r: r}
}

func (r *Reader) Name() string { return r.name }

func (r *Reader) Load(ctx context.Context) ([]tickets.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(r.r)
}
