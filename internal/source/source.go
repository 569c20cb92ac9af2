package source

import (
	"context"
	"fmt"

	"CustomerOutputs/internal/domain"
)

// Request carries all parameters required to read one batch of results.
type Request struct {
	Path    string
	Options map[string]string
}

// Reader captures a single input-format implementation (CSV, JSONL, etc.).
type Reader interface {
	Name() string
	Read(ctx context.Context, req Request) ([]domain.InternalResult, error)
}

// Registry keeps a mapping from format names to their reader implementations.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{readers: map[string]Reader{}}
}

// Register adds or replaces a reader implementation.
func (r *Registry) Register(reader Reader) {
	if r.readers == nil {
		r.readers = map[string]Reader{}
	}
	r.readers[reader.Name()] = reader
}

// Resolve returns a reader by format name or an error if it is absent.
func (r *Registry) Resolve(name string) (Reader, error) {
	if reader, ok := r.readers[name]; ok {
		return reader, nil
	}
	return nil, fmt.Errorf("input format %s is not registered", name)
}
