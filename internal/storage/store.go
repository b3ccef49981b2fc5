// Package storage provides the small key/value contract used for client-side
// state (selection, theme) and its backends.
package storage

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Store is a string key/value store. Get reports ok=false for a missing key.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Option customizes a backend at open.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger routes recoverable open problems, such as a corrupt state file,
// to l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Open returns the backend named by backend, rooted at path.
func Open(backend, path string, opts ...Option) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		return NewFile(path, opts...)
	case BackendSQLite:
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (use file, sqlite, or memory)", backend)
	}
}
