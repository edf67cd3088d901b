package storage

import (
	"context"

	"github.com/poiesic/retrofit/embedding"
)

// TableRepository provides operations for managing named embedding tables.
// Implementations must be thread-safe and support concurrent access.
type TableRepository interface {
	// PutTable stores a table under the given name, replacing any table
	// previously stored under that name. Word order, dimensionality, and
	// vector values round-trip exactly.
	PutTable(ctx context.Context, name string, table *embedding.Table) error

	// GetTable retrieves the table stored under the given name.
	// Returns ErrNotFound if no such table exists.
	GetTable(ctx context.Context, name string) (*embedding.Table, error)

	// DeleteTable removes the table stored under the given name.
	// Returns ErrNotFound if no such table exists.
	DeleteTable(ctx context.Context, name string) error

	// ListTables returns the names of all stored tables in lexical order.
	ListTables(ctx context.Context) ([]string, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
