// Package store persists the two tables this service owns: per-guild setting
// overrides and their append-only audit trail.
package store

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles one *gorm.DB handle behind the table-scoped accessors in
// settings_store.go and audit_store.go.
type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{DB: db} }

// WithTx runs fn against a transactional view of the store. Any error from fn
// rolls back every write made through that view; the bulk settings path
// depends on this all-or-nothing behavior.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{DB: tx})
	})
}
