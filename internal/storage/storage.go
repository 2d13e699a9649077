// Package storage defines the Storage interface — a contract that any
// database backend must satisfy to hold the exercises' records.
//
// WHY AN INTERFACE?
// ─────────────────
// The exercises should not know or care which database they are talking
// to. By depending only on this interface:
//
//   - Switching databases = implement the interface for the new DB,
//     change one line in main.go. Zero exercise changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
package storage

import (
	"errors"

	"github.com/aanand-mishra/lang-basics/internal/types"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("record not found")

// Storage is the database contract.
type Storage interface {
	// CreateProduct inserts a product and returns the auto-generated
	// row ID (distinct from the product's own ID field).
	CreateProduct(p types.Product) (int64, error)

	// GetProductByID fetches a product by row ID.
	GetProductByID(id int64) (types.Product, error)

	// GetProducts returns every product in insertion order.
	// Returns an empty slice (not nil) if there are none.
	GetProducts() ([]types.Product, error)

	// SaveBlob stores an encoded record under a kind label such as
	// "account/borsh" and returns its row ID.
	SaveBlob(kind string, data []byte) (int64, error)

	// GetBlobByID returns the kind label and the exact bytes stored.
	GetBlobByID(id int64) (string, []byte, error)

	Close() error
}
