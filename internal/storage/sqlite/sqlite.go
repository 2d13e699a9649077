// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/lang-basics/internal/storage"
	"github.com/aanand-mishra/lang-basics/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB
}

// compile-time check that *SQLite satisfies the interface
var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at path, creates the tables if they do
// not already exist, and returns a ready-to-use *SQLite.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Every new connection to ":memory:" gets its own empty database.
	// Pinning the pool to one connection keeps all queries on the same
	// one.
	db.SetMaxOpenConns(1)

	// Schema:
	//   products — one row per types.Product; price stored as REAL
	//   blobs    — encoded records, kept byte-for-byte
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			row_id INTEGER PRIMARY KEY AUTOINCREMENT,
			id     INTEGER NOT NULL,
			name   TEXT    NOT NULL,
			price  REAL    NOT NULL
		);
		CREATE TABLE IF NOT EXISTS blobs (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT    NOT NULL,
			data BLOB    NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create tables: %w", err)
	}

	return &SQLite{Db: db}, nil
}

func (s *SQLite) CreateProduct(p types.Product) (int64, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO products (id, name, price) VALUES (?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("CreateProduct: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(p.ID, p.Name, p.Price)
	if err != nil {
		return 0, fmt.Errorf("CreateProduct: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateProduct: last insert id: %w", err)
	}

	return lastID, nil
}

func (s *SQLite) GetProductByID(id int64) (types.Product, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, price FROM products WHERE row_id = ? LIMIT 1",
	)
	if err != nil {
		return types.Product{}, fmt.Errorf("GetProductByID: prepare: %w", err)
	}
	defer stmt.Close()

	var product types.Product

	err = stmt.QueryRow(id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Product{}, fmt.Errorf("no product found with id %d: %w", id, storage.ErrNotFound)
		}
		return types.Product{}, fmt.Errorf("GetProductByID: scan: %w", err)
	}

	return product, nil
}

func (s *SQLite) GetProducts() ([]types.Product, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, price FROM products ORDER BY row_id",
	)
	if err != nil {
		return nil, fmt.Errorf("GetProducts: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetProducts: query: %w", err)
	}
	defer rows.Close()

	products := make([]types.Product, 0)

	for rows.Next() {
		var product types.Product

		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
		); err != nil {
			return nil, fmt.Errorf("GetProducts: scan row: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetProducts: rows iteration: %w", err)
	}

	return products, nil
}

func (s *SQLite) SaveBlob(kind string, data []byte) (int64, error) {
	// SQLite refuses NULL in a NOT NULL column, and database/sql sends
	// a nil []byte as NULL.
	if data == nil {
		data = []byte{}
	}

	result, err := s.Db.Exec("INSERT INTO blobs (kind, data) VALUES (?, ?)", kind, data)
	if err != nil {
		return 0, fmt.Errorf("SaveBlob: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("SaveBlob: last insert id: %w", err)
	}

	return lastID, nil
}

func (s *SQLite) GetBlobByID(id int64) (string, []byte, error) {
	var (
		kind string
		data []byte
	)

	err := s.Db.QueryRow("SELECT kind, data FROM blobs WHERE id = ?", id).Scan(&kind, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, fmt.Errorf("no blob found with id %d: %w", id, storage.ErrNotFound)
		}
		return "", nil, fmt.Errorf("GetBlobByID: scan: %w", err)
	}

	return kind, data, nil
}

// Close releases the connection pool. For ":memory:" this also discards
// the database.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
