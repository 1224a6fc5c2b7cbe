// Package catalog implements the database: a named container of tables.
// The catalog lock protects only the table-name map and is released before
// any per-table lock is taken, so operations on different tables run in
// parallel while operations on one table serialize on that table's own lock.
package catalog

import (
	"sort"
	"sync"

	"relstore/pkg/catalog/schema"
	"relstore/pkg/dberr"
	"relstore/pkg/index"
	"relstore/pkg/logging"
	"relstore/pkg/table"
)

// Database is a named collection of tables.
type Database struct {
	mu     sync.RWMutex
	name   string
	tables map[string]*table.Table
}

// NewDatabase creates an empty database.
func NewDatabase(name string) *Database {
	logging.WithComponent("catalog").Info("database opened", "name", name)
	return &Database{
		name:   name,
		tables: make(map[string]*table.Table),
	}
}

// Name returns the database name.
func (db *Database) Name() string {
	return db.name
}

// CreateTable creates an empty table with the given columns. Creating a
// table under a taken name fails with AlreadyExists; schema validation
// errors propagate unchanged.
func (db *Database) CreateTable(name string, columns []schema.ColumnMetadata) (*table.Table, error) {
	s, err := schema.NewSchema(name, columns)
	if err != nil {
		return nil, dberr.Wrap(err, "CreateTable", "catalog")
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.tables[name]; exists {
		return nil, dberr.Newf(dberr.KindAlreadyExists,
			"table %q already exists", name)
	}

	t := table.New(name, s)
	db.tables[name] = t

	logging.WithTable(name).Info("table created", "columns", s.NumFields())
	return t, nil
}

// DropTable removes a table, releasing all its storage and indexes.
// Dropping a nonexistent table fails with NotFound.
func (db *Database) DropTable(name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.tables[name]; !exists {
		return dberr.Newf(dberr.KindNotFound, "table %q does not exist", name)
	}

	delete(db.tables, name)

	logging.WithTable(name).Info("table dropped")
	return nil
}

// GetTable looks up a table by name.
func (db *Database) GetTable(name string) (*table.Table, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, exists := db.tables[name]
	if !exists {
		return nil, dberr.Newf(dberr.KindNotFound, "table %q does not exist", name)
	}
	return t, nil
}

// CreateIndex builds an index over a column of an existing table. The
// catalog lock is released before the table populates the index under its
// own lock.
func (db *Database) CreateIndex(tableName, column string, kind index.Kind) error {
	t, err := db.GetTable(tableName)
	if err != nil {
		return dberr.Wrap(err, "CreateIndex", "catalog")
	}
	return t.CreateIndex(column, kind)
}

// DropIndex destroys the index on a column of an existing table.
func (db *Database) DropIndex(tableName, column string) error {
	t, err := db.GetTable(tableName)
	if err != nil {
		return dberr.Wrap(err, "DropIndex", "catalog")
	}
	return t.DropIndex(column)
}

// ListTables returns all table names in sorted order.
func (db *Database) ListTables() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	names := make([]string, 0, len(db.tables))
	for name := range db.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
