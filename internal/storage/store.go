// Package storage persists the ledger and the account directory.
package storage

import (
	"fmt"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Store loads and saves the ledger and accounts.
type Store interface {
	LoadTransactions() ([]model.Transaction, error)
	SaveTransactions(txs []model.Transaction) error
	LoadAccounts() ([]model.Account, error)
	SaveAccounts(accounts []model.Account) error
	Close() error
}

// Open returns the store for backend. dataDir holds the flat files; sqlitePath
// is the database file for the sqlite backend.
func Open(backend, dataDir, sqlitePath string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dataDir)
	case BackendSQLite:
		return OpenSQLite(sqlitePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
