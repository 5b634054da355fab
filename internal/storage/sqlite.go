package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

const sqliteDateFormat = "2006-01-02"

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	number  INTEGER PRIMARY KEY,
	name    TEXT NOT NULL,
	balance TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	position       INTEGER PRIMARY KEY,
	account_number INTEGER NOT NULL,
	description    TEXT NOT NULL,
	category       TEXT NOT NULL,
	kind           TEXT NOT NULL,
	date           TEXT NOT NULL,
	amount         TEXT NOT NULL
);
`

// SQLiteStore keeps the ledger and accounts in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and its schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL", path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// LoadTransactions returns the ledger in position order.
func (s *SQLiteStore) LoadTransactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT account_number, description, category, kind, date, amount
		FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		var (
			account                            int
			desc, category, kind, date, amount string
		)
		if err := rows.Scan(&account, &desc, &category, &kind, &date, &amount); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		tx, err := transactionFromRow(account, desc, category, kind, date, amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", len(txs)+1, err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// SaveTransactions replaces the stored ledger in one SQL transaction.
func (s *SQLiteStore) SaveTransactions(txs []model.Transaction) error {
	return s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM transactions`); err != nil {
			return fmt.Errorf("clearing transactions: %w", err)
		}
		stmt, err := tx.Prepare(`INSERT INTO transactions
			(position, account_number, description, category, kind, date, amount)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("preparing insert: %w", err)
		}
		defer stmt.Close()

		for i, t := range txs {
			if _, err := stmt.Exec(i+1, t.AccountNumber, t.Description, t.Category.String(),
				string(t.Type), t.Date.Format(sqliteDateFormat), t.Amount.String()); err != nil {
				return fmt.Errorf("inserting transaction %d: %w", i+1, err)
			}
		}
		return nil
	})
}

// LoadAccounts returns the accounts ordered by number.
func (s *SQLiteStore) LoadAccounts() ([]model.Account, error) {
	rows, err := s.db.Query(`SELECT number, name, balance FROM accounts ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var accts []model.Account
	for rows.Next() {
		var (
			acct    model.Account
			balance string
		)
		if err := rows.Scan(&acct.Number, &acct.Name, &balance); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		acct.Balance, err = decimal.NewFromString(balance)
		if err != nil {
			return nil, fmt.Errorf("parsing balance %q of account %d: %w", balance, acct.Number, err)
		}
		accts = append(accts, acct)
	}
	return accts, rows.Err()
}

// SaveAccounts replaces the stored accounts in one SQL transaction.
func (s *SQLiteStore) SaveAccounts(accts []model.Account) error {
	return s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM accounts`); err != nil {
			return fmt.Errorf("clearing accounts: %w", err)
		}
		for _, a := range accts {
			if _, err := tx.Exec(`INSERT INTO accounts (number, name, balance) VALUES (?, ?, ?)`,
				a.Number, a.Name, a.Balance.String()); err != nil {
				return fmt.Errorf("inserting account %d: %w", a.Number, err)
			}
		}
		return nil
	})
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// inTx runs fn in a transaction, rolling back if it fails.
func (s *SQLiteStore) inTx(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%v, rollback: %w", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func transactionFromRow(account int, desc, category, kind, date, amount string) (model.Transaction, error) {
	c, ok := model.ParseCategory(category)
	if !ok {
		return model.Transaction{}, fmt.Errorf("parsing category %q", category)
	}
	typ, ok := model.ParseTransactionType(kind)
	if !ok {
		return model.Transaction{}, fmt.Errorf("parsing kind %q", kind)
	}
	on, err := time.Parse(sqliteDateFormat, date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	return model.Transaction{
		Description:   desc,
		Category:      c,
		Type:          typ,
		Date:          on,
		Amount:        amt,
		AccountNumber: account,
	}, nil
}
