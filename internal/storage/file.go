package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/budgetbuddy/internal/accounts"
	"github.com/cleared-dev/budgetbuddy/internal/model"
)

const (
	// LedgerFile is the flat ledger file inside the data directory.
	LedgerFile = "data.txt"
	// AccountsFile is the account directory file inside the data directory.
	AccountsFile = "accounts.csv"
)

// FileStore keeps the ledger as one line per transaction and the accounts as CSV.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the data directory.
func (s *FileStore) Dir() string { return s.dir }

// ReadTransactions reads ledger lines from r, skipping blank lines.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	var txs []model.Transaction
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		row++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		tx, err := unmarshalLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", row, err)
		}
		txs = append(txs, tx)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return txs, nil
}

// WriteTransactions writes one ledger line per transaction.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	bw := bufio.NewWriter(w)
	for i, tx := range txs {
		if _, err := fmt.Fprintln(bw, marshalLine(tx)); err != nil {
			return fmt.Errorf("writing line %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

// LoadTransactions reads data.txt. A missing file is an empty ledger.
func (s *FileStore) LoadTransactions() ([]model.Transaction, error) {
	path := filepath.Join(s.dir, LedgerFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	txs, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return txs, nil
}

// SaveTransactions rewrites data.txt.
func (s *FileStore) SaveTransactions(txs []model.Transaction) error {
	return s.replace(LedgerFile, func(w io.Writer) error {
		return WriteTransactions(w, txs)
	})
}

// LoadAccounts reads accounts.csv. A missing file is an empty directory.
func (s *FileStore) LoadAccounts() ([]model.Account, error) {
	path := filepath.Join(s.dir, AccountsFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening accounts %s: %w", path, err)
	}
	defer f.Close()

	accts, err := accounts.ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts %s: %w", path, err)
	}
	return accts, nil
}

// SaveAccounts rewrites accounts.csv.
func (s *FileStore) SaveAccounts(accts []model.Account) error {
	return s.replace(AccountsFile, func(w io.Writer) error {
		return accounts.WriteAccounts(w, accts)
	})
}

// Close is a no-op; files are closed after every operation.
func (s *FileStore) Close() error { return nil }

// replace writes name through a temp file and renames it into place.
func (s *FileStore) replace(name string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
