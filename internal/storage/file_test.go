package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

func sampleAccounts() []model.Account {
	return []model.Account{
		{Number: 1, Name: "Main", Balance: dec("11.49")},
		{Number: 2, Name: "Card", Balance: dec("-64")},
	}
}

func testStoreRoundTrip(t *testing.T, s Store) {
	t.Helper()

	txs, err := s.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, txs, "fresh store has no transactions")

	accts, err := s.LoadAccounts()
	require.NoError(t, err)
	assert.Empty(t, accts, "fresh store has no accounts")

	require.NoError(t, s.SaveTransactions(sampleTransactions()))
	require.NoError(t, s.SaveAccounts(sampleAccounts()))

	txs, err = s.LoadTransactions()
	require.NoError(t, err)
	want := sampleTransactions()
	require.Len(t, txs, len(want))
	for i := range want {
		assertSameTransaction(t, want[i], txs[i])
	}

	accts, err = s.LoadAccounts()
	require.NoError(t, err)
	require.Len(t, accts, 2)
	assert.Equal(t, "Card", accts[1].Name)
	assert.True(t, accts[1].Balance.Equal(dec("-64")))

	// Saving a shorter ledger replaces rather than appends.
	require.NoError(t, s.SaveTransactions(want[:1]))
	txs, err = s.LoadTransactions()
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	defer s.Close()

	testStoreRoundTrip(t, s)

	_, err = os.Stat(filepath.Join(dir, LedgerFile))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, AccountsFile))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(BackendFile, filepath.Join(dir, "data"), "")
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	_, err = Open("postgres", dir, "")
	assert.Error(t, err)
}
