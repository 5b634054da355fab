package accounts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

func newTestDirectory() *Directory {
	return NewDirectory([]model.Account{
		{Number: 1, Name: "Main", Balance: decimal.RequireFromString("10")},
		{Number: 3, Name: "Savings", Balance: decimal.Zero},
	})
}

func TestGetExists(t *testing.T) {
	d := newTestDirectory()

	acct, err := d.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Main", acct.Name)

	_, err = d.Get(9)
	assert.ErrorIs(t, err, ErrUnknownAccount)

	assert.True(t, d.Exists(3))
	assert.False(t, d.Exists(2))
	assert.Equal(t, []int{1, 3}, d.Numbers())
}

func TestBalance(t *testing.T) {
	d := newTestDirectory()

	require.NoError(t, d.SetBalance(3, decimal.RequireFromString("42.10")))
	b, err := d.GetBalance(3)
	require.NoError(t, err)
	assert.True(t, b.Equal(decimal.RequireFromString("42.10")))

	assert.ErrorIs(t, d.SetBalance(7, decimal.Zero), ErrUnknownAccount)
	_, err = d.GetBalance(7)
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestAddAssignsNextNumber(t *testing.T) {
	d := newTestDirectory()

	acct := d.Add("Wallet")
	assert.Equal(t, 4, acct.Number)
	assert.True(t, acct.Balance.IsZero())
	assert.Equal(t, 3, d.Len())

	empty := NewDirectory(nil)
	assert.Equal(t, 1, empty.Add("Main").Number)
}

func TestRenameRemove(t *testing.T) {
	d := newTestDirectory()

	require.NoError(t, d.Rename(3, "Rainy day"))
	acct, err := d.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Rainy day", acct.Name)

	removed, err := d.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "Main", removed.Name)
	assert.False(t, d.Exists(1))
	assert.Len(t, d.All(), 1)

	_, err = d.Remove(1)
	assert.ErrorIs(t, err, ErrUnknownAccount)
	assert.ErrorIs(t, d.Rename(1, "x"), ErrUnknownAccount)
}

func TestAllReturnsCopies(t *testing.T) {
	d := newTestDirectory()
	all := d.All()
	all[0].Name = "changed"

	acct, err := d.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Main", acct.Name)
}
