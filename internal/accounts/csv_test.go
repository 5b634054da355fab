package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

func TestRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{Number: 1, Name: "Main", Balance: decimal.RequireFromString("120.50")},
		{Number: 4, Name: "Travel fund", Balance: decimal.RequireFromString("-3.25")},
	}

	var buf bytes.Buffer
	err := WriteAccounts(&buf, accounts)
	require.NoError(t, err)

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range accounts {
		assert.Equal(t, accounts[i].Number, got[i].Number)
		assert.Equal(t, accounts[i].Name, got[i].Name)
		assert.True(t, accounts[i].Balance.Equal(got[i].Balance), "balance of %d", accounts[i].Number)
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, nil))
	assert.Equal(t, "account_number,name,balance\n", buf.String())
}

func TestReadEmpty(t *testing.T) {
	got, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalAccount_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"wrong field count", []string{"1", "Main"}},
		{"bad number", []string{"one", "Main", "0.00"}},
		{"bad balance", []string{"1", "Main", "lots"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalAccount(tt.record)
			assert.Error(t, err)
		})
	}
}
