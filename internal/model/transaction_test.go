package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("10.50")

	income := Transaction{Type: TypeIncome, Amount: amount}
	expense := Transaction{Type: TypeExpense, Amount: amount}

	assert.True(t, income.SignedAmount().Equal(amount))
	assert.True(t, expense.SignedAmount().Equal(amount.Neg()))
}

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		in   string
		want TransactionType
		ok   bool
	}{
		{"Income", TypeIncome, true},
		{"income", TypeIncome, true},
		{" EXPENSE ", TypeExpense, true},
		{"refund", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseTransactionType(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseTransactionType(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseTransactionType(%q)", tt.in)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("01-02-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("2024-02-01")
	assert.Error(t, err)
}

func TestDay(t *testing.T) {
	got := Day(time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"1", CategoryDining, true},
		{"7", CategoryOthers, true},
		{"groceries", CategoryGroceries, true},
		{"ENTERTAINMENT", CategoryEntertainment, true},
		{"0", CategoryUnset, false},
		{"8", Category(8), false},
		{"rent", CategoryUnset, false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseCategory(%q)", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseCategory(%q)", tt.in)
		}
	}
}

func TestCategoryNames(t *testing.T) {
	for i, c := range Categories() {
		assert.Equal(t, i+1, c.Number())
		assert.NotEqual(t, "UNSET", c.String())
	}
	assert.Equal(t, "UNSET", CategoryUnset.String())
}
