package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the dd-MM-yyyy layout used for user input and the ledger file.
const DateFormat = "02-01-2006"

// TransactionType determines the sign a transaction applies to its account balance.
type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

// Transaction is one income or expense entry in the ledger.
type Transaction struct {
	Description   string
	Category      Category // CategoryUnset until resolved
	Type          TransactionType
	Date          time.Time       // midnight UTC
	Amount        decimal.Decimal // non-negative magnitude
	AccountNumber int
}

// SignedAmount returns the balance effect of the transaction:
// +Amount for income, -Amount for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// HasCategory reports whether the category has been resolved.
func (t Transaction) HasCategory() bool {
	return t.Category != CategoryUnset
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s | %s | %s | %s | $%s | account %d",
		t.Description, t.Category, t.Type, t.Date.Format(DateFormat), t.Amount.StringFixed(2), t.AccountNumber)
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a dd-MM-yyyy date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q want format dd-MM-yyyy: %w", s, err)
	}
	return d, nil
}

// ParseTransactionType resolves "income" or "expense" (any case).
func ParseTransactionType(s string) (TransactionType, bool) {
	switch {
	case equalFold(s, string(TypeIncome)):
		return TypeIncome, true
	case equalFold(s, string(TypeExpense)):
		return TypeExpense, true
	}
	return "", false
}

func equalFold(a, b string) bool { return strings.EqualFold(strings.TrimSpace(a), b) }
