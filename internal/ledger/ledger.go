// Package ledger holds the ordered collection of transactions and keeps
// account balances in step with every mutation.
package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budgetbuddy/internal/model"
	"github.com/cleared-dev/budgetbuddy/internal/parser"
)

// BalanceBook resolves an account number to a mutable balance.
type BalanceBook interface {
	GetBalance(number int) (decimal.Decimal, error)
	SetBalance(number int, balance decimal.Decimal) error
}

// Ledger is the ordered, index-addressed list of transactions across all accounts.
// User-facing indices are 1-based.
type Ledger struct {
	transactions []model.Transaction
	book         BalanceBook
}

// New creates a Ledger over existing transactions. Balances are not touched;
// call Reconcile to derive them from the transactions.
func New(book BalanceBook, transactions []model.Transaction) *Ledger {
	txs := make([]model.Transaction, len(transactions))
	copy(txs, transactions)
	return &Ledger{transactions: txs, book: book}
}

// Transactions returns a copy of the collection in insertion order.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Get returns the transaction at a 1-based index.
func (l *Ledger) Get(index int) (model.Transaction, error) {
	if err := l.checkIndex(index); err != nil {
		return model.Transaction{}, err
	}
	return l.transactions[index-1], nil
}

// Append adds tx to the end of the collection without touching any balance.
func (l *Ledger) Append(tx model.Transaction) {
	l.transactions = append(l.transactions, tx)
}

// Add appends a complete transaction and applies its signed amount to its
// account. It returns the account's new balance.
func (l *Ledger) Add(tx model.Transaction) (decimal.Decimal, error) {
	if !tx.HasCategory() {
		return decimal.Zero, ErrNeedsCategory
	}
	balance, err := l.book.GetBalance(tx.AccountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	balance = balance.Add(tx.SignedAmount())
	if err := l.book.SetBalance(tx.AccountNumber, balance); err != nil {
		return decimal.Zero, err
	}
	l.Append(tx)
	return balance, nil
}

// Removal describes a deleted transaction and its account's new balance.
type Removal struct {
	Transaction model.Transaction
	Balance     decimal.Decimal
}

// Remove deletes the transaction at a 1-based index and reverses its effect on
// its account. An invalid index changes nothing.
func (l *Ledger) Remove(index int) (Removal, error) {
	if err := l.checkIndex(index); err != nil {
		return Removal{}, err
	}
	tx := l.transactions[index-1]

	balance, err := l.book.GetBalance(tx.AccountNumber)
	if err != nil {
		return Removal{}, err
	}
	balance = balance.Sub(tx.SignedAmount())
	if err := l.book.SetBalance(tx.AccountNumber, balance); err != nil {
		return Removal{}, err
	}

	l.transactions = append(l.transactions[:index-1], l.transactions[index:]...)
	return Removal{Transaction: tx, Balance: balance}, nil
}

// Edit describes a replaced transaction.
type Edit struct {
	Old model.Transaction
	New model.Transaction
}

// Edit replaces the transaction at a 1-based index with one parsed from raw.
// The old record's effect is reversed and the new one applied, possibly on a
// different account. When raw has no category the old one is kept. Any
// failure leaves the ledger and balances unchanged.
func (l *Ledger) Edit(index int, raw string) (Edit, error) {
	old, err := l.Get(index)
	if err != nil {
		return Edit{}, err
	}

	if err := parser.CheckMarkers(raw); err != nil {
		return Edit{}, fmt.Errorf("%w: %w", ErrEditData, err)
	}
	number, err := parser.ParseAccountNumber(raw)
	if err != nil {
		return Edit{}, fmt.Errorf("%w: %w", ErrEditData, err)
	}
	tx, err := parser.ParseTransactionType(raw, number)
	if err != nil {
		return Edit{}, fmt.Errorf("%w: %w", ErrEditData, err)
	}
	if !tx.HasCategory() {
		tx.Category = old.Category
	}

	oldBalance, err := l.book.GetBalance(old.AccountNumber)
	if err != nil {
		return Edit{}, err
	}
	if tx.AccountNumber == old.AccountNumber {
		balance := oldBalance.Sub(old.SignedAmount()).Add(tx.SignedAmount())
		if err := l.book.SetBalance(old.AccountNumber, balance); err != nil {
			return Edit{}, err
		}
	} else {
		newBalance, err := l.book.GetBalance(tx.AccountNumber)
		if err != nil {
			return Edit{}, err
		}
		if err := l.book.SetBalance(old.AccountNumber, oldBalance.Sub(old.SignedAmount())); err != nil {
			return Edit{}, err
		}
		if err := l.book.SetBalance(tx.AccountNumber, newBalance.Add(tx.SignedAmount())); err != nil {
			return Edit{}, err
		}
	}

	l.transactions[index-1] = tx
	return Edit{Old: old, New: tx}, nil
}

// RemoveAccount drops every transaction referencing account and returns how
// many were removed. Balances are left alone since the account is going away.
func (l *Ledger) RemoveAccount(account int) int {
	kept := l.transactions[:0]
	removed := 0
	for _, tx := range l.transactions {
		if tx.AccountNumber == account {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	l.transactions = kept
	return removed
}

// Entry is a transaction together with its 1-based ledger index.
type Entry struct {
	Index       int
	Transaction model.Transaction
}

// Search returns transactions whose description contains term (case-insensitive)
// or whose category name equals term (case-insensitive).
func (l *Ledger) Search(term string) []Entry {
	needle := strings.ToLower(strings.TrimSpace(term))
	var out []Entry
	for i, tx := range l.transactions {
		if strings.Contains(strings.ToLower(tx.Description), needle) ||
			strings.EqualFold(tx.Category.String(), needle) {
			out = append(out, Entry{Index: i + 1, Transaction: tx})
		}
	}
	return out
}

// Adjustment records an account whose stored balance disagreed with its transactions.
type Adjustment struct {
	Account  int
	Stored   decimal.Decimal
	Computed decimal.Decimal
}

// Reconcile sets every account in numbers to the sum of the signed amounts of
// its transactions, returning the accounts whose balance changed. A transaction
// referencing an account outside numbers is an error.
func (l *Ledger) Reconcile(numbers []int) ([]Adjustment, error) {
	sums := make(map[int]decimal.Decimal, len(numbers))
	for _, n := range numbers {
		sums[n] = decimal.Zero
	}
	for i, tx := range l.transactions {
		sum, ok := sums[tx.AccountNumber]
		if !ok {
			return nil, fmt.Errorf("transaction %d references unknown account %d", i+1, tx.AccountNumber)
		}
		sums[tx.AccountNumber] = sum.Add(tx.SignedAmount())
	}

	var adjustments []Adjustment
	for _, n := range numbers {
		stored, err := l.book.GetBalance(n)
		if err != nil {
			return nil, err
		}
		if stored.Equal(sums[n]) {
			continue
		}
		if err := l.book.SetBalance(n, sums[n]); err != nil {
			return nil, err
		}
		adjustments = append(adjustments, Adjustment{Account: n, Stored: stored, Computed: sums[n]})
	}
	return adjustments, nil
}

func (l *Ledger) checkIndex(index int) error {
	if index < 1 || index > len(l.transactions) {
		return &IndexError{Index: index, Size: len(l.transactions)}
	}
	return nil
}
