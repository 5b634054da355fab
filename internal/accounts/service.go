// Package accounts is the account directory: named balance holders addressed by number.
package accounts

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

// ErrUnknownAccount reports an account number that is not in the directory.
var ErrUnknownAccount = errors.New("unknown account")

// Directory provides in-memory lookup and balance updates over the accounts.
type Directory struct {
	accounts []*model.Account
	byNumber map[int]*model.Account
}

// NewDirectory creates a Directory from a slice of accounts.
func NewDirectory(accounts []model.Account) *Directory {
	d := &Directory{byNumber: make(map[int]*model.Account, len(accounts))}
	for _, a := range accounts {
		acct := a
		d.accounts = append(d.accounts, &acct)
		d.byNumber[acct.Number] = &acct
	}
	return d
}

// All returns a copy of every account in creation order.
func (d *Directory) All() []model.Account {
	out := make([]model.Account, len(d.accounts))
	for i, a := range d.accounts {
		out[i] = *a
	}
	return out
}

// Len returns the number of accounts.
func (d *Directory) Len() int { return len(d.accounts) }

// Get returns an account by number.
func (d *Directory) Get(number int) (model.Account, error) {
	a, ok := d.byNumber[number]
	if !ok {
		return model.Account{}, fmt.Errorf("%w: %d", ErrUnknownAccount, number)
	}
	return *a, nil
}

// Exists reports whether an account number exists.
func (d *Directory) Exists(number int) bool {
	_, ok := d.byNumber[number]
	return ok
}

// Numbers returns the account numbers in ascending order.
func (d *Directory) Numbers() []int {
	nums := make([]int, 0, len(d.accounts))
	for _, a := range d.accounts {
		nums = append(nums, a.Number)
	}
	sort.Ints(nums)
	return nums
}

// GetBalance returns the current balance of an account.
func (d *Directory) GetBalance(number int) (decimal.Decimal, error) {
	a, ok := d.byNumber[number]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrUnknownAccount, number)
	}
	return a.Balance, nil
}

// SetBalance overwrites the balance of an account.
func (d *Directory) SetBalance(number int, balance decimal.Decimal) error {
	a, ok := d.byNumber[number]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAccount, number)
	}
	a.Balance = balance
	return nil
}

// Add creates an account with a zero balance and the next free number.
func (d *Directory) Add(name string) model.Account {
	next := 1
	for _, a := range d.accounts {
		if a.Number >= next {
			next = a.Number + 1
		}
	}
	acct := &model.Account{Number: next, Name: name, Balance: decimal.Zero}
	d.accounts = append(d.accounts, acct)
	d.byNumber[acct.Number] = acct
	return *acct
}

// Rename changes the name of an account.
func (d *Directory) Rename(number int, name string) error {
	a, ok := d.byNumber[number]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAccount, number)
	}
	a.Name = name
	return nil
}

// Remove deletes an account and returns it.
func (d *Directory) Remove(number int) (model.Account, error) {
	a, ok := d.byNumber[number]
	if !ok {
		return model.Account{}, fmt.Errorf("%w: %d", ErrUnknownAccount, number)
	}
	for i, x := range d.accounts {
		if x.Number == number {
			d.accounts = append(d.accounts[:i], d.accounts[i+1:]...)
			break
		}
	}
	delete(d.byNumber, number)
	return *a, nil
}
