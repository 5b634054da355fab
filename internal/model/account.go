package model

import "github.com/shopspring/decimal"

// Account is a named balance holder that transactions reference by number.
type Account struct {
	Number  int
	Name    string
	Balance decimal.Decimal
}
