package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NewAccount holds the arguments of add-acc.
type NewAccount struct {
	Name           string
	OpeningBalance decimal.Decimal
	HasOpening     bool
}

// ParseAddAccount parses "add-acc /n/<name> [/$/<opening balance>]".
func ParseAddAccount(line string) (NewAccount, error) {
	if !strings.Contains(line, MarkerDescription) {
		return NewAccount{}, fmt.Errorf("%w: missing %s", ErrSyntax, MarkerDescription)
	}
	name := Field(line, MarkerDescription)
	if name == "" {
		return NewAccount{}, fmt.Errorf("%w: account name is empty", ErrSyntax)
	}
	acct := NewAccount{Name: name}
	if strings.Contains(line, MarkerAmount) {
		amount, err := ParseAmount(Field(line, MarkerAmount))
		if err != nil {
			return NewAccount{}, err
		}
		acct.OpeningBalance = amount
		acct.HasOpening = true
	}
	return acct, nil
}

// ParseRenameAccount parses "edit-acc /a/<number> /n/<new name>".
func ParseRenameAccount(line string) (int, string, error) {
	for _, m := range []string{MarkerAccount, MarkerDescription} {
		if !strings.Contains(line, m) {
			return 0, "", fmt.Errorf("%w: missing %s", ErrSyntax, m)
		}
	}
	raw := Field(line, MarkerAccount)
	number, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "", &NumericFormatError{Field: "account number", Text: raw}
	}
	name := Field(line, MarkerDescription)
	if name == "" {
		return 0, "", fmt.Errorf("%w: account name is empty", ErrSyntax)
	}
	return number, name, nil
}
