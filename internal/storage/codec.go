package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

const (
	fieldSep  = " ,"
	amountSep = " ."
)

// MarshalRecord converts a transaction to its ledger line:
// "<description> ,<category> ,<Income|Expense> ,<dd-MM-yyyy> .<amount>".
// Fields must not contain commas.
func MarshalRecord(tx model.Transaction) string {
	return tx.Description + fieldSep +
		tx.Category.String() + fieldSep +
		string(tx.Type) + fieldSep +
		tx.Date.Format(model.DateFormat) + amountSep +
		tx.Amount.String()
}

// UnmarshalRecord parses a ledger line written by MarshalRecord and attaches
// the result to account.
func UnmarshalRecord(line string, account int) (model.Transaction, error) {
	fields := strings.SplitN(line, fieldSep, 4)
	if len(fields) != 4 {
		return model.Transaction{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}

	category, ok := model.ParseCategory(fields[1])
	if !ok {
		return model.Transaction{}, fmt.Errorf("parsing category %q", fields[1])
	}

	typ, ok := model.ParseTransactionType(fields[2])
	if !ok {
		return model.Transaction{}, fmt.Errorf("parsing type %q", fields[2])
	}

	rawDate, rawAmount, found := strings.Cut(fields[3], amountSep)
	if !found {
		return model.Transaction{}, fmt.Errorf("missing amount in %q", fields[3])
	}

	date, err := model.ParseDate(rawDate)
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rawAmount, err)
	}

	return model.Transaction{
		Description:   fields[0],
		Category:      category,
		Type:          typ,
		Date:          date,
		Amount:        amount,
		AccountNumber: account,
	}, nil
}

// marshalLine prefixes a record with its account number for the ledger file.
func marshalLine(tx model.Transaction) string {
	return strconv.Itoa(tx.AccountNumber) + fieldSep + MarshalRecord(tx)
}

func unmarshalLine(line string) (model.Transaction, error) {
	rawAccount, record, found := strings.Cut(line, fieldSep)
	if !found {
		return model.Transaction{}, fmt.Errorf("missing account number")
	}
	account, err := strconv.Atoi(rawAccount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing account number %q: %w", rawAccount, err)
	}
	return UnmarshalRecord(record, account)
}
