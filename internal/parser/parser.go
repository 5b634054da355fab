// Package parser turns raw command lines into transactions and command arguments.
// It never touches the ledger or the accounts.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

// Markers introducing each field of an add or edit line.
const (
	MarkerAccount     = "/a/"
	MarkerType        = "/t/"
	MarkerDescription = "/n/"
	MarkerAmount      = "/$/"
	MarkerDate        = "/d/"
	MarkerCategory    = "/c/"
)

// RequiredMarkers must all appear in an add or edit line.
var RequiredMarkers = []string{MarkerAccount, MarkerType, MarkerDescription, MarkerAmount, MarkerDate}

var allMarkers = []string{MarkerAccount, MarkerType, MarkerDescription, MarkerAmount, MarkerDate, MarkerCategory}

// Help topics.
const (
	TopicAll      = "all"
	TopicAdd      = "add"
	TopicDelete   = "delete"
	TopicEdit     = "edit"
	TopicList     = "list"
	TopicSearch   = "search"
	TopicAccounts = "accounts"
	TopicInsights = "insights"
)

var topics = map[string]bool{
	TopicAll: true, TopicAdd: true, TopicDelete: true, TopicEdit: true,
	TopicList: true, TopicSearch: true, TopicAccounts: true, TopicInsights: true,
}

// CheckMarkers fails with ErrSyntax naming the first required marker absent from line.
func CheckMarkers(line string) error {
	for _, m := range RequiredMarkers {
		if !strings.Contains(line, m) {
			return fmt.Errorf("%w: missing %s", ErrSyntax, m)
		}
	}
	return nil
}

// ParseTransaction parses an add line into a transaction owned by accountNumber.
// The category is left unset when the line has no /c/ marker.
func ParseTransaction(line string, accountNumber int) (model.Transaction, error) {
	if err := CheckMarkers(line); err != nil {
		return model.Transaction{}, err
	}

	typ, ok := model.ParseTransactionType(Field(line, MarkerType))
	if !ok {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrTransactionType, Field(line, MarkerType))
	}

	desc := Field(line, MarkerDescription)
	if desc == "" {
		return model.Transaction{}, fmt.Errorf("%w: description is empty", ErrSyntax)
	}

	amount, err := ParseAmount(Field(line, MarkerAmount))
	if err != nil {
		return model.Transaction{}, err
	}

	rawDate := Field(line, MarkerDate)
	date, err := model.ParseDate(rawDate)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %q want dd-MM-yyyy", ErrDate, rawDate)
	}

	category := model.CategoryUnset
	if strings.Contains(line, MarkerCategory) {
		raw := Field(line, MarkerCategory)
		c, ok := model.ParseCategory(raw)
		if !ok {
			return model.Transaction{}, fmt.Errorf("%w: %q", ErrCategory, raw)
		}
		category = c
	}

	return model.Transaction{
		Description:   desc,
		Category:      category,
		Type:          typ,
		Date:          date,
		Amount:        amount,
		AccountNumber: accountNumber,
	}, nil
}

// ParseTransactionType parses the replacement line of an edit, attaching the
// result to accountNumber, which may differ from the record being replaced.
func ParseTransactionType(line string, accountNumber int) (model.Transaction, error) {
	return ParseTransaction(line, accountNumber)
}

// ParseAmount parses a non-negative decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, &NumericFormatError{Field: "amount", Text: s}
	}
	return amount, nil
}

// ParseAccountNumber extracts the /a/ account number of an add line.
func ParseAccountNumber(line string) (int, error) {
	raw := Field(line, MarkerAccount)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &NumericFormatError{Field: "account number", Text: raw}
	}
	return n, nil
}

// ParseIndex parses the 1-based index following command, e.g. "delete 3".
func ParseIndex(line, command string) (int, error) {
	line = strings.TrimSpace(line)
	if len(line) <= len(command) {
		return 0, fmt.Errorf("%w: %s index", ErrEmptyArgument, command)
	}
	data := strings.TrimSpace(line[len(command):])
	if data == "" {
		return 0, fmt.Errorf("%w: %s index", ErrEmptyArgument, command)
	}
	n, err := strconv.Atoi(data)
	if err != nil {
		return 0, &NumericFormatError{Field: command + " index", Text: data}
	}
	return n, nil
}

// ParseOption parses a menu choice such as the list view option.
func ParseOption(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &NumericFormatError{Field: "option", Text: s}
	}
	return n, nil
}

// ParseHelpCommand returns the topic named by the second token of line,
// or TopicAll when it is absent or unknown.
func ParseHelpCommand(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return TopicAll
	}
	topic := strings.ToLower(fields[1])
	if !topics[topic] {
		return TopicAll
	}
	return topic
}

// ParseSearchTerm returns everything after the search command, trimmed.
func ParseSearchTerm(line, command string) (string, error) {
	line = strings.TrimSpace(line)
	term := ""
	if len(line) > len(command) {
		term = strings.TrimSpace(line[len(command):])
	}
	if term == "" {
		return "", fmt.Errorf("%w: search term", ErrEmptyArgument)
	}
	return term, nil
}

// Field returns the trimmed text following marker up to the next marker or
// the end of line. It returns "" when marker is absent.
func Field(line, marker string) string {
	start := strings.Index(line, marker)
	if start < 0 {
		return ""
	}
	start += len(marker)
	end := len(line)
	for _, m := range allMarkers {
		if i := strings.Index(line[start:], m); i >= 0 && start+i < end {
			end = start + i
		}
	}
	return strings.TrimSpace(line[start:end])
}
