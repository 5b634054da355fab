package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budgetbuddy/internal/model"
)

func TestParseTransaction(t *testing.T) {
	line := "add /a/1 /t/Income /n/Lunch /$/10.50 /d/01-01-2024 /c/1"
	tx, err := ParseTransaction(line, 1)
	require.NoError(t, err)

	assert.Equal(t, "Lunch", tx.Description)
	assert.Equal(t, model.TypeIncome, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("10.50")))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, model.CategoryDining, tx.Category)
	assert.Equal(t, 1, tx.AccountNumber)
}

func TestParseTransaction_MarkerOrder(t *testing.T) {
	line := "add /d/15-03-2024 /$/3 /n/Bus ticket home /t/expense /a/2"
	tx, err := ParseTransaction(line, 2)
	require.NoError(t, err)

	assert.Equal(t, "Bus ticket home", tx.Description)
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.False(t, tx.HasCategory(), "category should be unset without /c/")
}

func TestParseTransaction_MissingMarker(t *testing.T) {
	for _, m := range RequiredMarkers {
		full := map[string]string{
			MarkerAccount:     "/a/1",
			MarkerType:        "/t/Income",
			MarkerDescription: "/n/Lunch",
			MarkerAmount:      "/$/10",
			MarkerDate:        "/d/01-01-2024",
		}
		line := "add"
		for _, k := range RequiredMarkers {
			if k != m {
				line += " " + full[k]
			}
		}
		_, err := ParseTransaction(line, 1)
		require.ErrorIs(t, err, ErrSyntax, "missing %s", m)
		assert.Contains(t, err.Error(), m)
	}
}

func TestParseTransaction_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"bad type", "add /a/1 /t/Refund /n/Lunch /$/10 /d/01-01-2024", ErrTransactionType},
		{"bad date", "add /a/1 /t/Income /n/Lunch /$/10 /d/2024-01-01", ErrDate},
		{"empty description", "add /a/1 /t/Income /n/ /$/10 /d/01-01-2024", ErrSyntax},
		{"bad category", "add /a/1 /t/Income /n/Lunch /$/10 /d/01-01-2024 /c/rent", ErrCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTransaction(tt.line, 1)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseTransaction_BadAmount(t *testing.T) {
	for _, amount := range []string{"ten", "-5", ""} {
		_, err := ParseTransaction("add /a/1 /t/Income /n/Lunch /$/"+amount+" /d/01-01-2024", 1)
		var nfe *NumericFormatError
		require.ErrorAs(t, err, &nfe, "amount %q", amount)
		assert.Equal(t, amount, nfe.Text)
	}
}

func TestParseAccountNumber(t *testing.T) {
	n, err := ParseAccountNumber("add /a/ 12 /t/Income")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = ParseAccountNumber("add /t/Income")
	var nfe *NumericFormatError
	assert.ErrorAs(t, err, &nfe)

	_, err = ParseAccountNumber("add /a/abc /t/Income")
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "abc", nfe.Text)
}

func TestParseIndex(t *testing.T) {
	n, err := ParseIndex("delete 3", "delete")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ParseIndex("delete", "delete")
	assert.ErrorIs(t, err, ErrEmptyArgument)

	_, err = ParseIndex("delete   ", "delete")
	assert.ErrorIs(t, err, ErrEmptyArgument)

	_, err = ParseIndex("edit one", "edit")
	var nfe *NumericFormatError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "one", nfe.Text)
}

func TestParseHelpCommand(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"help", TopicAll},
		{"help add", TopicAdd},
		{"help DELETE", TopicDelete},
		{"help accounts extra", TopicAccounts},
		{"help nonsense", TopicAll},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseHelpCommand(tt.line), "ParseHelpCommand(%q)", tt.line)
	}
}

func TestParseSearchTerm(t *testing.T) {
	term, err := ParseSearchTerm("search  lunch with Bob ", "search")
	require.NoError(t, err)
	assert.Equal(t, "lunch with Bob", term)

	_, err = ParseSearchTerm("search", "search")
	assert.ErrorIs(t, err, ErrEmptyArgument)
}

func TestField(t *testing.T) {
	line := "add /a/1 /n/Coffee beans /t/Expense"
	assert.Equal(t, "1", Field(line, MarkerAccount))
	assert.Equal(t, "Coffee beans", Field(line, MarkerDescription))
	assert.Equal(t, "Expense", Field(line, MarkerType))
	assert.Equal(t, "", Field(line, MarkerDate))
}

func TestParseAddAccount(t *testing.T) {
	acct, err := ParseAddAccount("add-acc /n/Savings /$/250.00")
	require.NoError(t, err)
	assert.Equal(t, "Savings", acct.Name)
	assert.True(t, acct.HasOpening)
	assert.True(t, acct.OpeningBalance.Equal(decimal.RequireFromString("250")))

	acct, err = ParseAddAccount("add-acc /n/Wallet")
	require.NoError(t, err)
	assert.False(t, acct.HasOpening)

	_, err = ParseAddAccount("add-acc Wallet")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseRenameAccount(t *testing.T) {
	n, name, err := ParseRenameAccount("edit-acc /a/2 /n/Travel fund")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Travel fund", name)

	_, _, err = ParseRenameAccount("edit-acc /n/Travel")
	assert.ErrorIs(t, err, ErrSyntax)

	_, _, err = ParseRenameAccount("edit-acc /a/x /n/Travel")
	var nfe *NumericFormatError
	assert.ErrorAs(t, err, &nfe)
}
