package shell

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/budgetbuddy/internal/accounts"
	"github.com/cleared-dev/budgetbuddy/internal/ledger"
	"github.com/cleared-dev/budgetbuddy/internal/parser"
)

var (
	// ErrArgumentSyntax reports input containing a comma, which the ledger file reserves.
	ErrArgumentSyntax = errors.New("input cannot contain ',' comma")
	// ErrUnknownCommand reports a first token that is not a command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInputClosed reports end of input while a prompt was waiting.
	ErrInputClosed = errors.New("input closed")
)

// message converts an error into the text shown to the user. The second
// result is false for failures that are not one of the known user errors.
func message(err error) (string, bool) {
	var (
		ie  *ledger.IndexError
		nfe *parser.NumericFormatError
	)
	switch {
	case errors.Is(err, ErrArgumentSyntax):
		return "Invalid argument syntax: input cannot contain ',' comma.", true
	case errors.Is(err, ledger.ErrEditData):
		return fmt.Sprintf("Invalid edit data: %v. Use the same form as add, e.g. /a/1 /t/Expense /n/Lunch /$/12 /d/01-01-2024", err), true
	case errors.Is(err, parser.ErrSyntax):
		return fmt.Sprintf("Invalid command syntax: %v. Type 'help add' for the expected form.", err), true
	case errors.As(err, &nfe):
		return fmt.Sprintf("Invalid number: %v.", nfe), true
	case errors.Is(err, parser.ErrTransactionType):
		return fmt.Sprintf("%v. Transaction type must be Income or Expense.", err), true
	case errors.Is(err, parser.ErrEmptyArgument):
		return fmt.Sprintf("Missing argument: %v.", err), true
	case errors.As(err, &ie):
		if ie.Size == 0 {
			return "Given index id is out of bound. There is nothing to choose from yet.", true
		}
		return fmt.Sprintf("Given index id is out of bound. Please choose a number from 1 to %d.", ie.Size), true
	case errors.Is(err, parser.ErrCategory):
		return "Invalid category. Please choose one of the listed category numbers.", true
	case errors.Is(err, parser.ErrDate):
		return fmt.Sprintf("%v.", err), true
	case errors.Is(err, accounts.ErrUnknownAccount):
		return fmt.Sprintf("No such account: %v. Type 'list-acc' to see your accounts.", err), true
	case errors.Is(err, ErrUnknownCommand):
		return "Sorry, that command does not exist. Type 'help' to see the available commands.", true
	case errors.Is(err, ErrInputClosed):
		return "Input ended before the command was complete.", true
	}
	return fmt.Sprintf("Something went wrong: %v", err), false
}
