package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/budgetbuddy/internal/help"
	"github.com/cleared-dev/budgetbuddy/internal/insights"
	"github.com/cleared-dev/budgetbuddy/internal/ledger"
	"github.com/cleared-dev/budgetbuddy/internal/model"
	"github.com/cleared-dev/budgetbuddy/internal/parser"
)

// Command words, matched case-insensitively against the first token.
const (
	cmdBye       = "bye"
	cmdList      = "list"
	cmdDelete    = "delete"
	cmdAdd       = "add"
	cmdEdit      = "edit"
	cmdHelp      = "help"
	cmdSearch    = "search"
	cmdInsights  = "insights"
	cmdAddAcc    = "add-acc"
	cmdListAcc   = "list-acc"
	cmdDeleteAcc = "delete-acc"
	cmdEditAcc   = "edit-acc"
)

// events names each command in log entries.
var events = map[string]string{
	cmdBye:       "Bye",
	cmdList:      "List",
	cmdDelete:    "Delete",
	cmdAdd:       "Add",
	cmdEdit:      "Edit",
	cmdHelp:      "Help",
	cmdSearch:    "Search",
	cmdInsights:  "Insights",
	cmdAddAcc:    "AddAccount",
	cmdListAcc:   "ListAccounts",
	cmdDeleteAcc: "DeleteAccount",
	cmdEditAcc:   "EditAccount",
}

// execute runs one command line. Panics are turned into errors so a bad
// command never ends the session.
func (s *Shell) execute(line string) (exit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	if strings.Contains(line, ",") {
		return false, ErrArgumentSyntax
	}

	name := ""
	if fields := strings.Fields(line); len(fields) > 0 {
		name = strings.ToLower(fields[0])
	}
	line = strings.TrimSpace(line)
	event, ok := events[name]
	if !ok {
		event = "Unknown"
	}
	log := s.log.WithField("command", name)
	log.Info("Shell." + event + ".Start")

	switch name {
	case cmdBye:
		s.println("Bye. Hope to see you again soon!")
		exit = true
	case cmdList:
		err = s.list()
	case cmdDelete:
		err = s.delete(line)
	case cmdAdd:
		err = s.add(line)
	case cmdEdit:
		err = s.edit(line)
	case cmdHelp:
		err = s.render(help.Topic(parser.ParseHelpCommand(line)))
	case cmdSearch:
		err = s.search(line)
	case cmdInsights:
		err = s.render(insights.Summarize(s.ledger.Transactions()).Markdown())
	case cmdAddAcc:
		err = s.addAccount(line)
	case cmdListAcc:
		s.listAccounts()
	case cmdDeleteAcc:
		err = s.deleteAccount(line)
	case cmdEditAcc:
		err = s.editAccount(line)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if err != nil {
		return false, err
	}

	log.Info("Shell." + event + ".Complete")
	return exit, nil
}

func (s *Shell) add(line string) error {
	if err := parser.CheckMarkers(line); err != nil {
		return err
	}
	number, err := parser.ParseAccountNumber(line)
	if err != nil {
		return err
	}
	if _, err := s.accounts.Get(number); err != nil {
		return err
	}
	tx, err := parser.ParseTransaction(line, number)
	if err != nil {
		return err
	}
	if !tx.HasCategory() {
		c, err := s.promptCategory()
		if err != nil {
			return err
		}
		tx.Category = c
	}

	balance, err := s.ledger.Add(tx)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"account": tx.AccountNumber,
		"amount":  tx.SignedAmount().String(),
	}).Debug("Shell.Add.Applied")

	s.println("The following transaction has been added:")
	s.println(tx)
	s.printf("Balance of account %d: %s\n", tx.AccountNumber, money(balance))
	return nil
}

func (s *Shell) promptCategory() (model.Category, error) {
	s.println("Categories:")
	for _, c := range model.Categories() {
		s.printf("%d. %s\n", c.Number(), c)
	}
	raw, err := s.prompt("Enter the category number:")
	if err != nil {
		return model.CategoryUnset, err
	}
	n, err := parser.ParseOption(raw)
	if err != nil {
		return model.CategoryUnset, err
	}
	c, ok := model.CategoryFromNumber(n)
	if !ok {
		return model.CategoryUnset, fmt.Errorf("%w: %d", parser.ErrCategory, n)
	}
	return c, nil
}

func (s *Shell) delete(line string) error {
	index, err := parser.ParseIndex(line, cmdDelete)
	if err != nil {
		return err
	}
	removal, err := s.ledger.Remove(index)
	if err != nil {
		return err
	}
	s.println("The following transaction has been deleted:")
	s.println(removal.Transaction)
	s.printf("Balance of account %d: %s\n", removal.Transaction.AccountNumber, money(removal.Balance))
	return nil
}

func (s *Shell) edit(line string) error {
	index, err := parser.ParseIndex(line, cmdEdit)
	if err != nil {
		return err
	}
	old, err := s.ledger.Get(index)
	if err != nil {
		return err
	}
	s.println("Current transaction:")
	s.println(old)
	raw, err := s.prompt("Enter the new details: /a/ACCOUNT_NUMBER /t/TYPE /n/DESCRIPTION /$/AMOUNT /d/DATE [/c/CATEGORY]")
	if err != nil {
		return err
	}
	edit, err := s.ledger.Edit(index, raw)
	if err != nil {
		return err
	}
	s.println("The transaction has been updated:")
	s.println(edit.New)
	return nil
}

func (s *Shell) list() error {
	s.println("1. All transactions")
	s.println("2. Past week transactions")
	s.println("3. Past month transactions")
	s.println("4. Custom date transactions")
	raw, err := s.prompt("Please choose an option:")
	if err != nil {
		return err
	}
	option, err := parser.ParseOption(raw)
	if err != nil {
		return err
	}

	q := ledger.Query{Option: option, Today: s.today()}
	if option == ledger.OptionCustom {
		if q.Start, err = s.promptDate("Enter the start date (dd-MM-yyyy):"); err != nil {
			return err
		}
		if q.End, err = s.promptDate("Enter the end date (dd-MM-yyyy):"); err != nil {
			return err
		}
	}

	txs, err := s.ledger.List(q)
	if err != nil {
		return err
	}

	if option == ledger.OptionAll {
		s.printEntries(s.allEntries())
		for _, acct := range s.accounts.All() {
			s.printf("Balance of account %d (%s): %s\n", acct.Number, acct.Name, money(acct.Balance))
		}
		return nil
	}
	if len(txs) == 0 {
		s.println("No transactions found.")
		return nil
	}
	for _, tx := range txs {
		s.println(tx)
	}
	return nil
}

func (s *Shell) promptDate(question string) (time.Time, error) {
	raw, err := s.prompt(question)
	if err != nil {
		return time.Time{}, err
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q want dd-MM-yyyy", parser.ErrDate, raw)
	}
	return d, nil
}

func (s *Shell) search(line string) error {
	term, err := parser.ParseSearchTerm(line, cmdSearch)
	if err != nil {
		return err
	}
	s.printEntries(s.ledger.Search(term))
	return nil
}

func (s *Shell) addAccount(line string) error {
	na, err := parser.ParseAddAccount(line)
	if err != nil {
		return err
	}
	acct := s.accounts.Add(na.Name)
	if na.HasOpening && !na.OpeningBalance.IsZero() {
		opening := model.Transaction{
			Description:   "Opening balance",
			Category:      model.CategoryOthers,
			Type:          model.TypeIncome,
			Date:          s.today(),
			Amount:        na.OpeningBalance,
			AccountNumber: acct.Number,
		}
		if _, err := s.ledger.Add(opening); err != nil {
			return err
		}
	}
	acct, err = s.accounts.Get(acct.Number)
	if err != nil {
		return err
	}
	s.printf("Account %d (%s) has been added with balance %s\n", acct.Number, acct.Name, money(acct.Balance))
	return nil
}

func (s *Shell) listAccounts() {
	all := s.accounts.All()
	if len(all) == 0 {
		s.println("No accounts yet. Use add-acc to create one.")
		return
	}
	for _, acct := range all {
		s.printf("%d. %s: %s\n", acct.Number, acct.Name, money(acct.Balance))
	}
}

func (s *Shell) deleteAccount(line string) error {
	number, err := parser.ParseIndex(line, cmdDeleteAcc)
	if err != nil {
		return err
	}
	if _, err := s.accounts.Get(number); err != nil {
		return err
	}
	removed := s.ledger.RemoveAccount(number)
	acct, err := s.accounts.Remove(number)
	if err != nil {
		return err
	}
	s.printf("Account %d (%s) and its %d transaction(s) have been deleted\n", acct.Number, acct.Name, removed)
	return nil
}

func (s *Shell) editAccount(line string) error {
	number, name, err := parser.ParseRenameAccount(line)
	if err != nil {
		return err
	}
	if err := s.accounts.Rename(number, name); err != nil {
		return err
	}
	s.printf("Account %d has been renamed to %s\n", number, name)
	return nil
}

func (s *Shell) allEntries() []ledger.Entry {
	txs := s.ledger.Transactions()
	entries := make([]ledger.Entry, len(txs))
	for i, tx := range txs {
		entries[i] = ledger.Entry{Index: i + 1, Transaction: tx}
	}
	return entries
}

func (s *Shell) printEntries(entries []ledger.Entry) {
	if len(entries) == 0 {
		s.println("No transactions found.")
		return
	}
	for _, e := range entries {
		s.printf("%d. %s\n", e.Index, e.Transaction)
	}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
