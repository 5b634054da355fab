// Package shell runs the interactive command loop over the ledger.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/budgetbuddy/internal/accounts"
	"github.com/cleared-dev/budgetbuddy/internal/ledger"
	"github.com/cleared-dev/budgetbuddy/internal/markdown"
	"github.com/cleared-dev/budgetbuddy/internal/model"
	"github.com/cleared-dev/budgetbuddy/internal/storage"
)

// Options wires a Shell to its collaborators.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Ledger   *ledger.Ledger
	Accounts *accounts.Directory
	Store    storage.Store
	Logger   *logrus.Logger
	Renderer *markdown.Renderer
	Now      func() time.Time // defaults to time.Now
}

// Shell reads one command per line, runs it, and saves after every command
// that succeeds.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	ledger   *ledger.Ledger
	accounts *accounts.Directory
	store    storage.Store
	log      *logrus.Logger
	md       *markdown.Renderer
	now      func() time.Time
}

// New creates a Shell.
func New(opts Options) *Shell {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Shell{
		in:       bufio.NewScanner(opts.In),
		out:      opts.Out,
		ledger:   opts.Ledger,
		accounts: opts.Accounts,
		store:    opts.Store,
		log:      opts.Logger,
		md:       opts.Renderer,
		now:      now,
	}
}

// Load reads the accounts and ledger from store and derives every balance
// from the ledger. An empty directory gets a default account.
func Load(store storage.Store, defaultAccount string, log *logrus.Logger) (*ledger.Ledger, *accounts.Directory, error) {
	accts, err := store.LoadAccounts()
	if err != nil {
		return nil, nil, fmt.Errorf("loading accounts: %w", err)
	}
	dir := accounts.NewDirectory(accts)
	if dir.Len() == 0 && defaultAccount != "" {
		acct := dir.Add(defaultAccount)
		log.WithField("account", acct.Number).Info("Shell.Load.DefaultAccount")
	}

	txs, err := store.LoadTransactions()
	if err != nil {
		return nil, nil, fmt.Errorf("loading transactions: %w", err)
	}
	l := ledger.New(dir, txs)

	adjustments, err := l.Reconcile(dir.Numbers())
	if err != nil {
		return nil, nil, fmt.Errorf("reconciling balances: %w", err)
	}
	for _, adj := range adjustments {
		log.WithFields(logrus.Fields{
			"account":  adj.Account,
			"stored":   adj.Stored.String(),
			"computed": adj.Computed.String(),
		}).Warn("Shell.Load.BalanceAdjusted")
	}

	log.WithFields(logrus.Fields{
		"accounts":     dir.Len(),
		"transactions": l.Len(),
	}).Info("Shell.Load.Complete")
	return l, dir, nil
}

// Run loops until bye or end of input.
func (s *Shell) Run() error {
	s.println("Hello from BUDGET BUDDY")
	s.println("What can I do for you?")

	for {
		line, ok := s.readLine()
		if !ok {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			line = cmdBye
		}

		exit, err := s.execute(line)
		if err != nil {
			s.report(err)
			continue
		}
		if err := s.save(); err != nil {
			s.report(err)
		}
		if exit {
			return nil
		}
	}
}

// Close releases the store.
func (s *Shell) Close() error {
	return s.store.Close()
}

func (s *Shell) save() error {
	if err := s.store.SaveTransactions(s.ledger.Transactions()); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}
	if err := s.store.SaveAccounts(s.accounts.All()); err != nil {
		return fmt.Errorf("saving accounts: %w", err)
	}
	return nil
}

func (s *Shell) report(err error) {
	msg, known := message(err)
	if known {
		s.log.WithError(err).Warn("Shell.Command.Rejected")
	} else {
		s.log.WithError(err).Error("Shell.Command.Error")
	}
	s.println(msg)
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// prompt asks for one more line of input for the current command.
func (s *Shell) prompt(question string) (string, error) {
	s.println(question)
	line, ok := s.readLine()
	if !ok {
		return "", ErrInputClosed
	}
	if strings.Contains(line, ",") {
		return "", ErrArgumentSyntax
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) today() time.Time {
	return model.Day(s.now())
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Shell) render(md string) error {
	out, err := s.md.Render(md)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, out)
	return nil
}
