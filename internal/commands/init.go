package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budgetbuddy/internal/accounts"
	"github.com/cleared-dev/budgetbuddy/internal/config"
	"github.com/cleared-dev/budgetbuddy/internal/gitops"
	"github.com/cleared-dev/budgetbuddy/internal/storage"
)

var gitAuthor = gitops.Author{Name: "BudgetBuddy", Email: "budgetbuddy@localhost"}

func newInitCommand() *cobra.Command {
	var withGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new BudgetBuddy directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, withGit)
		},
	}

	cmd.Flags().BoolVar(&withGit, "git", false, "initialize a git repository and commit the new files")

	return cmd
}

func runInit(out io.Writer, dir string, withGit bool) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default()
	for _, d := range []string{cfg.DataDir, filepath.Dir(cfg.Log.File)} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Empty ledger plus the default account.
	store, err := storage.NewFileStore(filepath.Join(dir, cfg.DataDir))
	if err != nil {
		return err
	}
	dirAccounts := accounts.NewDirectory(nil)
	dirAccounts.Add(cfg.DefaultAccount)
	if err := store.SaveAccounts(dirAccounts.All()); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	if err := store.SaveTransactions(nil); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	gitignore := "logs/\n*.db\n*.db-*\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if !withGit {
		fmt.Fprintf(out, "Initialized BudgetBuddy at %s\n", dir)
		return nil
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
	}
	hash, err := gitops.CommitAll(dir, "init: Initialize BudgetBuddy", gitAuthor)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized BudgetBuddy at %s (%s)\n", dir, hash)
	return nil
}
