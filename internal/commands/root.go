package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budgetbuddy/internal/buildinfo"
	"github.com/cleared-dev/budgetbuddy/internal/config"
	"github.com/cleared-dev/budgetbuddy/internal/logging"
	"github.com/cleared-dev/budgetbuddy/internal/markdown"
	"github.com/cleared-dev/budgetbuddy/internal/shell"
	"github.com/cleared-dev/budgetbuddy/internal/storage"
)

const wrapWidth = 80

type rootOptions struct {
	configPath string
	dataDir    string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it starts the interactive shell.
func NewRootCommand() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:     "budgetbuddy",
		Short:   "Personal finance ledger for the terminal",
		Version: buildinfo.String(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "path to the config file")
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "override the data directory")

	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// loadConfig reads the config at path, applies the .env next to it and the
// flag overrides, and resolves relative paths against the config's directory.
func loadConfig(opts rootOptions) (*config.Config, error) {
	path, err := filepath.Abs(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	root := filepath.Dir(path)

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(filepath.Join(root, ".env")); err != nil {
		return nil, err
	}
	if opts.dataDir != "" {
		cfg.DataDir = opts.dataDir
		cfg.Storage.SQLitePath = filepath.Join(opts.dataDir, filepath.Base(cfg.Storage.SQLitePath))
	}
	cfg.Resolve(root)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runShell(in io.Reader, out io.Writer, opts rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.SetupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(cfg.Storage.Backend, cfg.DataDir, cfg.Storage.SQLitePath)
	if err != nil {
		return err
	}

	l, accts, err := shell.Load(store, cfg.DefaultAccount, log)
	if err != nil {
		store.Close()
		return err
	}

	md, err := markdown.NewRenderer(rendererStyle(out), wrapWidth)
	if err != nil {
		store.Close()
		return err
	}

	sh := shell.New(shell.Options{
		In:       in,
		Out:      out,
		Ledger:   l,
		Accounts: accts,
		Store:    store,
		Logger:   log,
		Renderer: md,
	})
	defer sh.Close()

	log.WithField("backend", cfg.Storage.Backend).Info("Shell.Run.Start")
	return sh.Run()
}

// rendererStyle picks a colored style only when out is a terminal.
func rendererStyle(out io.Writer) string {
	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return markdown.StyleDark
	}
	return markdown.StyleNoTTY
}
