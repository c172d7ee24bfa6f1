package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bytekue/Library-book-tracker/pkg/catalog"
	"github.com/bytekue/Library-book-tracker/pkg/errors"
)

// Execute runs the booktrack CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command. The whole catalog
// contract lives on the root command: two positional arguments, the catalog
// file path and the operation string.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "booktrack <catalog-file.txt> <operation>",
		Short:   "Flat-file book catalog CLI",
		Version: a.version,
		Long: `Booktrack maintains a flat-file catalog of books, one
title:author:isbn:copies record per line.

The operation argument is classified by its shape: a 13-digit string is an
exact ISBN lookup, a string containing ':' is a record to add, and anything
else is a case-insensitive title substring search.`,
		Example: `  booktrack catalog.txt 9780261102217
  booktrack catalog.txt hobbit
  booktrack catalog.txt "Dune:Frank Herbert:9780441013593:5"`,
		Args:              validateArgs,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              a.run,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.booktrack.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("booktrack {{.Version}}\n")

	rootCmd.AddCommand(a.NewVersionCommand())

	return rootCmd
}

// validateArgs checks the positional arguments before any I/O happens.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: need <catalog-file.txt> and <operation>", errors.ErrInsufficientArguments)
	}
	if err := catalog.ValidatePath(args[0]); err != nil {
		return fmt.Errorf("%w: catalog file must end with .txt", err)
	}
	return nil
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// Update config from parsed flags. These flags are defined as persistent
	// flags in createRootCommand, so errors indicate programming errors.
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
