// Package main implements a CLI tool that keeps a plain text VERSION file and the
// "version" field of JSON package manifests in sync.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	versync "github.com/bcomnes/versync/pkg"
)

var (
	errMissingArgument = errors.New("argument required")
	errUnknownCommand  = errors.New("unknown command")
	errInvalidFlag     = errors.New("invalid flag")
)

type options struct {
	dir       string
	config    string
	store     string
	manifests []string
	dryRun    bool
	strict    bool
	verbose   bool
	noColor   bool
}

// app carries the output streams and parsed flags for one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
	root   *cobra.Command

	reporter *versync.ConsoleReporter
	logger   *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	a.root = a.rootCommand()
	a.root.SetArgs(args)
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)

	err := a.root.Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err != nil {
		return a.exitErr(err)
	}
	return 0
}

func (a *app) console() *versync.ConsoleReporter {
	if a.reporter == nil {
		color := !a.opts.noColor && isTerminal(a.stdout)
		a.reporter = versync.NewConsoleReporter(a.stdout, a.stderr, color)
	}
	return a.reporter
}

func (a *app) log() *zap.Logger {
	if a.logger == nil {
		a.logger = versync.NewLogger(a.stderr, a.opts.verbose)
	}
	return a.logger
}

// config layers flags over the optional config file over the defaults.
func (a *app) config() (versync.Config, error) {
	cfg := versync.DefaultConfig()
	if a.opts.config != "" {
		loaded, err := versync.LoadConfig(a.opts.config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if a.opts.dir != "" {
		cfg.Root = a.opts.dir
	}
	if a.opts.store != "" {
		cfg.StoreFile = a.opts.store
	}
	if len(a.opts.manifests) > 0 {
		cfg.Manifests = a.opts.manifests
	}
	cfg.DryRun = a.opts.dryRun
	return cfg, nil
}

func (a *app) manager() (*versync.Manager, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	a.log().Debug("configuration",
		zap.String("root", cfg.Root),
		zap.String("store", cfg.StoreFile),
		zap.Strings("manifests", cfg.Manifests),
		zap.Bool("dry_run", cfg.DryRun))
	return versync.NewManager(cfg,
		versync.WithReporter(a.console()),
		versync.WithLogger(a.log()))
}

// finish prints the summary for a mutating command and applies --strict.
func (a *app) finish(meta versync.Meta, err error) error {
	if err != nil {
		return err
	}
	if a.opts.verbose || meta.DryRun {
		a.printSummary(meta)
	}
	if a.opts.strict {
		if syncErr := versync.SyncError(meta.Manifests); syncErr != nil {
			return fmt.Errorf("manifest sync incomplete: %w", syncErr)
		}
	}
	return nil
}

func (a *app) printSummary(meta versync.Meta) {
	if meta.DryRun {
		fmt.Fprintln(a.stdout, "Dry run complete, no files were modified.")
	}
	fmt.Fprintf(a.stdout, "Old Version: %s\n", meta.OldVersion)
	fmt.Fprintf(a.stdout, "New Version: %s\n", meta.NewVersion)
	fmt.Fprintf(a.stdout, "Bump Type:   %s\n", meta.BumpType)

	if len(meta.UpdatedFiles) > 0 {
		if meta.DryRun {
			fmt.Fprintln(a.stdout, "Files that would be updated:")
		} else {
			fmt.Fprintln(a.stdout, "Files updated:")
		}
		for _, f := range meta.UpdatedFiles {
			fmt.Fprintf(a.stdout, "  %s\n", f)
		}
	}
}

// exitErr reports err and returns the exit code. Usage errors are followed by
// the help text.
func (a *app) exitErr(err error) int {
	a.console().Failure("Error: " + err.Error())
	if errors.Is(err, errMissingArgument) || errors.Is(err, errUnknownCommand) || errors.Is(err, errInvalidFlag) {
		a.printUsage()
	}
	return 1
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
