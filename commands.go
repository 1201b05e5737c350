package main

import (
	"fmt"

	"github.com/spf13/cobra"

	versync "github.com/bcomnes/versync/pkg"
)

const usageText = `Usage:
  versync [options] [COMMAND] [ARG]

Commands:
  get                 Print the current version
  set VERSION         Set a specific version (e.g., 1.2.3)
  patch               Bump patch version (1.0.0 → 1.0.1)
  minor               Bump minor version (1.0.0 → 1.1.0)
  major               Bump major version (1.0.0 → 2.0.0)
  bump KIND           Bump by KIND: patch, minor, or major
  sync                Write the current version to all manifests
  help                Show this help message

Examples:
  versync get
  versync set 1.2.3
  versync patch
  versync --manifest app/package.json minor
  versync --dry-run major

Options:
`

func (a *app) printUsage() {
	fmt.Fprintln(a.stdout, a.console().Title("versync - keep VERSION and package manifests in sync"))
	fmt.Fprintln(a.stdout)
	fmt.Fprint(a.stdout, usageText)
	fmt.Fprint(a.stdout, a.root.PersistentFlags().FlagUsages())
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "versync [COMMAND] [ARG]",
		Short:             "Keep VERSION and package manifests in sync.",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.ArbitraryArgs,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.printUsage()
				return nil
			}
			return fmt.Errorf("%w '%s'", errUnknownCommand, args[0])
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.dir, "dir", "", "Resolve relative paths against this directory")
	flags.StringVar(&a.opts.config, "config", "", "Path to a YAML config file")
	flags.StringVar(&a.opts.store, "store", "", "Path to the version file (default \"VERSION\")")
	flags.StringArrayVar(&a.opts.manifests, "manifest", nil, "JSON manifest to keep in sync. May be repeated; replaces the default list.")
	flags.BoolVar(&a.opts.dryRun, "dry-run", false, "Report what would change without writing any file")
	flags.BoolVar(&a.opts.strict, "strict", false, "Exit non-zero if any manifest is missing or cannot be updated")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Print diagnostic logs and a summary")
	flags.BoolVar(&a.opts.noColor, "no-color", false, "Disable colored output")

	root.SetVersionTemplate("versync CLI version {{.Version}}\n")
	root.SetHelpFunc(func(*cobra.Command, []string) { a.printUsage() })
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errInvalidFlag, err)
	})

	root.AddCommand(
		a.getCommand(),
		a.setCommand(),
		a.bumpCommand(),
		a.syncCommand(),
	)
	for _, kind := range []versync.BumpKind{versync.BumpPatch, versync.BumpMinor, versync.BumpMajor} {
		root.AddCommand(a.bumpKindCommand(kind))
	}
	return root
}

func (a *app) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current version",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, m.Get())
			return nil
		},
	}
}

func (a *app) setCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set VERSION",
		Short: "Set a specific version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("version %w for \"set\" command", errMissingArgument)
			}
			m, err := a.manager()
			if err != nil {
				return err
			}
			return a.finish(m.Set(args[0]))
		},
	}
}

func (a *app) bumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bump KIND",
		Short: "Bump the version by patch, minor, or major",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("bump kind %w for \"bump\" command", errMissingArgument)
			}
			m, err := a.manager()
			if err != nil {
				return err
			}
			return a.finish(m.Bump(args[0]))
		},
	}
}

func (a *app) bumpKindCommand(kind versync.BumpKind) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("Bump %s version", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			return a.finish(m.Bump(string(kind)))
		},
	}
}

func (a *app) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Write the current version to all manifests",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			return a.finish(m.Sync())
		},
	}
}
