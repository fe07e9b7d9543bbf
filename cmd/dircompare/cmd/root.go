package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dircompare/internal/adapters/console"
	"dircompare/internal/adapters/filesystem"
	"dircompare/internal/adapters/logging"
	"dircompare/internal/adapters/tui"
	"dircompare/internal/application"
	"dircompare/internal/application/commands"
	"dircompare/internal/config"
)

// Exit codes
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInvalidArgs = 2
)

type flags struct {
	copyDir      string
	copy         bool
	preserveTree bool
	debug        bool
	interactive  bool
}

// NewRootCmd builds the dircompare command bound to the given streams
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   config.Name + " <first_dir> <second_dir>",
		Short: "Report files missing from a second directory tree",
		Long: `dircompare walks first_dir and reports every file that has no entry at
the same relative path under second_dir.

With --copy-dir the missing files are copied below that directory, mirroring
their relative paths. Without --copy the copy is a dry run that only prints
what would be created and copied.

Examples:
  dircompare /srv/data /mnt/backup
  dircompare /srv/data /mnt/backup --copy-dir /mnt/restore
  dircompare /srv/data /mnt/backup --copy-dir /mnt/restore --copy`,
		Version:       config.Version,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{
				FirstDir:     args[0],
				SecondDir:    args[1],
				CopyDir:      f.copyDir,
				Copy:         f.copy,
				PreserveTree: f.preserveTree,
				Debug:        f.debug,
				Interactive:  f.interactive,
			}
			return run(cmd.Context(), cfg, stdin, stdout, stderr)
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}} - " + config.Description + "\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &application.ValidationError{Field: "flags", Message: err.Error()}
	})

	fs := rootCmd.Flags()
	fs.StringVar(&f.copyDir, "copy-dir", "", "directory in which missing files are copied")
	fs.BoolVar(&f.copy, "copy", false, "copy missing files to --copy-dir instead of a dry run")
	fs.BoolVar(&f.preserveTree, "preserve-tree", false, "preserve the relative directory tree during copy (always on)")
	fs.BoolVar(&f.debug, "debug", false, "print debugging info to stderr")
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "review the missing files before reporting and copying")
	fs.BoolP("version", "V", false, "print version information and exit")

	return rootCmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	return application.ValidateArgCount(args, "first_dir", "second_dir")
}

func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.Normalized()

	log := logging.New(stderr, cfg.Debug)
	log.Debugf("Given arguments: %+v", cfg)
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}
	if cfg.PreserveTree {
		log.Debug("relative directory structure is always preserved")
	}

	repo := filesystem.NewRepository(log)

	diff, err := commands.NewDiffCommand(repo, log, cfg.FirstDir, cfg.SecondDir).Execute(ctx)
	if err != nil {
		return err
	}

	missing := diff.Missing
	if cfg.Interactive && len(missing) > 0 {
		selected, ok, err := tui.RunReview(missing, reviewHeader(cfg), stdin, stdout)
		if err != nil {
			return err
		}
		if !ok {
			log.Info("review aborted, nothing reported")
			return nil
		}
		missing = selected
	}

	reconcile := commands.NewReconcileCommand(repo, console.NewReporter(stdout), diff.FirstDir, cfg.CopyDir, cfg.DryRun(), missing)
	result, err := reconcile.Execute(ctx)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"scanned": diff.Scanned,
		"missing": len(diff.Missing),
		"created": result.Created,
		"copied":  result.Copied,
		"dry_run": result.DryRun,
	}).Debug("run finished")
	return nil
}

func reviewHeader(cfg config.Config) string {
	switch {
	case cfg.CopyDir == "":
		return "report only"
	case cfg.DryRun():
		return "dry run into " + cfg.CopyDir
	default:
		return "copy into " + cfg.CopyDir
	}
}

// ExitCode maps an error returned by the root command to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, application.ErrInvalidArguments):
		return ExitInvalidArgs
	default:
		return ExitFailure
	}
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, application.ErrInvalidArguments) {
			fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
		}
		os.Exit(ExitCode(err))
	}
}
