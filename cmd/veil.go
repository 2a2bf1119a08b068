package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/PolarWolf314/veil/internal/configs"
	verrors "github.com/PolarWolf314/veil/internal/errors"
	"github.com/PolarWolf314/veil/internal/gpg"
	logger "github.com/PolarWolf314/veil/internal/logging"
	"github.com/PolarWolf314/veil/internal/prompt"
	"github.com/PolarWolf314/veil/internal/tools"
	"github.com/PolarWolf314/veil/internal/ui"
	"github.com/PolarWolf314/veil/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	newFile bool
	editor  string
	diff    string
	gpgPath string
	Logger  logger.Logger

	// environment is resolved once, before flags are registered.
	environment = environmentFrom(configs.LoadEnvironment)

	input      io.Reader    = os.Stdin
	readSecret prompt.SecretReader
	runner     tools.Runner = tools.ExecRunner{}

	RootCmd = &cobra.Command{
		Use:   "veil [flags] file",
		Short: "Edit an encrypted file (symmetric GPG)",
		Long: `Edit an encrypted file (symmetric GPG).

Decrypt to 2 temporary files and open one in an editor.
After the editor exits, if the files differ,
ask the user to discard the changes
or overwrite the encrypted file.

If anything fails after decryption, the decrypted file being edited is
kept and its path is printed, so no edits are lost.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Log lines go to stderr; stdout carries only prompts and the status line.
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.ErrOrStderr(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing veil with verbose=%t, debug=%t", verbose, debug)
		},
		RunE: runEdit,
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.Flags().BoolVar(&newFile, "new", false, "create a new file")
	RootCmd.Flags().StringVar(&editor, "editor", environment.Editor,
		fmt.Sprintf("invoked with one argument, the decrypted file; defaults to $%s if set, else %s",
			configs.EditorEnvVar, configs.DefaultEditor))
	RootCmd.Flags().StringVar(&diff, "diff", configs.DefaultDiff,
		"invoked with two arguments, the original file and the edited one, to show the difference between them")
	RootCmd.Flags().StringVar(&gpgPath, "gpg", configs.DefaultGPG, "GnuPG program used to encrypt and decrypt")
}

// Execute runs the root command and prints any error.
//
// An interrupt or SIGTERM cancels the command's context instead of killing
// the process, so an edit session can clean up and report the working copy.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := RootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(RootCmd.ErrOrStderr(), err)
	}
	return err
}

func environmentFrom(load func() (configs.Environment, error)) configs.Environment {
	e, err := load()
	if err != nil {
		Logger.Warnf("Ignoring environment, using defaults: %v", err)
		return configs.DefaultEnvironment()
	}
	return e
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg := configs.Resolve(args[0], newFile, editor, diff, gpgPath, environment)
	Logger.Debugf("Resolved config: file=%s new=%t editor=%s diff=%s gpg=%s",
		cfg.File, cfg.New, cfg.Editor, cfg.Diff, cfg.GPG)

	if err := cfg.Validate(); err != nil {
		return err
	}

	result, err := workflows.Edit(cmd.Context(), workflows.EditOptions{
		Config:   cfg,
		Cipher:   spinnerCipher{inner: gpg.New(cfg.GPG, runner), verbose: verbose},
		Prompter: prompt.New(input, cmd.OutOrStdout(), readSecret),
		Runner:   runner,
		Logger:   Logger,
	})
	if err != nil {
		var preserved *workflows.PreservedError
		if errors.As(err, &preserved) {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning.Sprint("Preserved the file being edited:"), ui.Path.Sprint(preserved.Path))
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Outcome.Message(result.File))
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.Error.Sprint("Error:"), err)

	switch {
	case errors.Is(err, verrors.ErrAlreadyExists):
		fmt.Fprintln(w, ui.Info.Sprint("→"), "Run", ui.Code.Sprint("veil <file>"), "without", ui.Flag.Sprint("--new"), "to edit an existing file")
	case errors.Is(err, verrors.ErrToolNotFound):
		fmt.Fprintln(w, ui.Info.Sprint("→"), "Check the", ui.Flag.Sprint("--editor"), ui.Flag.Sprint("--diff"), "and", ui.Flag.Sprint("--gpg"), "programs are installed")
	}
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	newFile = false
	editor = environment.Editor
	diff = configs.DefaultDiff
	gpgPath = configs.DefaultGPG
	input = os.Stdin
	readSecret = nil
	runner = tools.ExecRunner{}
	Logger = logger.Logger{}

	// Flag values survive between Execute calls, including --help.
	RootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" {
			_ = f.Value.Set("false")
		}
		f.Changed = false
	})
}

// SetRunner replaces the program runner for testing.
func SetRunner(r tools.Runner) {
	runner = r
}

// SetInput replaces the stream answers are read from for testing.
func SetInput(r io.Reader) {
	input = r
}

// SetSecretReader replaces hidden passphrase input for testing.
func SetSecretReader(fn prompt.SecretReader) {
	readSecret = fn
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
