// Package cli implements the cerealstore command-line interface.
//
// Every invocation owns one in-memory storage; nothing is persisted between
// runs. Plans (run) and the interactive shell (shell) are the two ways to
// drive it.
package cli

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cerealstore/internal/logger"
	"github.com/mesh-intelligence/cerealstore/pkg/cerealstore"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir         string
	containerCapacity string
	storageCapacity   string
	logLevel          string
	jsonMode          bool
}

// app is the state shared by the commands of one root command.
type app struct {
	flags    rootFlags
	settings settings
	log      zerolog.Logger
}

// NewRootCmd creates the top-level "cerealstore" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:     "cerealstore",
		Short:   "An in-memory cereal storage ledger",
		Long:    "Cerealstore keeps cereals in fixed-size containers under a shared storage\ncapacity. Drive it with a plan file (run) or interactively (shell).",
		Version: cerealstore.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSettings(cmd)
			if err != nil {
				return err
			}
			a.settings = s
			a.log = logger.New(logger.Config{
				Env:   s.logEnv,
				Level: s.logLevel,
				Out:   cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.containerCapacity, "container-capacity", "", "capacity of a single container")
	pf.StringVar(&a.flags.storageCapacity, "storage-capacity", "", "total capacity of the storage")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newCerealsCmd(a))
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newShellCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd()))
}

// run executes root and maps its error to an exit code.
func run(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
