package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cerealstore/internal/ledger"
	"github.com/mesh-intelligence/cerealstore/internal/script"
)

const shellPrompt = "cerealstore> "

const shellHelp = `Commands:
  add <cereal> <amount>   put cereal into its container, prints the leftover
  get <cereal> <amount>   take cereal out, prints the amount taken
  remove <cereal>         remove an empty container
  amount <cereal>         print the stored amount
  space <cereal>          print the free space in the container
  show                    print the storage listing
  help                    print this help
  quit                    leave the shell`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Operate a storage interactively",
		Long:  "Shell reads one command per line from standard input and applies it to a\nnew, empty storage. The storage is discarded when the shell exits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}
}

func (a *app) runShell(cmd *cobra.Command) error {
	storage, err := ledger.New(a.settings.storage, ledger.WithLogger(a.log))
	if err != nil {
		return userError(err)
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprint(out, shellPrompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
		case line == "quit" || line == "exit":
			return nil
		case line == "help":
			fmt.Fprintln(out, shellHelp)
		default:
			step, err := script.ParseLine(line)
			if err != nil {
				fmt.Fprintln(errOut, "error:", err)
				break
			}
			r, err := script.Run(storage, step)
			if err != nil {
				fmt.Fprintln(errOut, "error:", err)
				break
			}
			fmt.Fprintln(out, r.String())
		}
		fmt.Fprint(out, shellPrompt)
	}
	fmt.Fprintln(out)
	if err := scanner.Err(); err != nil {
		return sysError(fmt.Errorf("read input: %w", err))
	}
	return nil
}
