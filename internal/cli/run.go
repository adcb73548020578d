package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cerealstore/internal/ledger"
	"github.com/mesh-intelligence/cerealstore/internal/paths"
	"github.com/mesh-intelligence/cerealstore/internal/script"
	"github.com/mesh-intelligence/cerealstore/pkg/types"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <plan>",
		Short: "Execute a plan against a fresh storage",
		Long: `Run executes the steps of a YAML plan in order against a new, empty storage
and prints one line per step followed by the final storage listing.

The plan is a file path or the name of a plan in the plans directory of the
configuration directory. Capacities in the plan override the configuration.

Example plan:

  container_capacity: 10
  storage_capacity: 20
  steps:
    - op: add
      cereal: buckwheat
      amount: 3
    - op: get
      cereal: buckwheat
      amount: 1
    - op: show`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd, args[0])
		},
	}
}

// runOutput is the JSON shape printed by run --json.
type runOutput struct {
	Results    []script.Result `json:"results"`
	Containers []containerJSON `json:"containers"`
	Error      string          `json:"error,omitempty"`
}

type containerJSON struct {
	Cereal types.Cereal    `json:"cereal"`
	Amount decimal.Decimal `json:"amount"`
}

func (a *app) runPlan(cmd *cobra.Command, name string) error {
	path, err := paths.ResolvePlan(name, a.settings.configDir)
	if err != nil {
		return userError(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return sysError(fmt.Errorf("open plan: %w", err))
	}
	defer f.Close()

	plan, err := script.Parse(f)
	if err != nil {
		return userError(fmt.Errorf("%s: %w", path, err))
	}

	storage, err := ledger.New(plan.Apply(a.settings.storage), ledger.WithLogger(a.log))
	if err != nil {
		return userError(err)
	}

	a.log.Debug().Str("plan", path).Int("steps", len(plan.Steps)).Msg("running plan")
	results, runErr := script.Execute(storage, plan)

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		if err := writeRunJSON(out, storage, results, runErr); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			fmt.Fprintln(out, r.String())
		}
		if runErr == nil {
			fmt.Fprint(out, storage.String())
		}
	}

	if runErr != nil {
		a.log.Warn().Err(runErr).Msg("plan stopped")
		return userError(runErr)
	}
	return nil
}

func writeRunJSON(w io.Writer, s types.CerealStorage, results []script.Result, runErr error) error {
	o := runOutput{
		Results:    results,
		Containers: make([]containerJSON, 0),
	}
	for _, c := range s.Containers() {
		o.Containers = append(o.Containers, containerJSON{Cereal: c, Amount: s.GetAmount(c)})
	}
	if runErr != nil {
		o.Error = runErr.Error()
	}

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return errors.Join(fmt.Errorf("marshal results: %w", err), runErr)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
