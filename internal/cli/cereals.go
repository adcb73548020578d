package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cerealstore/pkg/types"
)

// cerealJSON is one catalog entry in JSON output.
type cerealJSON struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func newCerealsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cereals",
		Short: "List the cereal catalog",
		Long:  "List every cereal the storage accepts. Commands take either the key or the name.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				entries := make([]cerealJSON, 0, len(types.Cereals()))
				for _, c := range types.Cereals() {
					entries = append(entries, cerealJSON{Key: c.String(), Name: c.Local()})
				}
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal cereals: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME")
			for _, c := range types.Cereals() {
				fmt.Fprintf(w, "%s\t%s\n", c, c.Local())
			}
			return w.Flush()
		},
	}
}
