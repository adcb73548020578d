package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/cerealstore/internal/paths"
	"github.com/mesh-intelligence/cerealstore/internal/script"
	"github.com/mesh-intelligence/cerealstore/pkg/types"
)

// examplePlanName is the plan written to the plans directory by init.
const examplePlanName = "example.yaml"

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory",
		Long:  "Create the configuration directory with a default config.yaml and an example plan.\nExisting files are left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a)
		},
	}
}

func runInit(cmd *cobra.Command, a *app) error {
	configDir := a.settings.configDir
	plansDir := paths.PlansDir(configDir)

	if err := os.MkdirAll(plansDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	if err := writeFileIfMissing(paths.ConfigFile(configDir), []byte(defaultConfigYAML)); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	plan, err := examplePlan()
	if err != nil {
		return fmt.Errorf("build example plan: %w", err)
	}
	if err := writeFileIfMissing(filepath.Join(plansDir, examplePlanName), plan); err != nil {
		return sysError(fmt.Errorf("write example plan: %w", err))
	}

	a.log.Debug().Str("config_dir", configDir).Msg("configuration initialized")
	fmt.Fprintf(cmd.OutOrStdout(), "Cerealstore initialized in %s\n", configDir)
	return nil
}

// writeFileIfMissing creates path with data unless it already exists.
func writeFileIfMissing(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// planStep mirrors script.Step for encoding; amounts are written as plain
// numbers.
type planStep struct {
	Op     script.Op `yaml:"op"`
	Cereal string    `yaml:"cereal,omitempty"`
	Amount float64   `yaml:"amount,omitempty"`
}

// examplePlan returns a small plan exercising every operation.
func examplePlan() ([]byte, error) {
	doc := struct {
		Steps []planStep `yaml:"steps"`
	}{
		Steps: []planStep{
			{Op: script.OpAdd, Cereal: types.Buckwheat.Local(), Amount: 3},
			{Op: script.OpAdd, Cereal: types.Rice.Local(), Amount: 12},
			{Op: script.OpGet, Cereal: types.Buckwheat.Local(), Amount: 1.5},
			{Op: script.OpAmount, Cereal: types.Rice.Local()},
			{Op: script.OpSpace, Cereal: types.Buckwheat.Local()},
			{Op: script.OpRemove, Cereal: types.Buckwheat.Local()},
			{Op: script.OpShow},
		},
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, err
	}
	return append([]byte("# Example cerealstore plan. Run with: cerealstore run example\n"), data...), nil
}
