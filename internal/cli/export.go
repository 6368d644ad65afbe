package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/visionforge-labs/visionforge/internal/config"
	"github.com/visionforge-labs/visionforge/internal/configs/core"
	"github.com/visionforge-labs/visionforge/internal/experiment"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <experiment>",
	Short: "Write an experiment configuration to a YAML file",
	Long: `Build the named experiment's configuration and write it, with a
schema_version header, to a YAML file. The default destination is
<export.dir>/<experiment>.yaml.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Destination file (default <export.dir>/<experiment>.yaml)")
	rootCmd.AddCommand(exportCmd)
}

// exportDocument is the on-disk shape of an exported experiment.
type exportDocument struct {
	SchemaVersion         string `yaml:"schema_version"`
	core.ExperimentConfig `yaml:",inline"`
}

func runExport(cmd *cobra.Command, args []string) error {
	name := args[0]
	factory, ok := experiment.Lookup(name)
	if !ok {
		return fmt.Errorf("experiment %q is not registered (try 'list')", name)
	}
	cfg := factory()

	if err := experiment.CheckRestrictions(cfg); err != nil {
		return fmt.Errorf("experiment %q failed its restrictions: %w", name, err)
	}

	dest := exportOutput
	if dest == "" {
		dir := config.Get(config.KeyExportDir)
		if dir == "" {
			dir = "."
		}
		dest = filepath.Join(dir, name+".yaml")
	}

	doc := exportDocument{
		SchemaVersion:    core.SchemaVersion,
		ExperimentConfig: *cfg,
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling experiment config: %w", err)
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating export directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(dest, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", name, dest)
	return nil
}
