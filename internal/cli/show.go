package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/visionforge-labs/visionforge/internal/config"
	"github.com/visionforge-labs/visionforge/internal/experiment"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <experiment>",
	Short: "Print a resolved experiment configuration",
	Long:  `Build the named experiment's configuration and print it fully resolved.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	factory, ok := experiment.Lookup(name)
	if !ok {
		return fmt.Errorf("experiment %q is not registered (try 'list')", name)
	}
	cfg := factory()

	if err := experiment.CheckRestrictions(cfg); err != nil {
		return fmt.Errorf("experiment %q failed its restrictions: %w", name, err)
	}

	useJSON := showJSON
	if !cmd.Flags().Changed("json") && config.Get(config.KeyOutputFormat) == "json" {
		useJSON = true
	}

	if useJSON {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling experiment config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling experiment config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
