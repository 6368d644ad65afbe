package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/visionforge-labs/visionforge/internal/experiment"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered experiments",
	Long:  `List every experiment name registered with the process-wide registry.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a registered experiment for display.
type listEntry struct {
	Name string `json:"name"`
	Task string `json:"task"`
}

func runList(cmd *cobra.Command, args []string) error {
	names := experiment.Names()
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No experiments registered.")
		return nil
	}

	entries := make([]listEntry, 0, len(names))
	for _, name := range names {
		factory, _ := experiment.Lookup(name)
		cfg := factory()
		entries = append(entries, listEntry{Name: name, Task: cfg.Task.TaskName()})
	}

	if listJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling experiment list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTASK")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Task)
	}
	return w.Flush()
}
