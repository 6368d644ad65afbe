package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/visionforge-labs/visionforge/internal/experiment"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an experiment configuration document",
	Long: `Check an experiment YAML document against the embedded JSON schema,
verify its schema_version is supported, and evaluate the restriction
predicates it declares.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	version, err := experiment.SchemaVersionOf(data)
	if err != nil {
		return err
	}
	if err := experiment.CheckSchemaVersion(version); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	result, err := experiment.Validate(data)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d issue(s)\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			loc := issue.Path
			if loc == "" {
				loc = "/"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s [%s]\n", loc, issue.Message, issue.Keyword)
		}
		return fmt.Errorf("%s failed schema validation", path)
	}

	if err := experiment.CheckDocumentRestrictions(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
	return nil
}
