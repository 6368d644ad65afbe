package cli

import (
	"github.com/spf13/cobra"

	"github.com/visionforge-labs/visionforge/internal/branding"
	"github.com/visionforge-labs/visionforge/internal/config"

	// Registers the SSD experiment presets with the default registry.
	_ "github.com/visionforge-labs/visionforge/internal/configs/ssd"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` manages the experiment configurations of a vision-model training
framework: it lists registered experiments, renders their fully-resolved
hyperparameters, and validates experiment documents before they reach a trainer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
