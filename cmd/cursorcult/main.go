package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cursorcult/cursorcult/pkg/config"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "cursorcult",
		Short:   "List, link, scaffold, and verify CursorCult rule packs",
		Long:    `Manages the catalog of versioned rule-pack repositories: lists them with their latest vN tag, links a pack into a project as a pinned submodule, scaffolds new packs, and verifies a pack follows the required format.`,
		Version: fmt.Sprintf("%s (%s)", version, commit),
		// No subcommand behaves like "list".
		RunE:         runList,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to config file")
	rootCmd.PersistentFlags().String("org", "", "GitHub organization hosting the rule packs")
	rootCmd.PersistentFlags().String("github-token", os.Getenv("GITHUB_TOKEN"), "GitHub token for API access")

	rootCmd.AddCommand(newListCmd(), newLinkCmd(), newNewCmd(), newVerifyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

// loadConfig reads the config file (falling back to defaults with a warning,
// never aborting) and layers the command's flags on top.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: could not load config file: %v (using defaults)\n", err)
		}
		cfg = config.Default()
	}
	return config.MergeFlags(cfg, cmd.Flags())
}
