package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cursorcult/cursorcult/pkg/catalog"
	"github.com/cursorcult/cursorcult/pkg/reporter"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rule packs with their latest vN tag (default)",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().Bool("all", false, "Include packs that have no vN tag yet")
	cmd.Flags().String("output", "", "Output format: table | json | plain")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	client, err := catalog.NewClient(cfg)
	if err != nil {
		return err
	}
	packs, err := client.ListPacks(cmd.Context(), cfg.IncludeUntagged)
	if err != nil {
		return err
	}
	return reporter.New(cfg.Output).Report(os.Stdout, cfg.Org, packs)
}
