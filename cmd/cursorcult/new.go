package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cursorcult/cursorcult/pkg/catalog"
	"github.com/cursorcult/cursorcult/pkg/scaffold"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new rule pack repo from the template",
		Args:  cobra.ExactArgs(1),
		RunE:  runNew,
	}
	cmd.Flags().String("description", "", "One-line GitHub repo description")
	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	description, _ := cmd.Flags().GetString("description")

	client, err := catalog.NewClient(cfg)
	if err != nil {
		return err
	}
	name := args[0]
	if err := scaffold.Create(cmd.Context(), client, name, description); err != nil {
		return err
	}

	fmt.Printf("Created %s/%s and initialized template.\n", cfg.Org, name)
	fmt.Println("Convention: develop on main until ready for v0, then squash commits and tag v0.")
	return nil
}
