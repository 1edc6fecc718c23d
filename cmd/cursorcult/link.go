package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cursorcult/cursorcult/pkg/catalog"
	"github.com/cursorcult/cursorcult/pkg/linker"
)

func newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <name[:tag]>",
		Short: "Link a rule pack into the project as a pinned submodule",
		Long:  "Adds the named pack as a git submodule under the rules directory, checked out at the requested tag (or the latest vN tag when none is given, e.g. UNO or UNO:v1).",
		Args:  cobra.ExactArgs(1),
		RunE:  runLink,
	}
}

func runLink(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	client, err := catalog.NewClient(cfg)
	if err != nil {
		return err
	}
	res, err := linker.Link(cmd.Context(), client, cfg.RulesDir, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Linked %s at %s into %s.\n", res.Name, res.Tag, res.Target)
	fmt.Println("Next: commit .gitmodules and the submodule directory in your repo.")
	return nil
}
