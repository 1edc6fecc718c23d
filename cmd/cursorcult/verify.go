package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cursorcult/cursorcult/pkg/gitrepo"
	"github.com/cursorcult/cursorcult/pkg/verify"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [path]",
		Short: "Verify a rules repo follows the required format",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runVerify,
	}
	cmd.Flags().String("name", "", "Override repo name for README link checks")
	cmd.Flags().Bool("diff", false, "Show a unified diff when the LICENSE content mismatches")
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path %s: %w", path, err)
	}
	nameOverride, _ := cmd.Flags().GetString("name")
	showDiff, _ := cmd.Flags().GetBool("diff")

	result := verify.New(abs, gitrepo.Open(abs)).Run(cmd.Context(), nameOverride)
	if result.OK {
		color.New(color.FgGreen).Fprintln(os.Stdout, "OK: rules repo is valid.")
		return nil
	}

	color.New(color.FgRed).Fprintln(os.Stdout, "INVALID: rules repo failed validation:")
	for _, e := range result.Errors {
		fmt.Printf("- %s\n", e)
	}
	if showDiff {
		if diff, err := verify.LicenseDiff(abs); err == nil && diff != "" {
			fmt.Println()
			fmt.Print(diff)
		}
	}

	// Validation failures are a reported outcome, not a command error.
	os.Exit(1)
	return nil
}
