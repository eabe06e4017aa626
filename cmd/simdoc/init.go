package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/simdoc/internal/config"
)

// NewInitCmd creates the init command, which writes a default .simdoc.toml
// into the current directory.
func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default .simdoc.toml configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ".simdoc.toml"
			if force {
				data, err := config.GenerateDefaultConfig()
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
			} else if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")
	return cmd
}
