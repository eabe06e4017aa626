package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/simdoc/internal/version"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print detailed version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
}
