package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/simdoc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "simdoc",
	Short: "All-pairs similar document search",
	Long: `simdoc finds all pairs of similar documents in a corpus using
locality-sensitive sketches and sketch sorting.

Documents are mapped to fixed-width binary sketches (1-bit minwise hashing
for the Jaccard space, simplified simhash for the Cosine space) whose
normalized Hamming distance estimates the document distance. A multi-sorted
self-join then enumerates every sketch pair within the search radius without
materializing the quadratic distance matrix.

Reported distances are raw normalized Hamming distances: for Jaccard the
expectation is (1-J)/2, for Cosine it is theta/pi. The search radius is
compared in that same space.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(NewJaccardCommand().CreateCobraCommand())
	rootCmd.AddCommand(NewCosineCommand().CreateCobraCommand())
	rootCmd.AddCommand(NewDumpCommand().CreateCobraCommand())
	rootCmd.AddCommand(NewMinhashAccCommand().CreateCobraCommand())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
