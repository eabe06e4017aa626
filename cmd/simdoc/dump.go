package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/simdoc/app"
	"github.com/ludo-technologies/simdoc/domain"
	"github.com/ludo-technologies/simdoc/service"
)

// DumpCommand handles the pair dump CLI command
type DumpCommand struct {
	inputPath string
	pairsPath string
}

// NewDumpCommand creates a new dump command
func NewDumpCommand() *DumpCommand {
	return &DumpCommand{}
}

// CreateCobraCommand creates the Cobra command for dumping pairs
func (c *DumpCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Pretty-print similar pairs next to their documents",
		Long: `Pretty-print a pairs CSV produced by the jaccard or cosine command,
showing each pair's ids and distance followed by both document texts.

Example:
  simdoc jaccard -i docs.txt -r 0.02 -w 5 > pairs.csv
  simdoc dump -i docs.txt -s pairs.csv`,
		RunE: c.runDump,
	}

	cmd.Flags().StringVarP(&c.inputPath, "input", "i", c.inputPath,
		"Document file the pairs were computed from")
	cmd.Flags().StringVarP(&c.pairsPath, "pairs", "s", c.pairsPath,
		"Pairs CSV file (header i,j,dist)")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("pairs")

	return cmd
}

// runDump executes the dump command
func (c *DumpCommand) runDump(cmd *cobra.Command, args []string) error {
	useCase := app.NewDumpUseCase(service.NewDumpService(service.NewDocumentReader()))
	return useCase.Execute(context.Background(), domain.DumpRequest{
		InputPath:    c.inputPath,
		PairsPath:    c.pairsPath,
		OutputWriter: os.Stdout,
	})
}
