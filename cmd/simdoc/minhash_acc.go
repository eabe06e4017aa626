package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/simdoc/app"
	"github.com/ludo-technologies/simdoc/domain"
	"github.com/ludo-technologies/simdoc/internal/constants"
	"github.com/ludo-technologies/simdoc/service"
)

// MinhashAccCommand handles the minhash accuracy harness CLI command
type MinhashAccCommand struct {
	inputPath  string
	windowSize int
	delimiter  string
	seed       uint64
	maxChunks  int
	radii      []float64

	includePatterns []string
	excludePatterns []string

	output     outputFlags
	outputPath string
	quiet      bool
}

// NewMinhashAccCommand creates a new accuracy harness command
func NewMinhashAccCommand() *MinhashAccCommand {
	return &MinhashAccCommand{
		windowSize: constants.DefaultWindowSize,
		seed:       42,
		maxChunks:  constants.MaxNumChunks,
		radii:      append([]float64(nil), constants.AccuracyRadii...),
	}
}

// CreateCobraCommand creates the Cobra command for the accuracy harness
func (c *MinhashAccCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "minhash-acc",
		Aliases: []string{"minhash_acc"},
		Short:   "Measure 1-bit minwise hashing accuracy against exact distances",
		Long: `Measure the accuracy of 1-bit minwise sketches on a corpus small enough
to afford the exact O(n^2) Jaccard ground truth.

For every chunk count up to --max-chunks the harness reports the mean
absolute error of the sketch estimate and precision/recall/F1 of sketch
retrieval at the evaluation radii. Both sides are measured in the join's
normalized-Hamming convention: the expected sketch distance of a pair with
exact Jaccard distance d is d/2.

Use the output to pick the smallest chunk count whose error is acceptable.

Example:
  simdoc minhash-acc -i sample.txt -w 5 --max-chunks 64`,
		RunE: c.runAccuracy,
	}

	cmd.Flags().StringVarP(&c.inputPath, "input", "i", c.inputPath,
		"Document file to be evaluated (one document per line)")
	cmd.Flags().IntVarP(&c.windowSize, "window-size", "w", c.windowSize,
		"Window size for w-shingling (must be >= 1)")
	cmd.Flags().StringVarP(&c.delimiter, "delimiter", "d", c.delimiter,
		"Delimiter for recognizing words as tokens; characters are used when empty")
	cmd.Flags().Uint64VarP(&c.seed, "seed", "s", c.seed,
		"Seed for hashing; a random seed is drawn when unset")
	cmd.Flags().IntVar(&c.maxChunks, "max-chunks", c.maxChunks,
		"Largest chunk count to evaluate")
	cmd.Flags().Float64SliceVar(&c.radii, "radii", c.radii,
		"Evaluation radii for precision/recall/F1")

	cmd.Flags().StringSliceVar(&c.includePatterns, "include", nil,
		"File patterns to include when the input is a directory")
	cmd.Flags().StringSliceVar(&c.excludePatterns, "exclude", nil,
		"File patterns to exclude when the input is a directory")

	c.output.register(cmd)
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", c.outputPath,
		"Write results to a file instead of stdout")
	cmd.Flags().BoolVarP(&c.quiet, "quiet", "q", c.quiet,
		"Suppress progress output")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runAccuracy executes the accuracy harness
func (c *MinhashAccCommand) runAccuracy(cmd *cobra.Command, args []string) error {
	format, err := c.output.determine()
	if err != nil {
		return err
	}

	var progress domain.ProgressManager
	if c.quiet {
		progress = service.NewSilentProgressManager()
	} else {
		progress = service.NewProgressManager()
	}

	req := domain.DefaultAccuracyRequest()
	req.InputPath = c.inputPath
	req.IncludePatterns = c.includePatterns
	req.ExcludePatterns = c.excludePatterns
	req.WindowSize = c.windowSize
	req.Delimiter = c.delimiter
	req.Seed = resolveSeed(cmd, c.seed)
	req.MaxChunks = c.maxChunks
	req.Radii = c.radii
	req.OutputFormat = format
	req.OutputWriter = os.Stdout
	req.OutputPath = c.outputPath
	req.ShowProgress = !c.quiet

	useCase := app.NewAccuracyUseCase(
		service.NewAccuracyServiceWithProgress(progress),
		service.NewDocumentReader(),
		service.NewAccuracyOutputFormatter(),
		service.NewFileReportWriter(os.Stderr),
	)
	return useCase.Execute(context.Background(), *req)
}
