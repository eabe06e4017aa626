package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/simdoc/domain"
	"github.com/ludo-technologies/simdoc/internal/constants"
)

// JaccardCommand handles the Jaccard-space join CLI command
type JaccardCommand struct {
	inputPath  string
	radius     float64
	windowSize int
	delimiter  string
	numChunks  int
	seed       uint64

	includePatterns []string
	excludePatterns []string

	output     outputFlags
	outputPath string
	sortBy     string
	quiet      bool
	configFile string
}

// NewJaccardCommand creates a new Jaccard join command
func NewJaccardCommand() *JaccardCommand {
	return &JaccardCommand{
		radius:     constants.DefaultRadius,
		windowSize: constants.DefaultWindowSize,
		numChunks:  constants.DefaultNumChunks,
		seed:       42,
		sortBy:     string(domain.SortByPair),
	}
}

// CreateCobraCommand creates the Cobra command for the Jaccard join
func (c *JaccardCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jaccard",
		Short: "Find all pairs of similar documents in the Jaccard space",
		Long: `Find all pairs of similar documents in the Jaccard space.

Documents are read one per non-empty line, tokenized into character or word
n-grams, sketched with 1-bit minwise hashing, and joined in Hamming space.

The radius bounds the normalized Hamming distance of sketches; for sets with
Jaccard similarity J its expectation is (1-J)/2.

Examples:
  # Character 5-grams, 16-chunk sketches, radius 0.02
  simdoc jaccard -i docs.txt -r 0.02 -w 5 -c 16

  # Word bigrams
  simdoc jaccard -i docs.txt -r 0.05 -w 2 -d " "`,
		RunE: c.runJoin,
	}

	cmd.Flags().StringVarP(&c.inputPath, "input", "i", c.inputPath,
		"Document file or directory to be searched (one document per line)")
	cmd.Flags().Float64VarP(&c.radius, "radius", "r", c.radius,
		"Search radius in [0,1] over normalized Hamming distance")
	cmd.Flags().IntVarP(&c.windowSize, "window-size", "w", c.windowSize,
		"Window size for w-shingling (must be >= 1)")
	cmd.Flags().StringVarP(&c.delimiter, "delimiter", "d", c.delimiter,
		"Delimiter for recognizing words as tokens; characters are used when empty")
	cmd.Flags().IntVarP(&c.numChunks, "chunks", "c", c.numChunks,
		"Number of 64-bit chunks per sketch (dimensions = chunks*64)")
	cmd.Flags().Uint64VarP(&c.seed, "seed", "s", c.seed,
		"Seed for hashing; a random seed is drawn when unset")

	cmd.Flags().StringSliceVar(&c.includePatterns, "include", nil,
		"File patterns to include when the input is a directory")
	cmd.Flags().StringSliceVar(&c.excludePatterns, "exclude", nil,
		"File patterns to exclude when the input is a directory")

	c.output.register(cmd)
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", c.outputPath,
		"Write results to a file instead of stdout")
	cmd.Flags().StringVar(&c.sortBy, "sort", c.sortBy,
		"Sort results by: pair, distance")
	cmd.Flags().BoolVarP(&c.quiet, "quiet", "q", c.quiet,
		"Suppress progress output")
	cmd.Flags().StringVar(&c.configFile, "config", c.configFile,
		"Path to a .simdoc.toml configuration file")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("radius")

	return cmd
}

// runJoin executes the Jaccard join
func (c *JaccardCommand) runJoin(cmd *cobra.Command, args []string) error {
	request, err := c.createJoinRequest(cmd)
	if err != nil {
		return err
	}
	useCase, err := newJoinUseCase(c.quiet)
	if err != nil {
		return err
	}
	return useCase.Execute(context.Background(), *request)
}

// createJoinRequest creates a join request from the command line flags
func (c *JaccardCommand) createJoinRequest(cmd *cobra.Command) (*domain.JoinRequest, error) {
	format, err := c.output.determine()
	if err != nil {
		return nil, err
	}

	req := domain.DefaultJoinRequest(domain.MetricJaccard)
	req.InputPath = c.inputPath
	req.IncludePatterns = c.includePatterns
	req.ExcludePatterns = c.excludePatterns
	req.Radius = c.radius
	req.WindowSize = c.windowSize
	req.Delimiter = c.delimiter
	req.NumChunks = c.numChunks
	req.Seed = resolveSeed(cmd, c.seed)
	req.OutputFormat = format
	req.OutputWriter = os.Stdout
	req.OutputPath = c.outputPath
	req.SortBy = domain.SortCriteria(c.sortBy)
	req.ShowProgress = !c.quiet
	req.ConfigPath = c.configFile
	return req, nil
}
