package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/simdoc/domain"
	"github.com/ludo-technologies/simdoc/internal/constants"
)

// CosineCommand handles the Cosine-space join CLI command
type CosineCommand struct {
	inputPath  string
	radius     float64
	windowSize int
	delimiter  string
	numChunks  int
	seed       uint64
	tfScheme   string
	idfScheme  string

	includePatterns []string
	excludePatterns []string

	output     outputFlags
	outputPath string
	sortBy     string
	quiet      bool
	configFile string
}

// NewCosineCommand creates a new Cosine join command
func NewCosineCommand() *CosineCommand {
	return &CosineCommand{
		radius:     constants.DefaultRadius,
		windowSize: constants.DefaultWindowSize,
		numChunks:  constants.DefaultNumChunks,
		seed:       42,
		sortBy:     string(domain.SortByPair),
	}
}

// CreateCobraCommand creates the Cobra command for the Cosine join
func (c *CosineCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cosine",
		Short: "Find all pairs of similar documents in the Cosine space",
		Long: `Find all pairs of similar documents in the Cosine space.

Documents are read one per non-empty line, tokenized into word n-grams,
optionally TF-IDF weighted, sketched with simplified simhash, and joined in
Hamming space.

The radius bounds the normalized Hamming distance of sketches; for vectors
at angle theta its expectation is theta/pi.

Examples:
  # Word unigrams with TF and smoothed IDF weighting
  simdoc cosine -i docs.txt -r 0.15 -w 1 -d " " -T standard -I smooth`,
		RunE: c.runJoin,
	}

	cmd.Flags().StringVarP(&c.inputPath, "input", "i", c.inputPath,
		"Document file or directory to be searched (one document per line)")
	cmd.Flags().Float64VarP(&c.radius, "radius", "r", c.radius,
		"Search radius in [0,1] over normalized Hamming distance")
	cmd.Flags().IntVarP(&c.windowSize, "window-size", "w", c.windowSize,
		"Window size for w-shingling (must be >= 1)")
	cmd.Flags().StringVarP(&c.delimiter, "delimiter", "d", c.delimiter,
		"Delimiter for recognizing words as tokens")
	cmd.Flags().IntVarP(&c.numChunks, "chunks", "c", c.numChunks,
		"Number of 64-bit chunks per sketch (dimensions = chunks*64)")
	cmd.Flags().Uint64VarP(&c.seed, "seed", "s", c.seed,
		"Seed for hashing; a random seed is drawn when unset")
	cmd.Flags().StringVarP(&c.tfScheme, "tf", "T", c.tfScheme,
		"Term-frequency weighting: standard, sublinear (disabled when empty)")
	cmd.Flags().StringVarP(&c.idfScheme, "idf", "I", c.idfScheme,
		"Inverse-document-frequency weighting: standard, smooth (disabled when empty)")

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
	_ = cmd.MarkFlagRequired("delimiter")

	return cmd
}

// runJoin executes the Cosine join
func (c *CosineCommand) runJoin(cmd *cobra.Command, args []string) error {
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
func (c *CosineCommand) createJoinRequest(cmd *cobra.Command) (*domain.JoinRequest, error) {
	format, err := c.output.determine()
	if err != nil {
		return nil, err
	}

	req := domain.DefaultJoinRequest(domain.MetricCosine)
	req.InputPath = c.inputPath
	req.IncludePatterns = c.includePatterns
	req.ExcludePatterns = c.excludePatterns
	req.Radius = c.radius
	req.WindowSize = c.windowSize
	req.Delimiter = c.delimiter
	req.NumChunks = c.numChunks
	req.Seed = resolveSeed(cmd, c.seed)
	req.TFScheme = c.tfScheme
	req.IDFScheme = c.idfScheme
	req.OutputFormat = format
	req.OutputWriter = os.Stdout
	req.OutputPath = c.outputPath
	req.SortBy = domain.SortCriteria(c.sortBy)
	req.ShowProgress = !c.quiet
	req.ConfigPath = c.configFile
	return req, nil
}
