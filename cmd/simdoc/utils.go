package main

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/simdoc/app"
	"github.com/ludo-technologies/simdoc/domain"
	"github.com/ludo-technologies/simdoc/service"
)

// outputFlags holds the mutually exclusive output format selectors shared by
// the reporting commands.
type outputFlags struct {
	text bool
	json bool
	yaml bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.text, "text", false, "Write a human-readable report instead of CSV")
	cmd.Flags().BoolVar(&f.json, "json", false, "Write JSON instead of CSV")
	cmd.Flags().BoolVar(&f.yaml, "yaml", false, "Write YAML instead of CSV")
}

// determine resolves the output format; CSV is the reference default.
func (f *outputFlags) determine() (domain.OutputFormat, error) {
	selected := 0
	format := domain.OutputFormatCSV
	if f.text {
		selected++
		format = domain.OutputFormatText
	}
	if f.json {
		selected++
		format = domain.OutputFormatJSON
	}
	if f.yaml {
		selected++
		format = domain.OutputFormatYAML
	}
	if selected > 1 {
		return "", fmt.Errorf("only one of --text, --json, --yaml may be set")
	}
	return format, nil
}

// resolveSeed returns the seed flag's value when the user set it, otherwise
// a random seed. The chosen seed is echoed to stderr so runs can be
// reproduced.
func resolveSeed(cmd *cobra.Command, seed uint64) uint64 {
	if cmd.Flags().Changed("seed") {
		return seed
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// An unusable entropy source leaves determinism as the only option.
		return 0
	}
	random := binary.LittleEndian.Uint64(buf[:])
	fmt.Fprintf(os.Stderr, "Using random seed %d (pass -s %d to reproduce)\n", random, random)
	return random
}

// newJoinUseCase wires the production services for the join commands.
func newJoinUseCase(quiet bool) (*app.JoinUseCase, error) {
	var progress domain.ProgressManager
	if quiet {
		progress = service.NewSilentProgressManager()
	} else {
		progress = service.NewProgressManager()
	}

	return app.NewJoinUseCaseBuilder().
		WithService(service.NewSimilarityServiceWithProgress(progress)).
		WithReader(service.NewDocumentReader()).
		WithFormatter(service.NewPairOutputFormatter()).
		WithConfigLoader(service.NewJoinConfigurationLoader()).
		WithReportWriter(service.NewFileReportWriter(os.Stderr)).
		Build()
}
