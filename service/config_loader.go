package service

import (
	"github.com/ludo-technologies/simdoc/domain"
	"github.com/ludo-technologies/simdoc/internal/config"
)

// JoinConfigurationLoaderImpl implements the domain.JoinConfigurationLoader
// interface on top of the TOML config loader.
type JoinConfigurationLoaderImpl struct{}

// NewJoinConfigurationLoader creates a new configuration loader service
func NewJoinConfigurationLoader() *JoinConfigurationLoaderImpl {
	return &JoinConfigurationLoaderImpl{}
}

// LoadJoinConfig loads join configuration from a file. The returned request
// carries no metric or input path; callers overlay those.
func (l *JoinConfigurationLoaderImpl) LoadJoinConfig(configPath string) (*domain.JoinRequest, error) {
	cfg, err := config.NewTomlConfigLoader().LoadConfigFromFile(configPath)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration", err)
	}
	return requestFromConfig(cfg), nil
}

// GetDefaultJoinConfig returns the default join configuration
func (l *JoinConfigurationLoaderImpl) GetDefaultJoinConfig() *domain.JoinRequest {
	return requestFromConfig(config.DefaultConfig())
}

// requestFromConfig maps a file configuration onto a join request.
func requestFromConfig(cfg *config.Config) *domain.JoinRequest {
	req := &domain.JoinRequest{
		IncludePatterns: cfg.Input.IncludePatterns,
		ExcludePatterns: cfg.Input.ExcludePatterns,
		Radius:          cfg.Sketch.Radius,
		NumChunks:       cfg.Sketch.Chunks,
		WindowSize:      cfg.Tokenizer.WindowSize,
		Delimiter:       cfg.Tokenizer.Delimiter,
		TFScheme:        cfg.Weighting.TF,
		IDFScheme:       cfg.Weighting.IDF,
		OutputFormat:    domain.OutputFormat(cfg.Output.Format),
		SortBy:          domain.SortCriteria(cfg.Output.SortBy),
		ShowProgress:    cfg.Output.ShowProgress,
	}
	if cfg.Sketch.Seed >= 0 {
		req.Seed = uint64(cfg.Sketch.Seed)
	}
	return req
}
