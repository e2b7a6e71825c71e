package usecase

import (
	"context"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Global bool // If true, initialize global config; otherwise repository config
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates a configuration file template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates a configuration file with the starter template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	if in.Global {
		if err := uc.configManager.InitGlobalConfig(); err != nil {
			return nil, err
		}
		return &InitConfigOutput{Path: uc.configManager.GetGlobalConfigInfo().Path}, nil
	}

	if err := uc.configManager.InitRepoConfig(); err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: uc.configManager.GetRepoConfigInfo().Path}, nil
}
