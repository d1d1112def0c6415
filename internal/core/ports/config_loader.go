package ports

import "go.trai.ch/herald/internal/core/domain"

// ConfigLoader defines the interface for loading the watch configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the given working directory. When no
	// config file is found walking up from cwd, the built-in defaults are
	// returned rooted at cwd.
	Load(cwd string) (*domain.Config, error)
}
