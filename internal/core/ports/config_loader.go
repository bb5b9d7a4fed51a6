package ports

import "go.trai.ch/stow/internal/core/domain"

// ConfigLoader defines the interface for loading the generator configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches cwd and its parents for a stow.yaml and returns the
	// defaults overlaid with its contents. A missing file is not an error.
	Load(cwd string) (domain.Config, error)
}
