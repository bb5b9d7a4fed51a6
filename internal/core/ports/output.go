package ports

import "go.trai.ch/stow/internal/core/domain"

// SourceWriter persists the generated source list.
//
//go:generate go run go.uber.org/mock/mockgen -source=output.go -destination=mocks/mock_output.go -package=mocks
type SourceWriter interface {
	// Write encodes sources in the given format to path.
	Write(path string, format domain.OutputFormat, sources []domain.Source) error
}
