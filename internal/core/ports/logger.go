package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a message that is only shown in verbose mode.
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	// Error reports err together with its cause chain.
	Error(err error)
	// SetVerbose enables or disables debug output.
	SetVerbose(enable bool)
	// SetJSON switches between JSON and human-readable output.
	SetJSON(enable bool)
}
