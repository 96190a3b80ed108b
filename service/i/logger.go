package i

// Logger is the minimal leveled logger shared by all services.
type Logger interface {
	// Info logs an informational message.
	Info(string)

	// Warning logs a warning message.
	Warning(string)

	// Error logs an error message.
	Error(string)
}
