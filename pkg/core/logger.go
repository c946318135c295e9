package core

// Logger interface for renderer progress and timing output
type Logger interface {
	Printf(format string, args ...interface{})
}
