package reservasapi

// TokenSource supplies the bearer token attached to every cart request
type TokenSource interface {
	Token() (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
