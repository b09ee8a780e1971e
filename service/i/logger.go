package i

// Logger is the logging surface shared by services and controllers.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
	Debug(string)
}
