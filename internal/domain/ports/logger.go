package ports

// Logger é o log estruturado usado por serviços, handlers e persistência.
// args são pares chave/valor: logger.Info("user created", "user_id", id).
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With retorna um logger filho com os pares fixados em toda linha
	With(args ...any) Logger
}
