package middleware

// TokenVerifier проверяет токен администратора и возвращает его ID
type TokenVerifier interface {
	VerifyAdmin(token string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
