package settings

import "context"

// SettingRepository интерфейс хранилища глобальных настроек
type SettingRepository interface {
	GetOrCreate(ctx context.Context, key string, def bool) (bool, error)
	Toggle(ctx context.Context, key string, def bool) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
