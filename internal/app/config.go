package app

// Config описывает настройки запуска приложения.
type Config struct {
	// HTTPAddr — адрес публичного REST API.
	HTTPAddr string
	// MetricsAddr — адрес служебного сервера (/metrics, /healthz, /livez, /readyz).
	MetricsAddr string
	// PostgresDSN — DSN PostgreSQL-хранилища; пустая строка означает in-memory.
	PostgresDSN string
	// KafkaBrokers — список брокеров через запятую; пустая строка отключает события.
	KafkaBrokers string
}

// DefaultConfig возвращает базовые адреса для API и служебного сервера.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		MetricsAddr: ":9090",
	}
}
