package config

import (
	"os"
	"strings"
)

// Config agrupa toda a configuração lida do ambiente. Apenas a credencial do
// Gemini é obrigatória; as demais chaves ausentes desligam a feature associada.
type Config struct {
	HTTPPort       string
	GeminiAPIKey   string
	GeminiModel    string
	OpenWeatherKey string
	UnsplashKey    string
	HomeCurrency   string
	HomeTimezone   string
	FrontendDist   string
}

// Load monta a configuração a partir das variáveis de ambiente.
func Load() *Config {
	return &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		GeminiAPIKey:   firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenWeatherKey: os.Getenv("OPENWEATHER_API_KEY"),
		UnsplashKey:    os.Getenv("UNSPLASH_ACCESS_KEY"),
		HomeCurrency:   strings.ToUpper(getEnv("HOME_CURRENCY", "USD")),
		HomeTimezone:   getEnv("HOME_TIMEZONE", "UTC"),
		FrontendDist:   getEnv("FRONTEND_DIST", "frontend/dist"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
