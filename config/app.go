package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName   string
	Port      string
	Env       string
	Debug     bool
	ExportDir string
	// Add more fields as needed
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:   GetEnv("APP_NAME", "FoundryTrack"),
			Port:      os.Getenv("PORT"),
			Env:       os.Getenv("APP_ENV"),
			Debug:     os.Getenv("DEBUG") == "true",
			ExportDir: GetEnv("EXPORT_DIR", "exports"),
		}
	})
}
