package config

import "os"

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	DataDir            string
	Port               string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./assistant.db"),
		DataDir:            getEnv("DATA_DIR", "./data"),
		Port:               getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
